// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present
	// in the matrix index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrIndexOutOfRange indicates that a dense index is outside 0..n-1.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)
