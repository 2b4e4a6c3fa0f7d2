// Package iso: public types, matcher strategies, and sentinel errors.
package iso

import (
	"errors"

	"github.com/katalvlaran/isograph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any query.
	ErrGraphNil = errors.New("iso: graph is nil")

	// ErrEdgeKindMismatch is returned when one graph is directed and the
	// other undirected; matching is only defined between like kinds.
	ErrEdgeKindMismatch = errors.New("iso: graphs differ in directedness")
)

// unmapped marks a mapping slot whose vertex has not been committed yet.
const unmapped = -1

// Mapping is one complete correspondence found by the engine: Mapping[i]
// holds the dense g1 index that g0's dense index i is matched to. Dense
// indices follow each graph's sorted vertex order (matrix.AdjacencyMatrix
// bijection); use Matcher.IDs to translate back to vertex IDs.
type Mapping []int

// NodeMatcher decides whether two vertices carry compatible associated
// data. A nil NodeMatcher disables semantic node matching entirely: the
// engine skips the call, treating every pair as compatible.
//
// The matcher may close over caller state (e.g. memoization); it is invoked
// from a single goroutine for the lifetime of one query.
type NodeMatcher func(a, b *core.Vertex) bool

// EdgeMatcher decides whether two edges carry compatible associated data.
// A nil EdgeMatcher disables semantic edge matching entirely.
//
// The engine locates each edge in the correct orientation before invoking
// the matcher; if either edge cannot be found the pair fails closed.
type EdgeMatcher func(a, b *core.Edge) bool

// NodesByWeight is a ready-made NodeMatcher comparing vertex weights.
func NodesByWeight(a, b *core.Vertex) bool { return a.Weight == b.Weight }

// EdgesByWeight is a ready-made EdgeMatcher comparing edge weights.
func EdgesByWeight(a, b *core.Edge) bool { return a.Weight == b.Weight }
