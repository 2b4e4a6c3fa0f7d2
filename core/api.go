// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction; getters exist so callers can
//     gate algorithms without reaching into struct internals.

package core

// Directed reports whether edges in this graph are directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v, v, ...) rejects the operation with ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
