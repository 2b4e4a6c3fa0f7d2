// SPDX-License-Identifier: MIT
// Package matrix provides a dense adjacency view over a core.Graph: a stable
// vertex-ID ↔ dense-index bijection plus O(1) adjacency queries.
//
// The matching engine builds one AdjacencyMatrix per graph per query and
// performs every structural test through IsAdjacent; the bijection (ToIndex /
// FromIndex over the sorted vertex order) is what gives the engine its dense
// 0..n-1 node index space.
//
// Errors:
//
//	ErrGraphNil        - nil graph passed to NewAdjacencyMatrix.
//	ErrUnknownVertex   - ToIndex on an ID absent from the graph.
//	ErrIndexOutOfRange - FromIndex outside 0..n-1.
package matrix

import "github.com/katalvlaran/isograph/core"

// AdjacencyMatrix holds a fixed-size boolean adjacency view of a graph.
//
// Cells are stored in a single flat slice (row-major), so IsAdjacent is one
// bounds-checked load. The view is a snapshot: mutating the source graph
// after construction does not update it.
//
// Memory: O(V²).
type AdjacencyMatrix struct {
	// Index maps vertex ID → dense row/column index.
	Index map[string]int

	// Order holds vertex IDs by dense index (the inverse of Index).
	// It is the graph's sorted vertex order, so equal graphs index equally.
	Order []string

	cells    []bool // row-major V×V adjacency cells
	n        int
	directed bool
}

// NewAdjacencyMatrix builds an AdjacencyMatrix snapshot of g.
//
// Construction:
//  1. Index/Order from g.Vertices() (ascending IDs).
//  2. Allocate the flat V×V cell slice.
//  3. Set one cell per edge; mirror it when the graph is undirected.
//
// Complexity: O(V² + E). Memory: O(V²).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	order := g.Vertices()
	n := len(order)
	idx := make(map[string]int, n)
	for i, id := range order {
		idx[id] = i
	}

	am := &AdjacencyMatrix{
		Index:    idx,
		Order:    order,
		cells:    make([]bool, n*n),
		n:        n,
		directed: g.Directed(),
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		am.cells[i*n+j] = true
		if !am.directed {
			am.cells[j*n+i] = true
		}
	}

	return am, nil
}

// IsAdjacent reports whether an edge i→j exists. Out-of-range indices
// report false rather than panicking, matching the total-function contract
// of the matching engine.
//
// Complexity: O(1).
func (am *AdjacencyMatrix) IsAdjacent(i, j int) bool {
	if i < 0 || j < 0 || i >= am.n || j >= am.n {
		return false
	}

	return am.cells[i*am.n+j]
}

// ToIndex returns the dense index of the given vertex ID.
// Complexity: O(1).
func (am *AdjacencyMatrix) ToIndex(id string) (int, error) {
	i, ok := am.Index[id]
	if !ok {
		return 0, ErrUnknownVertex
	}

	return i, nil
}

// FromIndex returns the vertex ID at the given dense index.
// Complexity: O(1).
func (am *AdjacencyMatrix) FromIndex(i int) (string, error) {
	if i < 0 || i >= am.n {
		return "", ErrIndexOutOfRange
	}

	return am.Order[i], nil
}

// Dim returns the number of vertices (rows/columns).
func (am *AdjacencyMatrix) Dim() int { return am.n }

// Directed reports the directedness captured at construction.
func (am *AdjacencyMatrix) Directed() bool { return am.directed }
