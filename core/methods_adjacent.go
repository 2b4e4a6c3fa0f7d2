// Package core: per-direction neighbor enumeration.
//
// These queries are the capability surface the matching engine builds its
// dense neighbor lists from; their ordering contract (ascending IDs) is what
// makes the whole search deterministic.

package core

import "sort"

// NeighborIDsDirected returns the IDs adjacent to id in the given direction,
// in ascending lexicographic order. A self-loop contributes the vertex's own
// ID. For undirected graphs both directions return the same set.
//
// Errors:
//   - ErrVertexNotFound if id does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDsDirected(id string, dir Direction) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	row := g.adjOut[id]
	if dir == Incoming && g.directed {
		row = g.adjIn[id]
	}
	ids := make([]string, 0, len(row))
	for nb := range row {
		ids = append(ids, nb)
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// EdgesDirected returns the edges incident to id in the given direction,
// ordered by the neighbor ID on the far end. For undirected graphs both
// directions return the same edges.
//
// Errors:
//   - ErrVertexNotFound if id does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) EdgesDirected(id string, dir Direction) ([]*Edge, error) {
	ids, err := g.NeighborIDsDirected(id, dir)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	row := g.adjOut[id]
	if dir == Incoming && g.directed {
		row = g.adjIn[id]
	}
	out := make([]*Edge, 0, len(ids))
	for _, nb := range ids {
		out = append(out, row[nb])
	}

	return out, nil
}
