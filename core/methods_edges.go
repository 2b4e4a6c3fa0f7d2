// Package core: edge catalog operations.
//
// Edges live inside the adjacency maps; there is no separate edge store.
// Undirected edges are mirrored into both orientations sharing one *Edge,
// which keeps EdgeBetween O(1) from either endpoint.

package core

import "sort"

// AddEdge inserts an edge from→to with the given weight, creating missing
// endpoint vertices on the fly.
//
// Errors:
//   - ErrEmptyVertexID        if either endpoint ID is empty.
//   - ErrBadWeight            if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed       if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed  if an edge between the endpoints already exists
//     (for undirected graphs, in either orientation).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1. Validate endpoint IDs and policy flags.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2. Ensure both endpoints exist in the vertex catalog.
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 3. Insert into adjacency under the edge lock.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjOut[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight}
	g.putAdj(g.adjOut, from, to, e)
	if g.directed {
		g.putAdj(g.adjIn, to, from, e)
	} else if from != to {
		// Mirror the shared edge so both endpoints see it as outgoing.
		g.putAdj(g.adjOut, to, from, e)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge from→to exists. On undirected graphs the
// orientation of the arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjOut[from][to]

	return ok
}

// EdgeBetween returns the edge leaving `from` toward `to`, or
// ErrEdgeNotFound. On undirected graphs the lookup is symmetric; the
// returned edge may store the endpoints in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.adjOut[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge exactly once, ordered by (From, To) of the stored
// orientation. Complexity: O(V + E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, g.edgeCount)
	seen := make(map[*Edge]struct{}, g.edgeCount)
	for _, row := range g.adjOut {
		for _, e := range row {
			if _, dup := seen[e]; dup {
				continue // mirrored undirected entry
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges. An undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// putAdj stores e at adj[a][b], allocating the inner bucket on first use.
func (g *Graph) putAdj(adj map[string]map[string]*Edge, a, b string, e *Edge) {
	row, ok := adj[a]
	if !ok {
		row = make(map[string]*Edge)
		adj[a] = row
	}
	row[b] = e
}
