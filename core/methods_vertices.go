// Package core: vertex catalog operations.
//
// All methods here touch only the vertex catalog and therefore lock muVert.

package core

import "sort"

// AddVertex inserts a vertex with the given ID and options.
// Adding an existing ID re-applies the options to the stored vertex and is
// not an error (idempotent upsert).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the stored vertex for id, or ErrVertexNotFound.
// The returned pointer aliases internal state; treat it as read-only.
// Complexity: O(1).
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The sorted order is the stable basis for every dense index view built on
// top of this graph, so equal graphs always produce equal indexings.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// ensureVertex inserts id into the catalog if absent.
// Caller must NOT hold muVert.
func (g *Graph) ensureVertex(id string) {
	g.muVert.Lock()
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}
	g.muVert.Unlock()
}
