// Package iso: per-graph search state.
//
// vf2State owns one side of the partial mapping plus the Tout/Tin frontier
// bookkeeping. Frontier membership is generation-stamped: a slot records the
// generation at which it was first touched, so rollback can undo exactly the
// slots stamped by the most recent commit in O(degree) without rescanning
// the neighbors of every committed vertex.

package iso

import (
	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/matrix"
)

// vf2State is the search state for one graph of the pair.
//
// Invariants:
//   - generation == number of non-unmapped slots in mapping.
//   - outStamp[i] != 0 iff i is committed-into or reachable by one outgoing
//     edge from a committed vertex (i ∈ M ∪ Tout).
//   - inStamp mirrors outStamp for incoming edges; empty when undirected.
type vf2State struct {
	g  *core.Graph
	am *matrix.AdjacencyMatrix

	directed bool
	ids      []string // dense index → vertex ID (am.Order)
	out      [][]int  // dense outgoing neighbor lists, ascending
	in       [][]int  // dense incoming neighbor lists; nil when undirected

	// mapping[i] holds the other graph's dense index, or unmapped.
	mapping []int

	outStamp []int // generation stamps for M ∪ Tout membership
	inStamp  []int // generation stamps for M ∪ Tin; empty when undirected
	outCount int   // number of non-zero outStamp entries
	inCount  int   // number of non-zero inStamp entries

	generation int // vertices committed so far; doubles as the stamp value
}

// newVF2State snapshots g into a fresh search state: adjacency matrix,
// dense neighbor lists, and zeroed mapping/frontier vectors.
// Complexity: O(V² + E log E).
func newVF2State(g *core.Graph) (*vf2State, error) {
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, err
	}

	n := am.Dim()
	s := &vf2State{
		g:        g,
		am:       am,
		directed: g.Directed(),
		ids:      am.Order,
		out:      make([][]int, n),
		mapping:  make([]int, n),
		outStamp: make([]int, n),
	}
	for i := range s.mapping {
		s.mapping[i] = unmapped
	}
	if s.directed {
		s.in = make([][]int, n)
		s.inStamp = make([]int, n)
	}

	// Dense neighbor lists inherit the sorted-ID order of the bijection,
	// so they come out in ascending index order.
	for i, id := range s.ids {
		if s.out[i], err = denseNeighbors(g, am, id, core.Outgoing); err != nil {
			return nil, err
		}
		if s.directed {
			if s.in[i], err = denseNeighbors(g, am, id, core.Incoming); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// denseNeighbors resolves the ID-based neighbor list of id into dense
// indices of am.
func denseNeighbors(g *core.Graph, am *matrix.AdjacencyMatrix, id string, dir core.Direction) ([]int, error) {
	nbs, err := g.NeighborIDsDirected(id, dir)
	if err != nil {
		return nil, err
	}
	idxs := make([]int, len(nbs))
	for k, nb := range nbs {
		if idxs[k], err = am.ToIndex(nb); err != nil {
			return nil, err
		}
	}

	return idxs, nil
}

// isComplete reports whether every vertex of this graph is mapped.
func (s *vf2State) isComplete() bool {
	return s.generation == len(s.mapping)
}

// pushMapping commits from ↔ to (to is the other graph's dense index):
// records the slot, bumps the generation, and stamps every yet-unstamped
// neighbor with the new generation.
// Complexity: O(deg(from)).
func (s *vf2State) pushMapping(from, to int) {
	s.generation++
	s.mapping[from] = to

	for _, nb := range s.out[from] {
		if s.outStamp[nb] == 0 {
			s.outStamp[nb] = s.generation
			s.outCount++
		}
	}
	if s.directed {
		for _, nb := range s.in[from] {
			if s.inStamp[nb] == 0 {
				s.inStamp[nb] = s.generation
				s.inCount++
			}
		}
	}
}

// popMapping reverses the most recent pushMapping of `from`: clears exactly
// the frontier slots stamped at the current generation (stamp ownership is
// what licenses the O(degree) undo), then clears the slot and decrements
// the generation.
func (s *vf2State) popMapping(from int) {
	s.mapping[from] = unmapped

	for _, nb := range s.out[from] {
		if s.outStamp[nb] == s.generation {
			s.outStamp[nb] = 0
			s.outCount--
		}
	}
	if s.directed {
		for _, nb := range s.in[from] {
			if s.inStamp[nb] == s.generation {
				s.inStamp[nb] = 0
				s.inCount--
			}
		}
	}

	s.generation--
}

// nextOutIndex returns the least index ≥ start that is in the out-frontier
// and unmapped, or -1 if none remains.
func (s *vf2State) nextOutIndex(start int) int {
	for i := start; i < len(s.mapping); i++ {
		if s.outStamp[i] > 0 && s.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}

// nextInIndex is nextOutIndex over the in-frontier. Undirected graphs have
// no separate in-frontier, so the answer is immediately "none".
func (s *vf2State) nextInIndex(start int) int {
	if !s.directed {
		return -1
	}
	for i := start; i < len(s.mapping); i++ {
		if s.inStamp[i] > 0 && s.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}

// nextRestIndex returns the least unmapped index ≥ start regardless of
// frontier membership (disconnected remainder), or -1 if none remains.
func (s *vf2State) nextRestIndex(start int) int {
	for i := start; i < len(s.mapping); i++ {
		if s.mapping[i] == unmapped {
			return i
		}
	}

	return -1
}

// vertexAt returns the vertex at dense index i, or nil when unavailable.
func (s *vf2State) vertexAt(i int) *core.Vertex {
	if i < 0 || i >= len(s.ids) {
		return nil
	}
	v, err := s.g.GetVertex(s.ids[i])
	if err != nil {
		return nil
	}

	return v
}

// edgeAt returns the edge leaving dense index i toward dense index j in the
// outgoing orientation, or nil when absent.
func (s *vf2State) edgeAt(i, j int) *core.Edge {
	if i < 0 || j < 0 || i >= len(s.ids) || j >= len(s.ids) {
		return nil
	}
	e, err := s.g.EdgeBetween(s.ids[i], s.ids[j])
	if err != nil {
		return nil
	}

	return e
}
