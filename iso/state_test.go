// Internal tests for the per-graph search state: construction shape,
// frontier scanning, and the generation-stamped rollback invariant.
package iso

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/builder"
	"github.com/katalvlaran/isograph/core"
)

// stateSnapshot captures everything pushMapping/popMapping may touch.
type stateSnapshot struct {
	mapping    []int
	outStamp   []int
	inStamp    []int
	outCount   int
	inCount    int
	generation int
}

func snapshot(s *vf2State) stateSnapshot {
	return stateSnapshot{
		mapping:    append([]int(nil), s.mapping...),
		outStamp:   append([]int(nil), s.outStamp...),
		inStamp:    append([]int(nil), s.inStamp...),
		outCount:   s.outCount,
		inCount:    s.inCount,
		generation: s.generation,
	}
}

func TestNewVF2State_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	s, err := newVF2State(g)
	require.NoError(t, err)

	assert.Len(t, s.mapping, 4)
	assert.Len(t, s.outStamp, 4)
	assert.Empty(t, s.inStamp, "undirected graphs carry no in-frontier")
	assert.Equal(t, 0, s.generation)
	assert.False(t, s.isComplete())
	for _, v := range s.mapping {
		assert.Equal(t, unmapped, v)
	}
	// Path V0-V1-V2-V3: middle vertices see two neighbors.
	assert.Equal(t, []int{1}, s.out[0])
	assert.Equal(t, []int{0, 2}, s.out[1])
}

func TestNewVF2State_DirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("C", "B", 0))

	s, err := newVF2State(g)
	require.NoError(t, err)

	// Sorted order: A=0, B=1, C=2.
	assert.Equal(t, []int{1}, s.out[0])
	assert.Empty(t, s.out[1])
	assert.Equal(t, []int{0, 2}, s.in[1])
	assert.Len(t, s.inStamp, 3)
}

func TestPushMapping_FrontierStamps(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	s, err := newVF2State(g)
	require.NoError(t, err)

	s.pushMapping(1, 5) // V1 committed; V0 and V2 enter the out-frontier
	assert.Equal(t, 1, s.generation)
	assert.Equal(t, 5, s.mapping[1])
	assert.Equal(t, 2, s.outCount)
	assert.Equal(t, 1, s.outStamp[0])
	assert.Equal(t, 1, s.outStamp[2])
	assert.Equal(t, 0, s.outStamp[3])

	s.pushMapping(2, 6) // V1 already stamped at gen 1; only V3 is new
	assert.Equal(t, 2, s.generation)
	assert.Equal(t, 4, s.outCount)
	assert.Equal(t, 2, s.outStamp[1])
	assert.Equal(t, 2, s.outStamp[3])
	assert.Equal(t, 1, s.outStamp[0], "earlier stamp must not be overwritten")

	// Rolling back gen 2 must leave gen-1 stamps intact.
	s.popMapping(2)
	assert.Equal(t, 1, s.generation)
	assert.Equal(t, 2, s.outCount)
	assert.Equal(t, 1, s.outStamp[0])
	assert.Equal(t, 1, s.outStamp[2])
	assert.Equal(t, 0, s.outStamp[1])
	assert.Equal(t, 0, s.outStamp[3])
}

func TestNextIndices(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	s, err := newVF2State(g)
	require.NoError(t, err)

	assert.Equal(t, -1, s.nextOutIndex(0), "empty frontier before any commit")
	assert.Equal(t, -1, s.nextInIndex(0), "undirected: always none")
	assert.Equal(t, 0, s.nextRestIndex(0))
	assert.Equal(t, 2, s.nextRestIndex(2))
	assert.Equal(t, -1, s.nextRestIndex(3))

	s.pushMapping(1, 0)
	assert.Equal(t, 0, s.nextOutIndex(0), "V0 joined the frontier")
	assert.Equal(t, 2, s.nextOutIndex(1), "V1 is mapped, skip to V2")
	assert.Equal(t, 0, s.nextRestIndex(0))
}

func TestIsComplete(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	s, err := newVF2State(g)
	require.NoError(t, err)

	assert.False(t, s.isComplete())
	s.pushMapping(0, 0)
	assert.True(t, s.isComplete())
	s.popMapping(0)
	assert.False(t, s.isComplete())
}

// TestRollback_RoundTrip drives random LIFO commit/rollback sequences and
// requires the state to return bit-for-bit to its baseline every time the
// generation returns to zero.
func TestRollback_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	graphs := map[string]*core.Graph{}

	undirected, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	graphs["undirected cycle"] = undirected

	directed := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}, {"D", "D"}, {"E", "C"},
	} {
		require.NoError(t, directed.AddEdge(e[0], e[1], 0))
	}
	graphs["directed with loop"] = directed

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			s, err := newVF2State(g)
			require.NoError(t, err)

			baseline := snapshot(s)
			n := len(s.mapping)

			for round := 0; round < 200; round++ {
				var committed []int
				steps := 1 + rng.Intn(2*n)
				for i := 0; i < steps; i++ {
					if len(committed) > 0 && (rng.Intn(2) == 0 || len(committed) == n) {
						top := committed[len(committed)-1]
						committed = committed[:len(committed)-1]
						s.popMapping(top)

						continue
					}
					from := s.nextRestIndex(0)
					for rng.Intn(2) == 1 {
						if nx := s.nextRestIndex(from + 1); nx >= 0 {
							from = nx
						} else {
							break
						}
					}
					s.pushMapping(from, rng.Intn(n))
					committed = append(committed, from)
				}
				for len(committed) > 0 {
					top := committed[len(committed)-1]
					committed = committed[:len(committed)-1]
					s.popMapping(top)
				}
				require.Equal(t, baseline, snapshot(s), "round %d", round)
			}
		})
	}
}
