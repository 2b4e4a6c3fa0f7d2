// Package matrix_test verifies the dense adjacency snapshot: index
// bijection stability, cell symmetry for undirected graphs, and the
// out-of-range policy.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/core"
	"github.com/katalvlaran/isograph/matrix"
)

func TestNewAdjacencyMatrix_NilGraph(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestAdjacency_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "A", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	require.Equal(t, 3, am.Dim())
	assert.False(t, am.Directed())
	// Sorted vertex order fixes the bijection: A=0, B=1, C=2.
	assert.Equal(t, []string{"A", "B", "C"}, am.Order)

	assert.True(t, am.IsAdjacent(0, 1))
	assert.True(t, am.IsAdjacent(1, 0), "undirected cells are mirrored")
	assert.True(t, am.IsAdjacent(1, 2))
	assert.False(t, am.IsAdjacent(0, 2))
}

func TestAdjacency_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	assert.True(t, am.Directed())
	assert.True(t, am.IsAdjacent(0, 1))
	assert.False(t, am.IsAdjacent(1, 0), "no mirroring on directed graphs")
}

func TestAdjacency_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 0))

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	assert.True(t, am.IsAdjacent(0, 0))
}

func TestAdjacency_Bijection(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie"} {
		require.NoError(t, g.AddVertex(id))
	}
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	for i := 0; i < am.Dim(); i++ {
		id, err := am.FromIndex(i)
		require.NoError(t, err)
		back, err := am.ToIndex(id)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}

	_, err = am.ToIndex("zulu")
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, err = am.FromIndex(am.Dim())
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = am.FromIndex(-1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

func TestAdjacency_OutOfRangeIsFalse(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	assert.False(t, am.IsAdjacent(-1, 0))
	assert.False(t, am.IsAdjacent(0, 5))
}

func TestAdjacency_Snapshot(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	// Later mutations of the graph do not show up in the snapshot.
	require.NoError(t, g.AddEdge("A", "C", 0))
	assert.Equal(t, 2, am.Dim())
	assert.False(t, am.IsAdjacent(0, 2))
}
