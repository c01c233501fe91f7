package network_test

import (
	"testing"

	"github.com/katalvlaran/visnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathGraph builds the path 0—1—…—(n-1).
func pathGraph(t *testing.T, n int) *network.Network {
	t.Helper()
	g, err := network.New(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.SetEdge(i, i+1))
	}
	return g
}

// TestNew_BadSize rejects non-positive node counts.
func TestNew_BadSize(t *testing.T) {
	_, err := network.New(0)
	assert.ErrorIs(t, err, network.ErrBadSize)

	_, err = network.New(-4)
	assert.ErrorIs(t, err, network.ErrBadSize)
}

// TestSetEdge_Validation covers range and self-loop guards.
func TestSetEdge_Validation(t *testing.T) {
	g, err := network.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetEdge(0, 3), network.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.SetEdge(-1, 1), network.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.SetEdge(1, 1), network.ErrSelfLoop)
}

// TestEdges_SymmetryAndIdempotence verifies undirected storage and
// idempotent mutation with version accounting.
func TestEdges_SymmetryAndIdempotence(t *testing.T) {
	g, err := network.New(4)
	require.NoError(t, err)

	v0 := g.Version()
	require.NoError(t, g.SetEdge(0, 2))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0), "edges must be symmetric")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Greater(t, g.Version(), v0, "mutation must bump the version")

	v1 := g.Version()
	require.NoError(t, g.SetEdge(2, 0))
	assert.Equal(t, 1, g.EdgeCount(), "re-adding must not duplicate")
	assert.Equal(t, v1, g.Version(), "no-op must not bump the version")

	require.NoError(t, g.UnsetEdge(0, 2))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Greater(t, g.Version(), v1)

	v2 := g.Version()
	require.NoError(t, g.UnsetEdge(0, 2))
	assert.Equal(t, v2, g.Version(), "removing a missing edge is a no-op")
}

// TestDegreesAndDensity checks degree accounting on a path graph.
func TestDegreesAndDensity(t *testing.T) {
	g := pathGraph(t, 4)

	assert.Equal(t, []int{1, 2, 2, 1}, g.Degrees())
	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.InDelta(t, 0.5, g.LinkDensity(), 1e-12, "P4 realizes 3 of 6 possible edges")

	_, err = g.Degree(9)
	assert.ErrorIs(t, err, network.ErrIndexOutOfRange)
}

// TestNeighbors returns sorted neighbor indices, also across word
// boundaries (node indexes > 63).
func TestNeighbors(t *testing.T) {
	g, err := network.New(70)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(1, 65))
	require.NoError(t, g.SetEdge(1, 3))
	require.NoError(t, g.SetEdge(1, 64))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 64, 65}, nbrs, "neighbors must come back in index order")
}

// TestFromAdjacency accepts a symmetric literal and rejects bad shapes.
func TestFromAdjacency(t *testing.T) {
	g, err := network.FromAdjacency([][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))

	_, err = network.FromAdjacency([][]bool{
		{false, true},
		{false, false},
	})
	assert.ErrorIs(t, err, network.ErrShape, "asymmetric literal must error")

	_, err = network.FromAdjacency([][]bool{
		{true, false},
		{false, false},
	})
	assert.ErrorIs(t, err, network.ErrSelfLoop, "diagonal entry must error")

	_, err = network.FromAdjacency([][]bool{{false, true}})
	assert.ErrorIs(t, err, network.ErrShape, "ragged literal must error")
}
