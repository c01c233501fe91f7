package network_test

import (
	"testing"

	"github.com/katalvlaran/visnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleGraph builds K3.
func triangleGraph(t *testing.T) *network.Network {
	t.Helper()
	g, err := network.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1))
	require.NoError(t, g.SetEdge(1, 2))
	require.NoError(t, g.SetEdge(0, 2))
	return g
}

// diamondGraph builds the 4-cycle 0—1—2—3—0 with the chord 0—2.
func diamondGraph(t *testing.T) *network.Network {
	t.Helper()
	g, err := network.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		require.NoError(t, g.SetEdge(e[0], e[1]))
	}
	return g
}

// TestLocalClustering_Triangle: every node of K3 closes its only pair.
func TestLocalClustering_Triangle(t *testing.T) {
	g := triangleGraph(t)

	for i := 0; i < 3; i++ {
		c, err := g.LocalClustering(i)
		require.NoError(t, err)
		assert.Equal(t, 1.0, c, "K3 clustering must be 1 at node %d", i)
	}
	assert.Equal(t, 1.0, g.Transitivity())
}

// TestLocalClustering_Path: a tree has no triangles.
func TestLocalClustering_Path(t *testing.T) {
	g := pathGraph(t, 4)

	assert.Equal(t, []float64{0, 0, 0, 0}, g.LocalClusteringAll())
	assert.Equal(t, 0.0, g.Transitivity())
}

// TestLocalClustering_Diamond checks the hand-computed mixed case.
func TestLocalClustering_Diamond(t *testing.T) {
	g := diamondGraph(t)

	want := []float64{2.0 / 3.0, 1, 2.0 / 3.0, 1}
	got := g.LocalClusteringAll()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "clustering at node %d", i)
	}

	// 2 triangles, Σ 2·Tᵢ = 12, Σ dᵢ(dᵢ−1) = 16.
	assert.InDelta(t, 0.75, g.Transitivity(), 1e-12)
}

// TestLocalClustering_LowDegree: degree 0 and 1 define clustering 0.
func TestLocalClustering_LowDegree(t *testing.T) {
	g, err := network.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1))

	c, err := g.LocalClustering(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c, "degree-1 node")
	c, err = g.LocalClustering(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c, "isolated node")

	_, err = g.LocalClustering(5)
	assert.ErrorIs(t, err, network.ErrIndexOutOfRange)
}
