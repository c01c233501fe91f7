package network_test

import (
	"testing"

	"github.com/katalvlaran/visnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubsetBetweenness_FullPath: on P4 with S = T = all nodes the
// accumulation counts ordered pairs, i.e. twice the textbook value.
func TestSubsetBetweenness_FullPath(t *testing.T) {
	g := pathGraph(t, 4)
	all := []int{0, 1, 2, 3}

	bc, err := g.SubsetBetweenness(all, all)
	require.NoError(t, err)

	// Textbook P4 betweenness is [0,2,2,0]; ordered pairs double it.
	assert.Equal(t, []float64{0, 4, 4, 0}, bc)
}

// TestSubsetBetweenness_SinglePair credits only the interior of the
// unique shortest path.
func TestSubsetBetweenness_SinglePair(t *testing.T) {
	g := pathGraph(t, 4)

	bc, err := g.SubsetBetweenness([]int{0}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, bc)
}

// TestSubsetBetweenness_SplitPaths divides credit across equal-length
// shortest paths. C4: pair (0,2) has two 2-hop routes via 1 and 3.
func TestSubsetBetweenness_SplitPaths(t *testing.T) {
	g, err := network.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.SetEdge(e[0], e[1]))
	}

	bc, err := g.SubsetBetweenness([]int{0}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0, 0.5}, bc)
}

// TestSubsetBetweenness_EmptyAndInvalid covers the edge cases.
func TestSubsetBetweenness_EmptyAndInvalid(t *testing.T) {
	g := pathGraph(t, 3)

	bc, err := g.SubsetBetweenness(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, bc, "empty subsets accumulate nothing")

	_, err = g.SubsetBetweenness([]int{0, 9}, []int{1})
	assert.ErrorIs(t, err, network.ErrBadSubset)

	_, err = g.SubsetBetweenness([]int{0}, []int{-1})
	assert.ErrorIs(t, err, network.ErrBadSubset)
}

// TestSubsetBetweenness_TargetAsIntermediary: a target node still earns
// credit when it relays pairs bound for farther targets.
func TestSubsetBetweenness_TargetAsIntermediary(t *testing.T) {
	g := pathGraph(t, 4)

	bc, err := g.SubsetBetweenness([]int{0}, []int{2, 3})
	require.NoError(t, err)
	// Pair (0,2): interior {1}. Pair (0,3): interior {1,2}.
	assert.Equal(t, []float64{0, 2, 1, 0}, bc)
}

// TestSubsetBetweenness_Duplicates: duplicate subset entries are
// membership, not multiplicity.
func TestSubsetBetweenness_Duplicates(t *testing.T) {
	g := pathGraph(t, 4)

	once, err := g.SubsetBetweenness([]int{0}, []int{3})
	require.NoError(t, err)
	twice, err := g.SubsetBetweenness([]int{0, 0}, []int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
