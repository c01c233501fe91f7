// measures.go — time-directed node measures on a visibility graph.
//
// Every node splits its neighborhood by temporal order: the retarded
// side looks at indices < i (the past), the advanced side at indices
// > i (the future). All slices are indexed by node and memoized under
// the quantity name shown in the method doc.

package visibility

import (
	"math"

	"github.com/katalvlaran/visnet/memo"
)

// RetardedDegree returns the number of neighbors in the past of each
// node. Cached as "retarded_degree".
func (g *Graph) RetardedDegree() ([]float64, error) {
	return memo.Get(g.cache, g, "retarded_degree", "", func() ([]float64, error) {
		return g.directionalDegree(true), nil
	})
}

// AdvancedDegree returns the number of neighbors in the future of each
// node. Cached as "advanced_degree".
func (g *Graph) AdvancedDegree() ([]float64, error) {
	return memo.Get(g.cache, g, "advanced_degree", "", func() ([]float64, error) {
		return g.directionalDegree(false), nil
	})
}

// RetardedLocalClustering returns, per node, the probability that two
// of its past neighbors are themselves linked; 0 when the past degree
// is below 2. Cached as "retarded_clustering".
func (g *Graph) RetardedLocalClustering() ([]float64, error) {
	return memo.Get(g.cache, g, "retarded_clustering", "", func() ([]float64, error) {
		return g.directionalClustering(true), nil
	})
}

// AdvancedLocalClustering is the future-side counterpart of
// RetardedLocalClustering. Cached as "advanced_clustering".
func (g *Graph) AdvancedLocalClustering() ([]float64, error) {
	return memo.Get(g.cache, g, "advanced_clustering", "", func() ([]float64, error) {
		return g.directionalClustering(false), nil
	})
}

// RetardedCloseness returns the inverse mean shortest-path length from
// each node to its past. The first node has no past: its closeness is
// NaN. A node whose past window is unreachable has closeness 0.
// Cached as "retarded_closeness".
func (g *Graph) RetardedCloseness() ([]float64, error) {
	pl, err := g.pathLengths()
	if err != nil {
		return nil, err
	}
	return memo.Get(g.cache, g, "retarded_closeness", "", func() ([]float64, error) {
		out := make([]float64, g.N())
		for i := range out {
			out[i] = invMean(pl[i][:i])
		}
		return out, nil
	})
}

// AdvancedCloseness is the future-side counterpart of
// RetardedCloseness; the last node's value is NaN.
// Cached as "advanced_closeness".
func (g *Graph) AdvancedCloseness() ([]float64, error) {
	pl, err := g.pathLengths()
	if err != nil {
		return nil, err
	}
	return memo.Get(g.cache, g, "advanced_closeness", "", func() ([]float64, error) {
		out := make([]float64, g.N())
		for i := range out {
			out[i] = invMean(pl[i][i+1:])
		}
		return out, nil
	})
}

// RetardedBetweenness returns each node's betweenness with respect to
// all pairs of nodes in its past. Cached as "retarded_betweenness".
// Complexity: O(n²·(n+m)).
func (g *Graph) RetardedBetweenness() ([]float64, error) {
	return memo.Get(g.cache, g, "retarded_betweenness", "", func() ([]float64, error) {
		return g.windowBetweenness(func(i, n int) ([]int, []int) {
			past := indexRange(0, i)
			return past, past
		})
	})
}

// AdvancedBetweenness returns each node's betweenness with respect to
// all pairs of nodes in its future. Cached as "advanced_betweenness".
func (g *Graph) AdvancedBetweenness() ([]float64, error) {
	return memo.Get(g.cache, g, "advanced_betweenness", "", func() ([]float64, error) {
		return g.windowBetweenness(func(i, n int) ([]int, []int) {
			future := indexRange(i+1, n)
			return future, future
		})
	})
}

// TransBetweenness returns each node's betweenness with respect to
// pairs spanning its past and its future. Cached as
// "trans_betweenness".
func (g *Graph) TransBetweenness() ([]float64, error) {
	return memo.Get(g.cache, g, "trans_betweenness", "", func() ([]float64, error) {
		return g.windowBetweenness(func(i, n int) ([]int, []int) {
			return indexRange(0, i), indexRange(i+1, n)
		})
	})
}

// BoundaryCorrectedDegree returns a degree weighted against the trivial
// boundary bias of time-ordered graphs (early nodes have little past,
// late nodes little future):
//
//	cdeg(i) = (retarded(i)·i + advanced(i)·(n−1−i)) / (n−1)
func (g *Graph) BoundaryCorrectedDegree() ([]float64, error) {
	rd, err := g.RetardedDegree()
	if err != nil {
		return nil, err
	}
	ad, err := g.AdvancedDegree()
	if err != nil {
		return nil, err
	}

	n := g.N()
	out := make([]float64, n)
	for i := range out {
		out[i] = (rd[i]*float64(i) + ad[i]*float64(n-1-i)) / float64(n-1)
	}
	return out, nil
}

// BoundaryCorrectedCloseness returns the boundary-weighted closeness
//
//	ccls(i) = (n−1) · (retarded(i)/i + advanced(i)/(n−1−i))
//
// The two boundary nodes have no past (respectively future), so their
// value is NaN; the NaN is propagated, not masked.
func (g *Graph) BoundaryCorrectedCloseness() ([]float64, error) {
	rc, err := g.RetardedCloseness()
	if err != nil {
		return nil, err
	}
	ac, err := g.AdvancedCloseness()
	if err != nil {
		return nil, err
	}

	n := g.N()
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n-1) * (rc[i]/float64(i) + ac[i]/float64(n-1-i))
	}
	return out, nil
}

// directionalDegree counts past (or future) neighbors per node.
func (g *Graph) directionalDegree(past bool) []float64 {
	n := g.N()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		count := 0
		for _, j := range g.neighbors(i) {
			if (past && j < i) || (!past && j > i) {
				count++
			}
		}
		out[i] = float64(count)
	}
	return out
}

// directionalClustering computes the linked-pair probability over past
// (or future) neighbor sets.
func (g *Graph) directionalClustering(past bool) []float64 {
	n := g.N()
	out := make([]float64, n)
	side := make([]int, 0, n)
	for i := 0; i < n; i++ {
		side = side[:0]
		for _, j := range g.neighbors(i) {
			if (past && j < i) || (!past && j > i) {
				side = append(side, j)
			}
		}
		d := len(side)
		if d < 2 {
			continue
		}
		links := 0
		for a := 0; a < d; a++ {
			for b := a + 1; b < d; b++ {
				if g.net.HasEdge(side[a], side[b]) {
					links++
				}
			}
		}
		out[i] = float64(links) / float64(d*(d-1)/2)
	}
	return out
}

// windowBetweenness evaluates subset betweenness per node, with the
// window function supplying the (sources, targets) pair for node i.
func (g *Graph) windowBetweenness(window func(i, n int) ([]int, []int)) ([]float64, error) {
	n := g.N()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sources, targets := window(i, n)
		bc, err := g.net.SubsetBetweenness(sources, targets)
		if err != nil {
			return nil, err
		}
		out[i] = bc[i]
	}
	return out, nil
}

// neighbors is the validated-index fast path around Network.Neighbors.
func (g *Graph) neighbors(i int) []int {
	nbrs, _ := g.net.Neighbors(i)
	return nbrs
}

// invMean returns the inverse mean of a distance window: NaN for an
// empty window, 0 when the window contains an unreachable (+Inf) pair.
func invMean(window []float64) float64 {
	if len(window) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, d := range window {
		sum += d
	}
	return float64(len(window)) / sum
}

// indexRange returns the indices lo..hi-1.
func indexRange(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}
	return out
}
