// paths.go — unweighted shortest-path lengths via per-source BFS.

package network

import "math"

// PathLengths returns the all-pairs matrix of unweighted shortest-path
// lengths: out[i][j] is the minimum hop count from i to j, 0 on the
// diagonal and +Inf for unreachable pairs. The matrix is symmetric.
// Complexity: O(n·(n+m)) time, O(n²) memory.
func (g *Network) PathLengths() [][]float64 {
	out := make([][]float64, g.n)
	dist := make([]int, g.n)
	queue := make([]int, 0, g.n)

	for s := 0; s < g.n; s++ {
		g.bfsDistances(s, dist, &queue)

		row := make([]float64, g.n)
		for j, d := range dist {
			if d < 0 {
				row[j] = math.Inf(1)
			} else {
				row[j] = float64(d)
			}
		}
		out[s] = row
	}

	return out
}

// DistancesFrom returns single-source hop counts from s, with -1 for
// unreachable nodes. Returns ErrIndexOutOfRange for an invalid source.
// Complexity: O(n+m).
func (g *Network) DistancesFrom(s int) ([]int, error) {
	if err := g.checkIndex(s); err != nil {
		return nil, err
	}
	dist := make([]int, g.n)
	queue := make([]int, 0, g.n)
	g.bfsDistances(s, dist, &queue)

	return dist, nil
}

// bfsDistances fills dist with hop counts from s (-1 = unreachable),
// reusing the caller's queue backing array across sources.
func (g *Network) bfsDistances(s int, dist []int, queue *[]int) {
	for i := range dist {
		dist[i] = -1
	}
	q := (*queue)[:0]
	dist[s] = 0
	q = append(q, s)

	for head := 0; head < len(q); head++ {
		v := q[head]
		g.forEachNeighbor(v, func(w int) {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				q = append(q, w)
			}
		})
	}
	*queue = q
}
