// measures.go — clustering statistics on the packed adjacency.
//
// The kernels exploit the bit-row layout: the number of linked pairs
// among the neighbors of i is obtained by AND-ing neighbor rows with
// row i and popcounting, which counts every unordered pair twice.

package network

import "math/bits"

// LocalClustering returns the probability that two distinct neighbors
// of node i are themselves linked:
//
//	C(i) = links(N(i)) / (d·(d−1)/2)
//
// Nodes with degree < 2 have clustering 0.
// Complexity: O(d·n/64).
func (g *Network) LocalClustering(i int) (float64, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}
	return g.localClustering(i), nil
}

// LocalClusteringAll returns the local clustering of every node.
// Complexity: O(m·n/64).
func (g *Network) LocalClusteringAll() []float64 {
	out := make([]float64, g.n)
	for i := range out {
		out[i] = g.localClustering(i)
	}
	return out
}

// Transitivity returns the global clustering coefficient
//
//	T = 3·triangles / triples = Σᵢ 2·Tᵢ / Σᵢ dᵢ·(dᵢ−1)
//
// where Tᵢ is the number of triangles through node i. A network without
// a connected triple has transitivity 0.
// Complexity: O(m·n/64).
func (g *Network) Transitivity() float64 {
	var orderedPairs, triples int
	for i := 0; i < g.n; i++ {
		d := popcountRow(g.rows[i])
		triples += d * (d - 1)
		orderedPairs += g.orderedNeighborLinks(i)
	}
	if triples == 0 {
		return 0
	}
	return float64(orderedPairs) / float64(triples)
}

// localClustering computes C(i) without index validation.
func (g *Network) localClustering(i int) float64 {
	d := popcountRow(g.rows[i])
	if d < 2 {
		return 0
	}
	// orderedNeighborLinks counts each linked neighbor pair twice,
	// matching the d·(d−1) ordered-pair normalization exactly.
	return float64(g.orderedNeighborLinks(i)) / (float64(d) * float64(d-1))
}

// orderedNeighborLinks counts ordered pairs (j,k) with j,k ∈ N(i) and
// j—k an edge; every unordered linked pair contributes 2.
func (g *Network) orderedNeighborLinks(i int) int {
	row := g.rows[i]
	total := 0
	g.forEachNeighbor(i, func(j int) {
		other := g.rows[j]
		for w := range row {
			total += bits.OnesCount64(row[w] & other[w])
		}
	})

	return total
}
