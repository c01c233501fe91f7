// betweenness.go — Brandes shortest-path betweenness restricted to
// source/target subsets.
//
// SubsetBetweenness(S, T)[v] = Σ_{s∈S, t∈T, s≠t, v∉{s,t}} σ_st(v)/σ_st
//
// where σ_st counts shortest s→t paths and σ_st(v) those through v.
// Ordered (s,t) pairs are counted: with S == T every unordered pair
// contributes twice (the symmetric double of the textbook undirected
// value), which keeps the directional visibility measures additive.

package network

// SubsetBetweenness accumulates betweenness over sources S and targets
// T. Duplicate indices are ignored; an out-of-range index returns
// ErrBadSubset. Endpoint nodes accrue nothing for their own pairs.
// Complexity: O(|S|·(n+m)) time, O(n+m) space.
func (g *Network) SubsetBetweenness(sources, targets []int) ([]float64, error) {
	inSource, err := g.subsetMask(sources)
	if err != nil {
		return nil, err
	}
	inTarget, err := g.subsetMask(targets)
	if err != nil {
		return nil, err
	}

	bc := make([]float64, g.n)
	// Per-source scratch, reused across the accumulation loop.
	var (
		dist  = make([]int, g.n)
		sigma = make([]float64, g.n)
		delta = make([]float64, g.n)
		preds = make([][]int, g.n)
		order = make([]int, 0, g.n)
	)

	for s := 0; s < g.n; s++ {
		if !inSource[s] {
			continue
		}
		order = order[:0]
		for i := range dist {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
			preds[i] = preds[i][:0]
		}

		// Forward phase: BFS recording path counts and predecessors.
		dist[s] = 0
		sigma[s] = 1
		order = append(order, s)
		for head := 0; head < len(order); head++ {
			v := order[head]
			g.forEachNeighbor(v, func(w int) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					order = append(order, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			})
		}

		// Backward phase: dependency accumulation seeded at targets.
		for idx := len(order) - 1; idx >= 0; idx-- {
			w := order[idx]
			coeff := delta[w]
			if inTarget[w] && w != s {
				coeff++
			}
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * coeff
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}

	return bc, nil
}

// subsetMask validates a node subset and returns its membership mask.
func (g *Network) subsetMask(subset []int) ([]bool, error) {
	mask := make([]bool, g.n)
	for _, i := range subset {
		if i < 0 || i >= g.n {
			return nil, ErrBadSubset
		}
		mask[i] = true
	}
	return mask, nil
}
