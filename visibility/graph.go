package visibility

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/visnet/memo"
	"github.com/katalvlaran/visnet/network"
	"github.com/katalvlaran/visnet/series"
)

// Graph is a constructed visibility graph: the underlying network, the
// source series it was built from, and a bounded cache for derived
// quantities. Nodes are observation indices 0..n-1 in temporal order.
type Graph struct {
	net   *network.Network
	src   *series.Series
	kind  Kind
	cache *memo.Cache
	log   *zap.Logger
}

// N returns the number of nodes (observations).
func (g *Graph) N() int { return g.net.N() }

// Kind returns the visibility relation the graph was built with.
func (g *Graph) Kind() Kind { return g.kind }

// Series returns the source time series.
func (g *Graph) Series() *series.Series { return g.src }

// Network exposes the underlying adjacency for the generic network
// measures (degree, clustering, path lengths, betweenness). Mutating
// it invalidates every cached derived quantity via the version key.
func (g *Graph) Network() *network.Network { return g.net }

// Version implements memo.Owner by delegating to the adjacency version.
func (g *Graph) Version() uint64 { return g.net.Version() }

// Visibility reports whether observations i and j see each other.
// Out-of-range indices report false.
func (g *Graph) Visibility(i, j int) bool { return g.net.HasEdge(i, j) }

// VisibilityRow returns the visibility of node i towards every node.
// Complexity: O(n).
func (g *Graph) VisibilityRow(i int) ([]bool, error) {
	if i < 0 || i >= g.N() {
		return nil, fmt.Errorf("%w: %d", network.ErrIndexOutOfRange, i)
	}
	out := make([]bool, g.N())
	for j := range out {
		out[j] = g.net.HasEdge(i, j)
	}
	return out, nil
}

// CacheStats reports the accounting for one cached quantity name.
func (g *Graph) CacheStats(method string) memo.Stats { return g.cache.Stats(method) }

// ClearCache drops cached quantities whose name starts with prefix
// (empty prefix clears all of them).
func (g *Graph) ClearCache(prefix string) { g.cache.Clear(prefix) }

// String returns a short human-readable description.
func (g *Graph) String() string {
	return fmt.Sprintf("VisibilityGraph(%s): %d nodes, %d edges",
		g.kind, g.N(), g.net.EdgeCount())
}

// pathLengths memoizes the all-pairs shortest-path matrix; every
// closeness variant reads from the same cached copy.
func (g *Graph) pathLengths() ([][]float64, error) {
	return memo.Get(g.cache, g, "path_lengths", "", func() ([][]float64, error) {
		return g.net.PathLengths(), nil
	})
}
