// Package network: storage and edge-level primitives.
//
// This file declares the Network type, its sentinel errors and the
// constructors, plus the edge/degree accessors. Statistical measures
// live in measures.go, path kernels in paths.go and betweenness.go.
package network

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for network operations.
var (
	// ErrNilNetwork is returned when a nil *Network is passed around.
	ErrNilNetwork = errors.New("network: network is nil")

	// ErrBadSize is returned for a non-positive node count.
	ErrBadSize = errors.New("network: node count must be positive")

	// ErrIndexOutOfRange is returned when a node index is outside [0,n).
	ErrIndexOutOfRange = errors.New("network: node index out of range")

	// ErrSelfLoop is returned when an edge i—i is requested.
	ErrSelfLoop = errors.New("network: self-loops not allowed")

	// ErrBadSubset is returned when a betweenness subset contains an
	// invalid node index.
	ErrBadSubset = errors.New("network: invalid node subset")

	// ErrShape is returned when an adjacency literal is not square or
	// not symmetric.
	ErrShape = errors.New("network: adjacency must be square and symmetric")
)

const wordBits = 64

// Network is a simple undirected graph over nodes 0..n-1, stored as one
// packed bit row per node. The diagonal is always empty (no loops) and
// rows are kept symmetric by construction.
type Network struct {
	n     int
	words int        // words per row = ceil(n/64)
	rows  [][]uint64 // rows[i] bit j set ⇔ edge i—j

	edges   int    // current undirected edge count
	version uint64 // bumped on every successful mutation
}

// New creates an empty Network with n nodes.
// Returns ErrBadSize for n < 1.
// Complexity: O(n²/64) for row allocation.
func New(n int) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	words := (n + wordBits - 1) / wordBits
	rows := make([][]uint64, n)
	backing := make([]uint64, n*words) // single allocation, row-sliced
	for i := range rows {
		rows[i] = backing[i*words : (i+1)*words : (i+1)*words]
	}

	return &Network{n: n, words: words, rows: rows}, nil
}

// FromAdjacency builds a Network from a boolean adjacency literal.
// The literal must be square with an empty diagonal and symmetric
// entries; violations return ErrShape (ErrSelfLoop for the diagonal).
// Complexity: O(n²).
func FromAdjacency(adj [][]bool) (*Network, error) {
	n := len(adj)
	net, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range adj {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries", ErrShape, i, len(row))
		}
		for j, set := range row {
			if !set {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("%w: diagonal entry (%d,%d)", ErrSelfLoop, i, j)
			}
			if !adj[j][i] {
				return nil, fmt.Errorf("%w: entry (%d,%d) not mirrored", ErrShape, i, j)
			}
			if i < j {
				_ = net.SetEdge(i, j)
			}
		}
	}

	return net, nil
}

// N returns the number of nodes.
func (g *Network) N() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Network) EdgeCount() int { return g.edges }

// Version returns the mutation counter; it changes whenever the edge
// set changes, making the Network a valid memo.Owner.
func (g *Network) Version() uint64 { return g.version }

// checkIndex validates a single node index.
func (g *Network) checkIndex(i int) error {
	if i < 0 || i >= g.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrIndexOutOfRange, i, g.n)
	}
	return nil
}

// checkPair validates an edge endpoint pair.
func (g *Network) checkPair(i, j int) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if err := g.checkIndex(j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, i)
	}
	return nil
}

// HasEdge reports whether the edge i—j exists.
// Out-of-range indices report false.
// Complexity: O(1).
func (g *Network) HasEdge(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}
	return g.rows[i][j/wordBits]&(1<<(uint(j)%wordBits)) != 0
}

// SetEdge inserts the undirected edge i—j.
// Idempotent: re-adding an existing edge is a no-op and does not bump
// the version. Returns ErrIndexOutOfRange or ErrSelfLoop.
// Complexity: O(1).
func (g *Network) SetEdge(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if g.HasEdge(i, j) {
		return nil
	}
	g.rows[i][j/wordBits] |= 1 << (uint(j) % wordBits)
	g.rows[j][i/wordBits] |= 1 << (uint(i) % wordBits)
	g.edges++
	g.version++

	return nil
}

// UnsetEdge removes the undirected edge i—j.
// Idempotent, like SetEdge. Returns ErrIndexOutOfRange or ErrSelfLoop.
// Complexity: O(1).
func (g *Network) UnsetEdge(i, j int) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if !g.HasEdge(i, j) {
		return nil
	}
	g.rows[i][j/wordBits] &^= 1 << (uint(j) % wordBits)
	g.rows[j][i/wordBits] &^= 1 << (uint(i) % wordBits)
	g.edges--
	g.version++

	return nil
}

// Degree returns the number of neighbors of node i.
// Complexity: O(n/64).
func (g *Network) Degree(i int) (int, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}
	return popcountRow(g.rows[i]), nil
}

// Degrees returns the degree of every node, in index order.
// Complexity: O(n²/64).
func (g *Network) Degrees() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = popcountRow(g.rows[i])
	}
	return out
}

// LinkDensity returns 2m / (n·(n−1)), the fraction of realized edges.
// A single-node network has density 0.
func (g *Network) LinkDensity() float64 {
	if g.n < 2 {
		return 0
	}
	return float64(2*g.edges) / (float64(g.n) * float64(g.n-1))
}

// Neighbors returns the neighbor indices of node i in increasing order.
// Complexity: O(n).
func (g *Network) Neighbors(i int) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]int, 0, popcountRow(g.rows[i]))
	g.forEachNeighbor(i, func(j int) {
		out = append(out, j)
	})

	return out, nil
}

// forEachNeighbor invokes fn for every neighbor of i in increasing
// index order. Internal fast path: one word at a time, clearing the
// lowest set bit per step.
func (g *Network) forEachNeighbor(i int, fn func(j int)) {
	row := g.rows[i]
	for w, word := range row {
		base := w * wordBits
		for word != 0 {
			fn(base + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}

// popcountRow counts set bits across a packed row.
func popcountRow(row []uint64) int {
	total := 0
	for _, word := range row {
		total += bits.OnesCount64(word)
	}
	return total
}
