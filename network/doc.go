// Package network provides the dense undirected network core used by
// the visibility-graph constructions: an index-based simple graph on
// packed bit rows, with degree/clustering statistics, all-pairs
// unweighted shortest-path lengths and subset betweenness.
//
// 🚀 What is network?
//
//	A fixed-size, index-addressed adjacency structure tuned for the
//	dense graphs that visibility relations produce:
//		• packed storage — one bit per potential edge, 64 edges per word
//		• O(1) edge queries, O(n/64) degree and neighbor-pair counting
//		• BFS all-pairs path lengths with +Inf for unreachable pairs
//		• Brandes betweenness restricted to source/target subsets
//
// Determinism:
//   - Every method iterates nodes in increasing index order; results are
//     reproducible bit-for-bit across runs.
//
// Mutation and caching:
//   - SetEdge/UnsetEdge bump an internal version counter, so derived
//     quantities memoized elsewhere (see the memo package) are keyed to
//     the exact adjacency they were computed from.
//
// Complexity summary:
//   - HasEdge/SetEdge/UnsetEdge: O(1)
//   - Degree, Neighbors: O(n/64), O(n)
//   - LocalClustering: O(d·n/64) per node
//   - PathLengths: O(n·(n+m)) total
//   - SubsetBetweenness: O(|S|·(n+m)) time, O(n+m) space
package network
