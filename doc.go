// Package visnet turns scalar time series into complex networks and
// computes node-level network measures on them.
//
// 🚀 What is visnet?
//
//	A library for time-series network analysis built around the
//	visibility-graph construction:
//		• series/     — time-series container: samples, timings, NaN gaps,
//		                CSV ingestion and deterministic synthetic generators
//		• network/    — dense undirected network core: degree, clustering,
//		                all-pairs path lengths, subset betweenness
//		• visibility/ — natural & horizontal visibility graphs with
//		                retarded/advanced and boundary-corrected measures
//		• memo/       — bounded, stats-tracking memoization of derived
//		                quantities with state-dependent invalidation
//		• cmd/visnet  — CLI for one-shot analyses and synthetic data
//
// ✨ Why choose visnet?
//
//   - Deterministic – index-based kernels, fixed loop orders, seeded RNG
//   - Honest numerics – NaN marks a gap, +Inf marks unreachability; the
//     library propagates both instead of masking them
//   - Small API – build a graph once, read measures as plain slices
//
// Quick ASCII example. The series 3,1,2,4 yields the natural visibility
// graph below (every bar sees its neighbor; 3 also sees 4 over the dip):
//
//	3───────4
//	└─1───2─┘
//
// Dive into the per-package doc.go files for formulas, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/visnet
package visnet
