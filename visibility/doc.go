// Package visibility constructs visibility graphs from scalar time
// series and computes time-directed node measures on them.
//
// 🚀 What is a visibility graph?
//
//	Interpret every observation (tᵢ, xᵢ) as a vertical bar. Two
//	observations are connected when they can "see" each other over
//	all bars in between:
//		• Natural    — the straight sight line between the bar tops
//		  clears every intermediate bar:
//		  x_k < x_j + (x_i − x_j)·(t_j − t_k)/(t_j − t_i)  ∀ i<k<j
//		• Horizontal — a horizontal sight line clears them:
//		  x_k < min(x_i, x_j)                              ∀ i<k<j
//
//	The resulting network inherits the series' temporal order, so
//	every node splits its neighborhood into a past (indices < i,
//	"retarded") and a future (indices > i, "advanced") side.
//
// ✨ Key features:
//   - natural and horizontal kinds behind one Build call
//   - irregular observation timings (they reshape natural visibility)
//   - NaN gaps as infinitely high obstacles: a gap blocks every sight
//     line across it and leaves its own node isolated, splitting the
//     graph into disconnected components
//   - retarded/advanced degree, local clustering, closeness and
//     betweenness, plus boundary-corrected degree and closeness
//   - derived quantities memoized per adjacency version (memo package)
//
// ⚙️ Usage:
//
//	s, _ := series.New([]float64{3, 1, 2, 4})
//	g, err := visibility.Build(s, visibility.WithKind(visibility.Horizontal))
//	if err != nil { ... }
//	deg, _ := g.RetardedDegree()
//
// Numeric conventions:
//   - closeness over an empty past/future window is NaN (the first node
//     has no past); a disconnected window yields closeness 0
//   - boundary-corrected closeness is NaN at both boundary nodes
//
// Performance:
//   - Build: O(n²) typical, O(n³) adversarial (every sight line checked
//     against every intermediate bar); memory O(n²/64)
//   - measures: degree/clustering O(n·d), closeness O(n·(n+m)) once,
//     betweenness O(n²·(n+m))
package visibility
