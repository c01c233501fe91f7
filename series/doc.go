// Package series provides the scalar time-series value object consumed
// by the visibility-graph constructors, plus CSV ingestion and
// deterministic synthetic generators for tests and demos.
//
// A Series couples sample values with observation timings. Timings
// default to 0..n-1 and must be strictly increasing; irregular sampling
// is fully supported and changes natural (but not horizontal)
// visibility. Missing observations are marked with the IEEE NaN flag in
// the value slice — downstream constructions treat a gap as an
// infinitely high obstacle.
//
// Generators (Sine, Chirp, RandomWalk) follow a strict determinism
// policy: the same (n, seed, options) always produce the same samples,
// and an explicitly shared RNG can be injected via WithRand.
//
// Complexity: all accessors are O(1); construction, CSV parsing and
// generation are O(n).
package series
