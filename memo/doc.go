// Package memo provides bounded, stats-tracking memoization for
// derived quantities whose validity depends on the state of the object
// they were computed from.
//
// The model: an Owner exposes a Version counter and bumps it on every
// mutation of the attributes its derived quantities depend on. Cache
// entries are keyed by (owner version, method name, argument key), so a
// version bump instantly makes every previously cached quantity
// unreachable — invalidation is the act of mutating, never an explicit
// bookkeeping call. Stale entries age out of the LRU bound.
//
// Per-method hit/miss/size statistics mirror what callers need to
// verify caching behavior in tests, Clear(prefix) drops method families
// wholesale, and a package-level switch turns memoization off globally
// (disabled caches always compute and record nothing).
//
// Typical wiring:
//
//	c, _ := memo.New(64)
//	pl, err := memo.Get(c, g, "path_lengths", "", func() ([][]float64, error) {
//	    return g.PathLengths(), nil
//	})
//
// Thread safety: all Cache methods are safe for concurrent use. When
// two goroutines miss the same key simultaneously both compute; the
// last result wins. Failed computations are never cached.
package memo
