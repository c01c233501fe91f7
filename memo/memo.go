package memo

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// ErrBadCapacity is returned for a non-positive cache capacity.
var ErrBadCapacity = errors.New("memo: capacity must be positive")

// DefaultCapacity bounds a cache when the caller has no better number.
const DefaultCapacity = 128

// Owner identifies the object a derived quantity belongs to. Version
// must change whenever an attribute the cached quantities depend on is
// mutated; a constant Version declares the owner immutable.
type Owner interface {
	Version() uint64
}

// Stats reports per-method cache accounting, in the spirit of an LRU
// cache_info: lookups that hit, lookups that missed, entries currently
// held for the method, and the shared cache capacity.
type Stats struct {
	Hits     int
	Misses   int
	Size     int
	Capacity int
}

// globalEnable is the package-wide switch; caches check it on every Do.
var globalEnable atomic.Bool

func init() { globalEnable.Store(true) }

// Enable toggles memoization globally. Disabled caches compute every
// call and record no statistics.
func Enable(on bool) { globalEnable.Store(on) }

// Enabled reports the global switch state.
func Enabled() bool { return globalEnable.Load() }

// key addresses one cached quantity instance.
type key struct {
	version uint64
	method  string
	arg     string
}

// Cache memoizes derived quantities in a shared LRU bound.
type Cache struct {
	mu       sync.Mutex
	entries  *lru.Cache[key, any]
	stats    map[string]*Stats
	capacity int
	disabled bool
	log      *zap.Logger
}

// Option configures a Cache at construction.
type Option func(*Cache)

// WithLogger attaches a logger; every miss logs the quantity being
// calculated at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDisabled creates the cache in pass-through mode regardless of the
// global switch.
func WithDisabled() Option {
	return func(c *Cache) { c.disabled = true }
}

// New creates a Cache holding at most capacity entries across all
// methods. Returns ErrBadCapacity for capacity < 1.
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	c := &Cache{
		stats:    make(map[string]*Stats),
		capacity: capacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// The eviction hook only ever runs inside operations that already
	// hold c.mu, so it may touch c.stats without locking.
	entries, err := lru.NewWithEvict[key, any](capacity, func(k key, _ any) {
		if st, ok := c.stats[k.method]; ok {
			st.Size--
		}
	})
	if err != nil {
		return nil, err
	}
	c.entries = entries

	return c, nil
}

// Do returns the cached value for (owner, method, arg) or computes,
// stores and returns it. arg encodes the call-site argument pattern;
// use "" for nullary quantities. Errors from compute pass through
// uncached.
func (c *Cache) Do(owner Owner, method, arg string, compute func() (any, error)) (any, error) {
	// Pass-through mode still announces the computation; only the
	// lookup and the statistics are skipped.
	if c.disabled || !Enabled() {
		c.log.Debug("calculating", zap.String("quantity", method))
		return compute()
	}
	k := key{version: owner.Version(), method: method, arg: arg}

	c.mu.Lock()
	st := c.stat(method)
	if v, ok := c.entries.Get(k); ok {
		st.Hits++
		c.mu.Unlock()
		return v, nil
	}
	st.Misses++
	c.mu.Unlock()

	c.log.Debug("calculating", zap.String("quantity", method))
	v, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if _, ok := c.entries.Peek(k); !ok {
		c.entries.Add(k, v)
		st.Size++
	}
	c.mu.Unlock()

	return v, nil
}

// Get is the typed front of Cache.Do.
func Get[T any](c *Cache, owner Owner, method, arg string, compute func() (T, error)) (T, error) {
	v, err := c.Do(owner, method, arg, func() (any, error) { return compute() })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Stats returns a copy of the accounting for one method name.
func (c *Cache) Stats(method string) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.stats[method]; ok {
		out := *st
		out.Capacity = c.capacity
		return out
	}
	return Stats{Capacity: c.capacity}
}

// TotalStats sums the accounting across all methods.
func (c *Cache) TotalStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := Stats{Capacity: c.capacity}
	for _, st := range c.stats {
		out.Hits += st.Hits
		out.Misses += st.Misses
		out.Size += st.Size
	}
	return out
}

// Clear drops every entry whose method name starts with prefix and
// resets the matching statistics; the empty prefix clears everything.
func (c *Cache) Clear(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k.method, prefix) {
			c.entries.Remove(k)
		}
	}
	for method := range c.stats {
		if strings.HasPrefix(method, prefix) {
			delete(c.stats, method)
		}
	}
}

// stat returns the mutable accounting slot for method; c.mu held.
func (c *Cache) stat(method string) *Stats {
	st, ok := c.stats[method]
	if !ok {
		st = &Stats{}
		c.stats[method] = st
	}
	return st
}
