// Package visibility: kinds, options and error definitions for
// visibility-graph construction.
package visibility

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/visnet/memo"
)

// Sentinel errors for graph construction.
var (
	// ErrNilSeries is returned if a nil series pointer is passed.
	ErrNilSeries = errors.New("visibility: series is nil")

	// ErrSeriesTooShort is returned for series with fewer than two
	// observations.
	ErrSeriesTooShort = errors.New("visibility: series too short")

	// ErrMissingValues is returned when the series contains NaN gaps but
	// WithMissingValues was not given.
	ErrMissingValues = errors.New("visibility: series contains missing values")

	// ErrUnknownKind is returned for a Kind outside the defined set.
	ErrUnknownKind = errors.New("visibility: unknown graph kind")
)

// Kind selects the visibility relation used during Build.
//
//   - Natural    — straight sight lines between bar tops; observation
//     timings matter.
//   - Horizontal — horizontal sight lines; only the value ordering
//     matters, timings are ignored.
type Kind int

const (
	// Natural visibility: x_k < x_j + (x_i−x_j)·(t_j−t_k)/(t_j−t_i).
	Natural Kind = iota

	// Horizontal visibility: x_k < min(x_i, x_j).
	Horizontal
)

// String implements fmt.Stringer for logging and CLI output.
func (k Kind) String() string {
	switch k {
	case Natural:
		return "natural"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the resolved Build configuration.
type Options struct {
	// Kind selects the visibility relation (default Natural).
	Kind Kind

	// MissingValues enables the gap treatment: NaN observations become
	// infinitely high obstacles instead of being rejected.
	MissingValues bool

	// Logger receives construction progress at debug level.
	Logger *zap.Logger

	// CacheCapacity bounds the derived-quantity cache.
	CacheCapacity int

	// cacheDisabled switches the graph to pass-through computation.
	cacheDisabled bool
}

// DefaultOptions returns the Build defaults: natural kind, gaps
// rejected, no-op logger, memo.DefaultCapacity cache.
func DefaultOptions() Options {
	return Options{
		Kind:          Natural,
		Logger:        zap.NewNop(),
		CacheCapacity: memo.DefaultCapacity,
	}
}

// WithKind selects the visibility relation.
func WithKind(k Kind) Option {
	return func(o *Options) { o.Kind = k }
}

// WithMissingValues enables NaN gap handling.
func WithMissingValues() Option {
	return func(o *Options) { o.MissingValues = true }
}

// WithLogger attaches a logger for construction and derived-quantity
// progress.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCacheCapacity bounds the derived-quantity cache (entries).
func WithCacheCapacity(n int) Option {
	return func(o *Options) { o.CacheCapacity = n }
}

// WithoutCache disables derived-quantity memoization for this graph.
func WithoutCache() Option {
	return func(o *Options) { o.cacheDisabled = true }
}
