package visibility

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/visnet/memo"
	"github.com/katalvlaran/visnet/network"
	"github.com/katalvlaran/visnet/series"
)

// Build constructs the visibility graph of s, applying any number of
// functional Options.
//
// Gap semantics: with WithMissingValues, a NaN observation acts as an
// infinitely high bar — it blocks every sight line across it and stays
// isolated itself, so each gap splits the graph into disconnected
// components. This applies to both kinds. Without the option a series
// containing NaN is rejected with ErrMissingValues.
//
// Returns ErrNilSeries, ErrSeriesTooShort, ErrMissingValues or
// ErrUnknownKind on invalid input.
// Complexity: O(n²) typical, O(n³) adversarial; memory O(n²/64).
func Build(s *series.Series, opts ...Option) (*Graph, error) {
	if s == nil {
		return nil, ErrNilSeries
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Kind != Natural && o.Kind != Horizontal {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(o.Kind))
	}

	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: %d observations", ErrSeriesTooShort, n)
	}
	if !o.MissingValues && s.HasMissing() {
		return nil, ErrMissingValues
	}

	net, err := network.New(n)
	if err != nil {
		return nil, err
	}

	x := s.Values()
	var gap []bool
	if o.MissingValues {
		gap = s.MissingMask()
	}

	o.Logger.Debug("calculating visibility relations",
		zap.Stringer("kind", o.Kind), zap.Int("n", n))

	switch o.Kind {
	case Natural:
		naturalRelations(net, x, s.Timings(), gap)
	case Horizontal:
		horizontalRelations(net, x, gap)
	}

	cacheOpts := []memo.Option{memo.WithLogger(o.Logger)}
	if o.cacheDisabled {
		cacheOpts = append(cacheOpts, memo.WithDisabled())
	}
	cache, err := memo.New(o.CacheCapacity, cacheOpts...)
	if err != nil {
		return nil, err
	}

	return &Graph{
		net:   net,
		src:   s,
		kind:  o.Kind,
		cache: cache,
		log:   o.Logger,
	}, nil
}

// naturalRelations links i—j when the straight sight line between the
// tops of bars i and j clears every intermediate bar:
//
//	x_k < x_j + (x_i − x_j)·(t_j − t_k)/(t_j − t_i)  for all i < k < j
//
// gap == nil means the series is dense; otherwise gap nodes block and
// stay isolated. Fixed i→j→k loop order keeps the construction
// deterministic.
func naturalRelations(net *network.Network, x, t []float64, gap []bool) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		if gap != nil && gap[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if gap != nil && gap[j] {
				continue
			}
			visible := true
			for k := i + 1; k < j; k++ {
				if gap != nil && gap[k] {
					visible = false
					break
				}
				if x[k] >= x[j]+(x[i]-x[j])*(t[j]-t[k])/(t[j]-t[i]) {
					visible = false
					break
				}
			}
			if visible {
				_ = net.SetEdge(i, j)
			}
		}
	}
}

// horizontalRelations links i—j when every intermediate bar stays below
// both endpoints: x_k < min(x_i, x_j) for all i < k < j. Timings are
// irrelevant for horizontal sight lines.
func horizontalRelations(net *network.Network, x []float64, gap []bool) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		if gap != nil && gap[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if gap != nil && gap[j] {
				continue
			}
			visible := true
			for k := i + 1; k < j; k++ {
				if gap != nil && gap[k] {
					visible = false
					break
				}
				if x[k] >= x[i] || x[k] >= x[j] {
					visible = false
					break
				}
			}
			if visible {
				_ = net.SetEdge(i, j)
			}
		}
	}
}
