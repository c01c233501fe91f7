package series

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for series construction and parsing.
var (
	// ErrEmptySeries is returned when no sample values are provided.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrTimingsLength is returned when timings and values differ in length.
	ErrTimingsLength = errors.New("series: timings length mismatch")

	// ErrTimingsOrder is returned when timings are not strictly increasing.
	ErrTimingsOrder = errors.New("series: timings not strictly increasing")

	// ErrBadCSV is returned when CSV input cannot be parsed into a series.
	ErrBadCSV = errors.New("series: malformed CSV input")
)

// nan marks a missing observation; kept as a value to avoid repeated calls.
var nan = math.NaN()

// Option configures Series construction via functional arguments.
type Option func(*config)

type config struct {
	timings []float64
	err     error
}

// WithTimings supplies explicit observation timings.
// The slice must match the value count and be strictly increasing;
// violations surface as ErrTimingsLength / ErrTimingsOrder from New.
func WithTimings(t []float64) Option {
	return func(c *config) {
		c.timings = t
	}
}

// Series is a 1-D scalar time series: sample values plus observation
// timings of equal length. Missing observations are marked by NaN
// values. A Series is treated as immutable once constructed.
type Series struct {
	values  []float64
	timings []float64
}

// New constructs a Series from values, copying its inputs.
// Timings default to 0..n-1 when WithTimings is not given.
// Returns ErrEmptySeries, ErrTimingsLength or ErrTimingsOrder on
// invalid input.
// Complexity: O(n).
func New(values []float64, opts ...Option) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return nil, c.err
	}

	s := &Series{values: append([]float64(nil), values...)}

	if c.timings == nil {
		// Default timings: uniform unit sampling.
		s.timings = make([]float64, len(values))
		for i := range s.timings {
			s.timings[i] = float64(i)
		}
		return s, nil
	}

	if len(c.timings) != len(values) {
		return nil, fmt.Errorf("%w: %d timings for %d values",
			ErrTimingsLength, len(c.timings), len(values))
	}
	for i := 1; i < len(c.timings); i++ {
		if !(c.timings[i] > c.timings[i-1]) {
			return nil, fmt.Errorf("%w: t[%d]=%v, t[%d]=%v",
				ErrTimingsOrder, i-1, c.timings[i-1], i, c.timings[i])
		}
	}
	s.timings = append([]float64(nil), c.timings...)

	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.values) }

// At returns the sample value at index i (NaN for a missing sample).
func (s *Series) At(i int) float64 { return s.values[i] }

// TimeAt returns the observation timing at index i.
func (s *Series) TimeAt(i int) float64 { return s.timings[i] }

// IsMissing reports whether the observation at index i is a gap.
func (s *Series) IsMissing(i int) bool { return math.IsNaN(s.values[i]) }

// HasMissing reports whether any observation is a gap.
// Complexity: O(n).
func (s *Series) HasMissing() bool {
	for _, v := range s.values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// MissingMask returns a fresh boolean mask marking gap positions.
// Complexity: O(n).
func (s *Series) MissingMask() []bool {
	mask := make([]bool, len(s.values))
	for i, v := range s.values {
		mask[i] = math.IsNaN(v)
	}
	return mask
}

// Values returns a copy of the sample values.
func (s *Series) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Timings returns a copy of the observation timings.
func (s *Series) Timings() []float64 {
	return append([]float64(nil), s.timings...)
}

// String returns a short human-readable description.
func (s *Series) String() string {
	return fmt.Sprintf("Series: %d observations over [%v, %v]",
		s.Len(), s.timings[0], s.timings[s.Len()-1])
}
