// generate.go — deterministic synthetic series for tests, demos and the CLI.
//
// Determinism policy (shared across generators):
//   - If WithRand supplies an *rand.Rand → use it (shared stream).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// Each generator returns a ready *Series of length n, or ErrEmptySeries
// for n < 1. O(n) time, O(n) memory, no global state.

package series

import (
	"math"
	"math/rand"
)

// Generator defaults. Kept as named constants so fixtures stay golden-friendly.
const (
	defAmp     = 1.0  // amplitude > 0
	defFreq    = 0.05 // base frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // chirp end frequency (cycles/sample) > 0
	defSigma   = 0.0  // Gaussian noise sigma ≥ 0
	defStep    = 1.0  // random-walk step scale > 0

	tau = 2.0 * math.Pi
)

// GenOption tunes the synthetic generators.
type GenOption func(*genConfig)

type genConfig struct {
	amp   float64
	freq  float64
	freq1 float64
	sigma float64
	step  float64
	trend float64
	rng   *rand.Rand
}

func newGenConfig(opts ...GenOption) genConfig {
	c := genConfig{
		amp:   defAmp,
		freq:  defFreq,
		freq1: defChirpF1,
		sigma: defSigma,
		step:  defStep,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithAmplitude sets the oscillation amplitude (ignored by RandomWalk).
func WithAmplitude(a float64) GenOption { return func(c *genConfig) { c.amp = a } }

// WithFrequency sets the base frequency in cycles per sample.
func WithFrequency(f float64) GenOption { return func(c *genConfig) { c.freq = f } }

// WithEndFrequency sets the final frequency of the chirp sweep.
func WithEndFrequency(f float64) GenOption { return func(c *genConfig) { c.freq1 = f } }

// WithNoise adds Gaussian noise with the given sigma to every sample.
func WithNoise(sigma float64) GenOption { return func(c *genConfig) { c.sigma = sigma } }

// WithStep sets the random-walk step scale.
func WithStep(s float64) GenOption { return func(c *genConfig) { c.step = s } }

// WithTrend adds a linear trend increment per sample.
func WithTrend(slope float64) GenOption { return func(c *genConfig) { c.trend = slope } }

// WithRand injects a shared RNG stream, overriding the seed argument.
func WithRand(r *rand.Rand) GenOption { return func(c *genConfig) { c.rng = r } }

// rngFrom honors a shared stream when present, else derives one from seed.
func rngFrom(c genConfig, seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(seed))
}

// Sine returns a length-n sinusoid: yᵢ = A·sin(τ·f·i) + trend·i + noise.
func Sine(n int, seed int64, opts ...GenOption) (*Series, error) {
	if n < 1 {
		return nil, ErrEmptySeries
	}
	c := newGenConfig(opts...)
	rng := rngFrom(c, seed)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := c.amp * math.Sin(tau*c.freq*float64(i))
		v += c.trend * float64(i)
		if c.sigma > 0 {
			v += c.sigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return New(out)
}

// Chirp returns a length-n linear chirp sweeping from freq to freq1.
// Model:
//   - fᵢ = f0 + (f1 − f0) · i/(n−1)   (cycles/sample)
//   - θᵢ = θᵢ₋₁ + τ·fᵢ with θ₋₁ = 0    (phase accumulator)
//   - yᵢ = A·sin(θᵢ) + trend·i + noise
//
// so y₀ = A·sin(τ·f0).
func Chirp(n int, seed int64, opts ...GenOption) (*Series, error) {
	if n < 1 {
		return nil, ErrEmptySeries
	}
	c := newGenConfig(opts...)
	rng := rngFrom(c, seed)

	out := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi := c.freq + (c.freq1-c.freq)*t
		theta += tau * fi

		v := c.amp * math.Sin(theta)
		v += c.trend * float64(i)
		if c.sigma > 0 {
			v += c.sigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return New(out)
}

// RandomWalk returns a length-n Gaussian random walk:
// y₀ = 0, yᵢ = yᵢ₋₁ + step·N(0,1) + trend.
func RandomWalk(n int, seed int64, opts ...GenOption) (*Series, error) {
	if n < 1 {
		return nil, ErrEmptySeries
	}
	c := newGenConfig(opts...)
	rng := rngFrom(c, seed)

	out := make([]float64, n)
	v := 0.0
	for i := 0; i < n; i++ {
		out[i] = v
		v += c.step*rng.NormFloat64() + c.trend
	}

	return New(out)
}
