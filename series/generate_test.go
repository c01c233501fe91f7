package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/visnet/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_InvalidLength verifies n < 1 is rejected uniformly.
func TestGenerators_InvalidLength(t *testing.T) {
	_, err := series.Sine(0, 1)
	assert.ErrorIs(t, err, series.ErrEmptySeries)

	_, err = series.Chirp(0, 1)
	assert.ErrorIs(t, err, series.ErrEmptySeries)

	_, err = series.RandomWalk(-3, 1)
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// TestSine_Deterministic checks identical output for identical seeds and
// diverging output for different seeds once noise is enabled.
func TestSine_Deterministic(t *testing.T) {
	a, err := series.Sine(64, 42, series.WithNoise(0.1))
	require.NoError(t, err)
	b, err := series.Sine(64, 42, series.WithNoise(0.1))
	require.NoError(t, err)
	c, err := series.Sine(64, 43, series.WithNoise(0.1))
	require.NoError(t, err)

	assert.Equal(t, a.Values(), b.Values(), "same seed must reproduce samples")
	assert.NotEqual(t, a.Values(), c.Values(), "different seed must change noisy samples")
}

// TestSine_NoiselessIsPureSinusoid verifies amplitude bounds without noise.
func TestSine_NoiselessIsPureSinusoid(t *testing.T) {
	s, err := series.Sine(128, 7, series.WithAmplitude(2.5))
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		assert.LessOrEqual(t, math.Abs(s.At(i)), 2.5+1e-12)
	}
	assert.Equal(t, 0.0, s.At(0), "sin(0) must be exactly zero")
}

// TestChirp_Deterministic verifies the determinism policy for chirps.
func TestChirp_Deterministic(t *testing.T) {
	a, err := series.Chirp(100, 11, series.WithNoise(0.05))
	require.NoError(t, err)
	b, err := series.Chirp(100, 11, series.WithNoise(0.05))
	require.NoError(t, err)

	assert.Equal(t, a.Values(), b.Values())
}

// TestChirp_FirstSampleMatchesModel pins the phase accumulator start:
// θ₀ = τ·f0, so y₀ = A·sin(τ·f0), not sin(0).
func TestChirp_FirstSampleMatchesModel(t *testing.T) {
	s, err := series.Chirp(4, 1,
		series.WithFrequency(0.1), series.WithEndFrequency(0.1))
	require.NoError(t, err)

	assert.InDelta(t, math.Sin(2*math.Pi*0.1), s.At(0), 1e-12)
}

// TestRandomWalk_StartsAtZero verifies the walk anchor and step scaling.
func TestRandomWalk_StartsAtZero(t *testing.T) {
	s, err := series.RandomWalk(50, 3)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.At(0), "walk must start at the origin")
	assert.Equal(t, 50, s.Len())
}

// TestRandomWalk_TrendDominates checks the deterministic trend path with step=0.
func TestRandomWalk_TrendDominates(t *testing.T) {
	s, err := series.RandomWalk(5, 3, series.WithStep(0), series.WithTrend(2))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 4, 6, 8}, s.Values())
}
