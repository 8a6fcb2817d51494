// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

// TestRNGOptions verifies that WithSeed is reproducible and WithRand is used
// as given.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}

// TestWeightOptionsLastWins verifies that later weight options override
// earlier ones.
func TestWeightOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(-2.5))
	assert.Equal(t, -2.5, cfg.weight())

	cfg = newBuilderConfig(WithIntegerWeights(4, 4), WithSeed(1))
	assert.Equal(t, 4.0, cfg.weight())
}

// TestOptionPanics verifies fail-fast option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { WithIntegerWeights(5, 4) })
	assert.Panics(t, func() { WithUniformWeight(2, 1) })
}

// TestNilOptionIgnored verifies that a nil option is skipped.
func TestNilOptionIgnored(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(nil, WithConstantWeight(9))
	assert.Equal(t, 9.0, cfg.weight())
}
