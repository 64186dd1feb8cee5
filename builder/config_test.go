package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	assert.Nil(t, cfgDefault.rng, "default config must be deterministic")

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "equal seeds give equal streams")

	r := rand.New(rand.NewSource(1))
	cfgRand := newBuilderConfig(WithRand(r))
	assert.Same(t, r, cfgRand.rng)

	assert.Panics(t, func() { WithRand(nil) })
}

// TestWeightOptions verifies last-wins semantics and nil rejection.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultEdgeWeight, newBuilderConfig().weightFn(nil))

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(8))
	assert.Equal(t, int64(8), cfg.weightFn(nil))

	assert.Panics(t, func() { WithWeightFn(nil) })
}
