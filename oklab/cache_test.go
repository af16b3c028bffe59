package oklab_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora/colorjourney/oklab"
)

// TestRGBToLabCached_NilCache behaves exactly like the plain conversion.
func TestRGBToLabCached_NilCache(t *testing.T) {
	c := oklab.RGB{R: 0.3, G: 0.5, B: 0.8}
	assert.Equal(t, oklab.RGBToLab(c), oklab.RGBToLabCached(c, nil))
}

// TestRGBToLabCached_BitIdentical: cached answers must be bit-identical to
// uncached ones, on both the filling pass and the hitting pass.
func TestRGBToLabCached_BitIdentical(t *testing.T) {
	cache := oklab.NewConvCache(64)
	rng := rand.New(rand.NewSource(3))

	colors := make([]oklab.RGB, 40)
	for i := range colors {
		colors[i] = oklab.RGB{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
	}

	// First pass fills, second pass hits; both must agree with RGBToLab.
	for pass := 0; pass < 2; pass++ {
		for _, c := range colors {
			require.Equal(t, oklab.RGBToLab(c), oklab.RGBToLabCached(c, cache),
				"pass %d diverged for %+v", pass, c)
		}
	}
}

// TestRGBToLabCached_EvictionStillCorrect overfills a tiny cache so slots
// collide and evict; correctness must survive.
func TestRGBToLabCached_EvictionStillCorrect(t *testing.T) {
	cache := oklab.NewConvCache(1) // rounded up to the probe window
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		c := oklab.RGB{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
		require.Equal(t, oklab.RGBToLab(c), oklab.RGBToLabCached(c, cache))
	}
}

// TestNewConvCache_MinimumSize: undersized requests round up to the probe
// window so probing never leaves the table.
func TestNewConvCache_MinimumSize(t *testing.T) {
	assert.GreaterOrEqual(t, oklab.NewConvCache(1).Len(), 8)
	assert.Equal(t, 128, oklab.NewConvCache(128).Len())
}
