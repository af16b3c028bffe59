package journey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora/colorjourney/journey"
	"github.com/lumora/colorjourney/oklab"
)

// variedConfig returns a single-anchor config with variation enabled on all
// dimensions at the given seed.
func variedConfig(seed uint64) journey.Config {
	cfg := singleAnchorConfig()
	cfg.Variation = journey.VariationConfig{
		Enabled:    true,
		Dimensions: journey.VaryHue | journey.VaryLightness | journey.VaryChroma,
		Strength:   journey.VariationNoticeable,
		Seed:       seed,
	}
	return cfg
}

// TestVariation_ScenarioD: two independently constructed journeys with the
// same config (seed 42) produce identical ten-color palettes.
func TestVariation_ScenarioD(t *testing.T) {
	j1 := mustJourney(t, variedConfig(42))
	j2 := mustJourney(t, variedConfig(42))

	assert.Equal(t, j1.Palette(10), j2.Palette(10),
		"same seed and config must reproduce the exact palette")
}

// TestVariation_SampleDeterminism: variation is a pure function of
// (seed, t) — repeated calls at one position never drift, regardless of
// what was sampled in between.
func TestVariation_SampleDeterminism(t *testing.T) {
	j := mustJourney(t, variedConfig(42))

	first := j.Sample(0.37)
	j.Sample(0.9) // interleave other positions; history must not matter
	j.Sample(0.1)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, j.Sample(0.37))
	}
}

// TestVariation_SeedChangesOutput: different seeds shift the palette.
func TestVariation_SeedChangesOutput(t *testing.T) {
	j1 := mustJourney(t, variedConfig(42))
	j2 := mustJourney(t, variedConfig(43))

	assert.NotEqual(t, j1.Palette(10), j2.Palette(10),
		"different seeds must not reproduce the same palette")
}

// TestVariation_DisabledIgnoresSeed: with the layer off, the seed is inert.
func TestVariation_DisabledIgnoresSeed(t *testing.T) {
	cfgA := singleAnchorConfig()
	cfgA.Variation.Seed = 1

	cfgB := singleAnchorConfig()
	cfgB.Variation.Seed = 999

	jA := mustJourney(t, cfgA)
	jB := mustJourney(t, cfgB)
	assert.Equal(t, jA.Palette(6), jB.Palette(6))
}

// TestVariation_PerturbsSample: an enabled layer must actually move the
// color away from the unvaried baseline.
func TestVariation_PerturbsSample(t *testing.T) {
	base := mustJourney(t, singleAnchorConfig())
	varied := mustJourney(t, variedConfig(42))

	assert.NotEqual(t, base.Sample(0.3), varied.Sample(0.3))
}

// TestVariation_DimensionMask: with only lightness enabled, hue must stay
// put while lightness moves.
func TestVariation_DimensionMask(t *testing.T) {
	cfg := variedConfig(42)
	cfg.Variation.Dimensions = journey.VaryLightness
	j := mustJourney(t, cfg)
	base := mustJourney(t, singleAnchorConfig())

	got := oklab.LabToLCh(oklab.RGBToLab(j.Sample(0.3)))
	want := oklab.LabToLCh(oklab.RGBToLab(base.Sample(0.3)))

	assert.InDelta(t, float64(want.H), float64(got.H), 1e-3, "hue must not be perturbed")
	assert.NotEqual(t, want.L, got.L, "lightness must be perturbed")
}

// TestVariation_OutputStaysInGamut even at an aggressive custom magnitude.
func TestVariation_OutputStaysInGamut(t *testing.T) {
	cfg := variedConfig(7)
	cfg.Variation.Strength = journey.VariationCustom
	cfg.Variation.Magnitude = 0.5

	j := mustJourney(t, cfg)
	for i := 0; i <= 50; i++ {
		c := j.Sample(float32(i) / 50)
		require.Equal(t, c, c.Clamp(), "sample %d out of gamut", i)
	}
}
