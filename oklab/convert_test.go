// Package oklab_test verifies the conversion pipeline against the OKLab
// reference values and the engine's calibration assumptions.
package oklab_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora/colorjourney/oklab"
)

// TestRGBToLab_KnownColors checks reference points of the Ottosson pipeline:
// black maps to the origin, white to L=1 with vanishing chroma.
func TestRGBToLab_KnownColors(t *testing.T) {
	black := oklab.RGBToLab(oklab.RGB{})
	assert.InDelta(t, 0.0, float64(black.L), 1e-4, "black lightness")
	assert.InDelta(t, 0.0, float64(black.A), 1e-4, "black a")
	assert.InDelta(t, 0.0, float64(black.B), 1e-4, "black b")

	white := oklab.RGBToLab(oklab.RGB{R: 1, G: 1, B: 1})
	assert.InDelta(t, 1.0, float64(white.L), 1e-3, "white lightness")
	assert.InDelta(t, 0.0, float64(white.A), 1e-3, "white a")
	assert.InDelta(t, 0.0, float64(white.B), 1e-3, "white b")
}

// TestRGBToLab_RedIsChromatic ensures a saturated primary lands far from
// the neutral axis, in the expected lightness band.
func TestRGBToLab_RedIsChromatic(t *testing.T) {
	red := oklab.RGBToLab(oklab.RGB{R: 1})
	lch := oklab.LabToLCh(red)
	assert.Greater(t, lch.C, float32(0.1), "pure red must carry strong chroma")
	assert.InDelta(t, 0.628, float64(red.L), 0.01, "red lightness per OKLab reference")
}

// TestRoundTrip_RandomColors verifies LabToRGB∘RGBToLab ≈ identity for
// in-gamut colors, within the 1e-2 budget of the float32 public types.
func TestRoundTrip_RandomColors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	approx := cmpopts.EquateApprox(0, 1e-2)

	for i := 0; i < 500; i++ {
		in := oklab.RGB{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
		out := oklab.LabToRGB(oklab.RGBToLab(in))
		require.True(t, cmp.Equal(in, out, approx),
			"round trip drifted: in=%+v out=%+v", in, out)
	}
}

// TestLChRoundTrip verifies the cylindrical form is lossless and that hue
// always lands in [0, 2π).
func TestLChRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	approx := cmpopts.EquateApprox(0, 1e-5)

	for i := 0; i < 500; i++ {
		in := oklab.Lab{
			L: rng.Float32(),
			A: rng.Float32()*0.8 - 0.4,
			B: rng.Float32()*0.8 - 0.4,
		}
		lch := oklab.LabToLCh(in)
		require.GreaterOrEqual(t, lch.H, float32(0), "hue below 0")
		require.Less(t, lch.H, float32(6.2832), "hue at or above 2π")
		require.GreaterOrEqual(t, lch.C, float32(0), "negative chroma")

		out := oklab.LChToLab(lch)
		require.True(t, cmp.Equal(in, out, approx),
			"LCh round trip drifted: in=%+v out=%+v", in, out)
	}
}

// TestDeltaE_Properties checks identity, symmetry and a calibrated pair:
// pure red vs pure blue is far beyond the "strongly distinct" threshold.
func TestDeltaE_Properties(t *testing.T) {
	red := oklab.RGBToLab(oklab.RGB{R: 1})
	blue := oklab.RGBToLab(oklab.RGB{B: 1})

	assert.Zero(t, oklab.DeltaE(red, red), "distance to self must be zero")
	assert.Equal(t, oklab.DeltaE(red, blue), oklab.DeltaE(blue, red), "ΔE must be symmetric")
	assert.Greater(t, oklab.DeltaE(red, blue), oklab.DeltaStrong,
		"red/blue must exceed the strong-distinction threshold")
}

// TestClamp bounds every channel without touching in-range values.
func TestClamp(t *testing.T) {
	c := oklab.RGB{R: 1.2, G: -0.3, B: 0.5}.Clamp()
	assert.Equal(t, oklab.RGB{R: 1, G: 0, B: 0.5}, c)

	in := oklab.RGB{R: 0.25, G: 0.5, B: 0.75}
	assert.Equal(t, in, in.Clamp(), "in-gamut colors pass through untouched")
}

// TestNormalizeHue wraps angles from both sides into [0, 2π).
func TestNormalizeHue(t *testing.T) {
	assert.InDelta(t, 4.7124, float64(oklab.NormalizeHue(-1.5708)), 1e-3)
	assert.InDelta(t, 0.2832, float64(oklab.NormalizeHue(6.5664)), 1e-3)
	assert.InDelta(t, 1.0, float64(oklab.NormalizeHue(1.0)), 1e-6)
}

// TestConversionDeterminism: bit-identical output on repeated calls.
func TestConversionDeterminism(t *testing.T) {
	in := oklab.RGB{R: 0.3, G: 0.5, B: 0.8}
	first := oklab.RGBToLab(in)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, oklab.RGBToLab(in))
	}
}
