// Package journey - deterministic seeded variation.
//
// This file centralizes pseudo-random generation for the variation layer.
//
// Goals:
//   - Determinism: same (seed, t, dimensions, magnitude) ⇒ identical
//     perturbation across platforms, repeated calls, and independently
//     constructed journeys sharing a config.
//   - Statelessness: PRNG state is derived fresh per call from the seed and
//     the sample position, never stored — this is what keeps Sample safe
//     for unsynchronized concurrent use.
//   - Safety: no panics or logging; perturbed channels are re-clamped, the
//     magnitude itself never is.
package journey

import (
	"math/bits"

	"github.com/chewxy/math32"

	"github.com/lumora/colorjourney/oklab"
)

// Variation magnitude presets.
const (
	subtleMagnitude     float32 = 0.02
	noticeableMagnitude float32 = 0.05
)

// positionQuantum converts a sample position into the integer mixed into
// the per-call PRNG seed: one step per 1e-6 of t.
const positionQuantum float32 = 1e6

// xoshiroNext advances a 64-bit xoshiro-style mixer (two 32-bit halves with
// an add/rotate/xor schedule) and returns the next output word. Lightweight
// by design — the variation layer needs decorrelated low bits, not
// cryptographic quality.
func xoshiroNext(state *uint64) uint64 {
	s0 := uint32(*state)
	s1 := uint32(*state >> 32)
	out := uint64(s0) + uint64(s1)

	s1 ^= s0
	s0 = bits.RotateLeft32(s0, 24) ^ s1 ^ s1<<16
	s1 = bits.RotateLeft32(s1, 5)

	*state = uint64(s1)<<32 | uint64(s0)
	return out
}

// xoshiroFloat draws a uniform float32 in [0, 1) from the low 24 bits,
// which is exactly the float32 mantissa width.
func xoshiroFloat(state *uint64) float32 {
	return float32(xoshiroNext(state)&0xFFFFFF) / 16777216.0
}

// magnitude resolves the configured strength preset.
func (v *VariationConfig) magnitude() float32 {
	switch v.Strength {
	case VariationNoticeable:
		return noticeableMagnitude
	case VariationCustom:
		return v.Magnitude
	default:
		return subtleMagnitude
	}
}

// applyVariation perturbs c by the configured dimensions at position t.
// Ephemeral PRNG state is seed XOR quantize(t): a pure function of the
// inputs, independent of call order or history. Draws happen in a fixed
// dimension order (hue, lightness, chroma), so the mask alone determines
// which value lands on which dimension.
func (j *Journey) applyVariation(c oklab.LCh, t float32) oklab.LCh {
	v := &j.cfg.Variation
	if !v.Enabled {
		return c
	}

	state := v.Seed ^ uint64(t*positionQuantum)
	mag := v.magnitude()

	if v.Dimensions&VaryHue != 0 {
		c.H = oklab.NormalizeHue(c.H + (xoshiroFloat(&state)-0.5)*mag*math32.Pi)
	}
	if v.Dimensions&VaryLightness != 0 {
		c.L = clamp01(c.L + (xoshiroFloat(&state)-0.5)*mag)
	}
	if v.Dimensions&VaryChroma != 0 {
		c.C += (xoshiroFloat(&state) - 0.5) * mag * 0.5
		if c.C < 0 {
			c.C = 0
		} else if c.C > oklab.MaxChroma {
			c.C = oklab.MaxChroma
		}
	}
	return c
}
