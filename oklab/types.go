// Package oklab declares the color value types shared across the engine:
// linear RGB, OKLab, and its cylindrical LCh form, together with the
// calibration constants the rest of colorjourney is tuned against.
package oklab

import "github.com/chewxy/math32"

// Perceptual calibration constants. DeltaE values are distances in OKLab;
// they anchor the journey.ContrastLevel presets and must stay in sync with
// the float64 cube-root precision of RGBToLab.
const (
	// DeltaJND is the just-noticeable difference between two colors.
	DeltaJND float32 = 0.05

	// DeltaBalanced is a comfortable separation for adjacent UI colors.
	DeltaBalanced float32 = 0.10

	// DeltaStrong is a strongly distinct separation.
	DeltaStrong float32 = 0.15

	// MaxChroma is the upper bound applied to chroma after any adjustment.
	// Chroma beyond ~0.4 is not representable in sRGB for most hues.
	MaxChroma float32 = 0.4
)

// RGB is a color in linear RGB. Channels are nominally in [0, 1] but may
// leave that range after an inverse conversion from OKLab; callers decide
// when to Clamp.
type RGB struct {
	R, G, B float32
}

// Lab is a color in OKLab. L is perceptual lightness in [0, 1]; A and B
// are the green–red and blue–yellow opponent axes, roughly in [-0.4, 0.4].
type Lab struct {
	L, A, B float32
}

// LCh is the cylindrical form of OKLab: Lightness, Chroma (≥ 0) and hue
// angle H in radians, normalized to [0, 2π).
type LCh struct {
	L, C, H float32
}

// Clamp returns c with every channel clamped to [0, 1].
func (c RGB) Clamp() RGB {
	c.R = clamp(c.R, 0, 1)
	c.G = clamp(c.G, 0, 1)
	c.B = clamp(c.B, 0, 1)
	return c
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// NormalizeHue wraps h into [0, 2π).
func NormalizeHue(h float32) float32 {
	const twoPi = 2 * math32.Pi
	h = math32.Mod(h, twoPi)
	if h < 0 {
		h += twoPi
	}
	return h
}
