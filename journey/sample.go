package journey

import (
	"github.com/chewxy/math32"

	"github.com/lumora/colorjourney/oklab"
)

// Sample returns the journey's color at parameter t, clamped to displayable
// linear RGB.
//
// Pipeline:
//  1. Loop normalization — closed wraps t mod 1, ping-pong folds a
//     period-2 triangular wave into [0, 1], open clamps.
//  2. Waypoint interpolation — the bracketing pair is located on a uniform
//     grid, the local fraction eased with cubic smoothstep, L and C
//     lerped, and hue taken the shortest way around the wheel.
//  3. Perceptual dynamics — lightness/chroma biases and the mid-journey
//     vibrancy boost, then clamping to L ∈ [0,1], C ∈ [0, MaxChroma].
//  4. Optional seeded variation (see VariationConfig).
//  5. LCh → OKLab → RGB, per-channel clamp.
//
// Sample is a pure function of (journey, t): no state is read that can
// change and none is written, so unsynchronized concurrent calls are safe.
// A nil journey returns the zero color.
//
// Complexity: O(1), no allocations.
func (j *Journey) Sample(t float32) oklab.RGB {
	if j == nil || len(j.waypoints) == 0 {
		return oklab.RGB{}
	}

	tn := j.normalize(t)
	lch := j.interpolate(tn)
	lch = j.applyDynamics(lch, tn)
	lch = j.applyVariation(lch, tn)

	return oklab.LabToRGB(oklab.LChToLab(lch)).Clamp()
}

// normalize maps t into [0, 1] according to the journey's loop mode.
// Everything downstream — interpolation, the vibrancy window, and the
// variation seed — sees only the normalized value, so equivalent positions
// (e.g. t=0.25 and t=1.75 in ping-pong) yield identical colors.
func (j *Journey) normalize(t float32) float32 {
	switch j.cfg.LoopMode {
	case LoopClosed:
		t = math32.Mod(t, 1)
		if t < 0 {
			t += 1
		}
	case LoopPingPong:
		t = math32.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
	}
	// Open mode, plus a guard for float noise from the folds above.
	return clamp01(t)
}

// interpolate evaluates the waypoint path at normalized position t.
func (j *Journey) interpolate(t float32) oklab.LCh {
	if len(j.waypoints) == 1 {
		return j.waypoints[0].lch
	}

	// Uniform segments: waypoint i covers [i·w, (i+1)·w], w = 1/(n−1).
	segWidth := 1 / float32(len(j.waypoints)-1)
	seg := int(t / segWidth)
	if seg > len(j.waypoints)-2 {
		seg = len(j.waypoints) - 2
	}
	local := smoothstep((t - float32(seg)*segWidth) / segWidth)

	a := j.waypoints[seg].lch
	b := j.waypoints[seg+1].lch

	// Hue takes the shortest angular path: wrap the raw difference into
	// (−π, π] before scaling, so red→red never detours through the
	// whole rainbow.
	dh := b.H - a.H
	if dh > math32.Pi {
		dh -= 2 * math32.Pi
	} else if dh < -math32.Pi {
		dh += 2 * math32.Pi
	}

	return oklab.LCh{
		L: lerp(a.L, b.L, local),
		C: lerp(a.C, b.C, local),
		H: oklab.NormalizeHue(a.H + dh*local),
	}
}

// Mid-journey vibrancy boost shape: peak gain at t=0.5, linear falloff,
// zero outside |t−0.5| ≥ vibrancyWindow. Bounded support keeps the factor
// non-negative, unlike a parabola.
const (
	vibrancyGain   float32 = 0.6
	vibrancyWindow float32 = 0.35
)

// applyDynamics applies the configured perceptual biases at position t.
func (j *Journey) applyDynamics(c oklab.LCh, t float32) oklab.LCh {
	switch j.cfg.LightnessBias {
	case LightnessLighter:
		c.L = lerp(c.L, 1, 0.2)
	case LightnessDarker:
		c.L = lerp(c.L, 0, 0.2)
	case LightnessCustom:
		c.L += j.cfg.LightnessWeight * 0.2
	}

	switch j.cfg.ChromaBias {
	case ChromaMuted:
		c.C *= 0.6
	case ChromaVivid:
		c.C *= 1.4
	case ChromaCustom:
		c.C *= j.cfg.ChromaMultiplier
	}

	boost := 1 - math32.Abs(t-0.5)/vibrancyWindow
	if boost > 0 {
		c.C *= 1 + j.cfg.MidVibrancy*vibrancyGain*boost
	}

	c.L = clamp01(c.L)
	if c.C < 0 {
		c.C = 0
	} else if c.C > oklab.MaxChroma {
		c.C = oklab.MaxChroma
	}
	return c
}

// clamp01 bounds x to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
