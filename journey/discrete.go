package journey

import (
	"github.com/chewxy/math32"

	"github.com/lumora/colorjourney/oklab"
)

// Discrete generation constants.
const (
	// fixedSpacing is the journey-position step between consecutive
	// indices in At/Range access: ~20 colors per full cycle. Index access
	// cannot know the caller's eventual count, so it trades exact endpoint
	// alignment for unbounded streaming.
	fixedSpacing float32 = 0.05

	// maxContrastRounds bounds the iterative contrast refinement.
	maxContrastRounds = 5

	// rhythmThreshold is the palette size above which the periodic chroma
	// modulation is applied.
	rhythmThreshold = 20
)

// Palette returns count colors spanning the journey evenly, with iterative
// contrast enforcement between neighbors: the first color is the raw
// sample, each following color is adjusted toward the configured minimum
// ΔE from its predecessor. The enforcement is best-effort — dark or
// low-chroma anchors combined with high thresholds can leave neighbors
// short of the minimum once gamut clamping eats the adjustment (see
// enforceMinContrast).
//
// Position mapping is count-aware: closed loops divide by count (so the
// wrap-around step matches the others), open journeys by count−1 (so the
// last color reaches the journey end), ping-pong folds the doubled
// fraction. For palettes larger than 20 colors a periodic chroma
// modulation (×(1+0.1·cos(iπ/5))) is applied last, purely cosmetically.
//
// A nil journey or count ≤ 0 returns nil.
//
// Complexity: O(count), one allocation for the result.
func (j *Journey) Palette(count int) []oklab.RGB {
	if j == nil || count <= 0 {
		return nil
	}

	minDE := j.cfg.minDeltaE()
	out := make([]oklab.RGB, count)
	var prev oklab.Lab
	for i := range out {
		c := j.Sample(j.positionForCount(i, count))
		if i > 0 {
			c = enforceMinContrast(c, prev, minDE)
		}
		out[i] = c
		prev = oklab.RGBToLab(c)
	}

	if count > rhythmThreshold {
		applyChromaRhythm(out)
	}
	return out
}

// At returns the discrete color at index. Colors form a sequential
// contrast chain anchored at index 0, so At recomputes indices 0..index−1
// first: O(index) per call. Callers needing bulk or repeated high-index
// access should use Range and cache at the call boundary — the journey
// itself deliberately holds no cache, preserving its statelessness.
//
// A nil journey or a negative index returns the zero color oklab.RGB{}.
func (j *Journey) At(index int) oklab.RGB {
	if j == nil || index < 0 {
		return oklab.RGB{}
	}

	var prev oklab.RGB
	cur := oklab.RGB{}
	for i := 0; i <= index; i++ {
		cur = j.indexColor(i, prev, i > 0)
		prev = cur
	}
	return cur
}

// Range returns the colors at indices start..start+count−1. It is
// guaranteed that Range(s, n)[k] == At(s+k) for every k — both walk the
// same contrast chain — but Range walks it once (O(start+count) total)
// instead of once per element.
//
// A nil journey, negative start, or count ≤ 0 returns nil.
func (j *Journey) Range(start, count int) []oklab.RGB {
	if j == nil || start < 0 || count <= 0 {
		return nil
	}

	var prev oklab.RGB
	for i := 0; i < start; i++ {
		prev = j.indexColor(i, prev, i > 0)
	}

	out := make([]oklab.RGB, count)
	for k := range out {
		prev = j.indexColor(start+k, prev, start+k > 0)
		out[k] = prev
	}
	return out
}

// positionForCount maps palette index i of a known total count onto the
// journey parameter, loop-mode aware.
func (j *Journey) positionForCount(i, count int) float32 {
	if j.cfg.LoopMode == LoopClosed {
		// Include the wrap-around segment: i/count, not i/(count−1).
		return float32(i) / float32(count)
	}
	if count <= 1 {
		return 0.5
	}
	switch j.cfg.LoopMode {
	case LoopPingPong:
		t := 2 * float32(i) / float32(count-1)
		if t > 1 {
			t = 2 - t
		}
		return t
	default:
		return float32(i) / float32(count-1)
	}
}

// positionForIndex maps an unbounded index onto the journey parameter
// using fixed spacing, wrapping each full cycle.
func positionForIndex(index int) float32 {
	return math32.Mod(float32(index)*fixedSpacing, 1)
}

// indexColor produces the chain element at index given its predecessor.
// The minimum ΔE comes from the contrast level, or from the DeltaRange
// when one is configured (its Min is the hard bound, its Max best-effort).
func (j *Journey) indexColor(index int, prev oklab.RGB, hasPrev bool) oklab.RGB {
	c := j.Sample(positionForIndex(index))
	if !hasPrev {
		return c
	}

	prevLab := oklab.RGBToLab(prev)
	dr := j.cfg.DeltaRange
	minDE := j.cfg.minDeltaE()
	if dr != nil {
		minDE = dr.Min
	}

	c = enforceMinContrast(c, prevLab, minDE)
	if dr != nil {
		c = capDelta(c, prevLab, dr)
	}
	return c
}

// enforceMinContrast adjusts color toward at least minDE from prev, using
// iterative refinement (up to maxContrastRounds rounds):
//
//  1. Nudge lightness by 50% of the remaining shortfall, away from the
//     side of mid-gray that prev occupies.
//  2. If still short, rotate hue by 0.2 rad × round and scale chroma by
//     1+0.5·shortfall (capped at MaxChroma).
//
// Early exit once the threshold is met. The refinement can stall short of
// minDE: the halved nudges converge geometrically within the round budget,
// and the final gamut clamp can collapse whatever headroom they gained.
// Dark or low-chroma anchors under high thresholds are the typical case —
// hue rotation moves nothing at near-zero chroma, leaving lightness as the
// only lever. Within the chain the minimum is still prioritized over any
// later best-effort ceiling (see capDelta).
func enforceMinContrast(color oklab.RGB, prev oklab.Lab, minDE float32) oklab.RGB {
	cur := oklab.RGBToLab(color)
	for round := 0; round < maxContrastRounds; round++ {
		de := oklab.DeltaE(cur, prev)
		if de >= minDE {
			break
		}

		// Push lightness away from the half of the range prev sits in.
		var dir float32 = 1
		if prev.L >= 0.5 {
			dir = -1
		}
		cur.L = clamp01(cur.L + dir*(minDE-de)*0.5)

		de = oklab.DeltaE(cur, prev)
		if de >= minDE {
			break
		}

		shortfall := minDE - de
		lch := oklab.LabToLCh(cur)
		lch.H = oklab.NormalizeHue(lch.H + 0.2*float32(round))
		if lch.C > 1e-5 {
			lch.C = lch.C * (1 + 0.5*shortfall)
			if lch.C > oklab.MaxChroma {
				lch.C = oklab.MaxChroma
			}
		}
		cur = oklab.LChToLab(lch)
	}
	return oklab.LabToRGB(cur).Clamp()
}

// capDelta is the best-effort upper half of a DeltaRange: when color sits
// farther than dr.Max from prev, it is pulled straight toward prev in Lab
// space to land on the ceiling. Gamut clamping after the pull can shift
// the distance again; if it falls below the hard minimum, the minimum is
// re-enforced — the floor always wins over the ceiling, so the ceiling may
// end up exceeded at loop-wrap boundaries or with high-contrast anchors.
func capDelta(color oklab.RGB, prev oklab.Lab, dr *DeltaRange) oklab.RGB {
	cur := oklab.RGBToLab(color)
	de := oklab.DeltaE(cur, prev)
	if de <= dr.Max || de == 0 {
		return color
	}

	f := dr.Max / de
	cur = oklab.Lab{
		L: prev.L + (cur.L-prev.L)*f,
		A: prev.A + (cur.A-prev.A)*f,
		B: prev.B + (cur.B-prev.B)*f,
	}
	pulled := oklab.LabToRGB(cur).Clamp()

	if oklab.DeltaE(oklab.RGBToLab(pulled), prev) < dr.Min {
		return enforceMinContrast(pulled, prev, dr.Min)
	}
	return pulled
}

// applyChromaRhythm modulates chroma periodically across a large palette
// (×(1+0.1·cos(iπ/5))), giving saturation a gentle wave that helps the eye
// separate neighbors. Cosmetic, applied after contrast enforcement.
func applyChromaRhythm(colors []oklab.RGB) {
	for i, c := range colors {
		lch := oklab.LabToLCh(oklab.RGBToLab(c))
		lch.C *= 1 + 0.1*math32.Cos(float32(i)*math32.Pi/5)
		if lch.C > oklab.MaxChroma {
			lch.C = oklab.MaxChroma
		}
		colors[i] = oklab.LabToRGB(oklab.LChToLab(lch)).Clamp()
	}
}
