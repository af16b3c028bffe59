package oklab

// EnforceContrast returns color adjusted so that its distance from reference
// approaches at least minDeltaE. It is the deterministic single-pass
// separation primitive:
//
//  1. If DeltaE(color, reference) ≥ minDeltaE, color is returned unchanged.
//  2. Otherwise lightness is moved to reference.L ± 0.7·minDeltaE, on the
//     side color already occupies.
//  3. If that still falls short, chroma is boosted ×1.15 (capped at
//     MaxChroma).
//
// The result is not guaranteed to reach minDeltaE in pathological cases
// (e.g. reference at mid-gray with near-zero chroma); callers that need
// stronger separation iterate, as the journey package's discrete generation
// does, though iteration narrows the shortfall rather than eliminating it.
//
// Complexity: O(1), no allocations.
func EnforceContrast(color, reference Lab, minDeltaE float32) Lab {
	if DeltaE(color, reference) >= minDeltaE {
		return color
	}

	var sign float32 = 1
	if color.L < reference.L {
		sign = -1
	}

	adjusted := color
	adjusted.L = clamp(reference.L+sign*minDeltaE*0.7, 0, 1)
	if DeltaE(adjusted, reference) >= minDeltaE {
		return adjusted
	}

	lch := LabToLCh(adjusted)
	lch.C = clamp(lch.C*1.15, 0, MaxChroma)
	return LChToLab(lch)
}

// IsReadable reports whether the color's lightness sits in the range usable
// for UI text and elements: neither too dark (L < 0.2) nor too close to
// white (L > 0.95).
func IsReadable(c Lab) bool {
	return c.L >= 0.2 && c.L <= 0.95
}
