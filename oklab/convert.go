package oklab

import (
	"math"

	"github.com/chewxy/math32"
)

// Conversion matrices from Björn Ottosson's reference derivation
// (https://bottosson.github.io/posts/oklab/). The pipeline is:
//
//	linear RGB → LMS (cone response) → LMS' (cube root) → OKLab (opponent)
//
// Both directions run in float64: the cube root dominates the error budget,
// and the ΔE calibration constants in types.go assume full double precision.

// RGBToLab converts a linear RGB color to OKLab.
//
// Stages:
//  1. Linear transform to LMS cone response (matrix M1).
//  2. Nonlinear compression via cube root, simulating perception.
//  3. Linear transform to the opponent encoding (matrix M2).
//
// The input is not clamped; out-of-range channels flow through the same
// algebra and produce out-of-range Lab values.
//
// Complexity: O(1), no allocations.
func RGBToLab(c RGB) Lab {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return Lab{
		L: float32(0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp),
		A: float32(1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp),
		B: float32(0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp),
	}
}

// LabToRGB converts an OKLab color to linear RGB. It is the exact algebraic
// inverse of RGBToLab (cube instead of cube root, inverse matrices), and may
// produce out-of-gamut channels when the Lab color is not representable in
// sRGB — use RGB.Clamp when a displayable value is required.
//
// Complexity: O(1), no allocations.
func LabToRGB(c Lab) RGB {
	lp := float64(c.L) + 0.3963377774*float64(c.A) + 0.2158037573*float64(c.B)
	mp := float64(c.L) - 0.1055613458*float64(c.A) - 0.0638541728*float64(c.B)
	sp := float64(c.L) - 0.0894841775*float64(c.A) - 1.2914855480*float64(c.B)

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return RGB{
		R: float32(+4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
	}
}

// LabToLCh converts OKLab to its cylindrical LCh form.
// H is normalized to [0, 2π).
func LabToLCh(c Lab) LCh {
	h := math32.Atan2(c.B, c.A)
	if h < 0 {
		h += 2 * math32.Pi
	}
	return LCh{
		L: c.L,
		C: math32.Hypot(c.A, c.B),
		H: h,
	}
}

// LChToLab converts cylindrical LCh back to OKLab.
func LChToLab(c LCh) Lab {
	return Lab{
		L: c.L,
		A: c.C * math32.Cos(c.H),
		B: c.C * math32.Sin(c.H),
	}
}

// DeltaE returns the Euclidean distance between two OKLab colors — the
// engine's proxy for perceived color difference. See DeltaJND,
// DeltaBalanced and DeltaStrong for calibrated reference points.
func DeltaE(a, b Lab) float32 {
	dL := a.L - b.L
	dA := a.A - b.A
	dB := a.B - b.B
	return math32.Sqrt(dL*dL + dA*dA + dB*dB)
}
