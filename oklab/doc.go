// Package oklab implements the OKLab color space primitives used by the
// colorjourney engine: conversions, perceptual distance, gamut clamping
// and contrast enforcement.
//
// 🚀 What is OKLab?
//
//	OKLab is a perceptually uniform color space (Ottosson, 2020): the
//	Euclidean distance between two OKLab colors approximates how
//	different they look to a human observer.  That single property makes
//	it the right ground truth for:
//	  • Palette generation with guaranteed visual separation
//	  • Smooth, artifact-free color interpolation
//	  • Contrast checks that match perception, not RGB arithmetic
//
// ✨ Key features:
//   - RGBToLab / LabToRGB: the full Ottosson pipeline
//     (linear RGB → LMS cone response → cube-root compression → opponent
//     encoding), with the exact algebraic inverse
//   - LabToLCh / LChToLab: cylindrical form (Lightness, Chroma, hue)
//     with hue always normalized to [0, 2π)
//   - DeltaE: Euclidean distance in (L, a, b) — the perceptual ruler
//     every other component calibrates against
//   - EnforceContrast: deterministic single-pass separation primitive
//   - SRGB8ToLinear: idempotently initialized, read-only sRGB8→linear
//     lookup table for byte-valued inputs
//   - ConvCache: optional caller-owned RGB→Lab memoization table
//
// ⚙️ Precision:
//
//	The forward and inverse pipelines run in float64 internally, using
//	the standard-library cube root.  Public types are float32: the ΔE
//	calibration constants (DeltaJND, DeltaBalanced, DeltaStrong) were
//	tuned against exactly this precision level, so do not swap the cube
//	root for a fast approximation without re-deriving the thresholds.
//
// Concurrency: every function in this package is a pure function of its
// inputs, except the sRGB table (sync.Once-guarded, read-only after
// initialization) and ConvCache (caller-owned, not safe for concurrent
// mutation — see its docs).
package oklab
