// Package colorjourney generates perceptually uniform color palettes
// ("journeys") from one or more seed colors, with all color math grounded
// in the OKLab color space.
//
// 🚀 What is colorjourney?
//
//	A deterministic, allocation-light engine that turns seed colors into
//	curated color sequences:
//		• Core conversions: RGB ↔ OKLab ↔ LCh, perceptual ΔE distance
//		• Journey construction: designed waypoints from 1–8 anchor colors
//		• Continuous sampling: Sample(t) with easing, biases and loop modes
//		• Discrete palettes: fixed-count, single-index and streaming range
//		  access with contrast enforcement between neighbors
//		• Seeded variation: reproducible micro-perturbation of hue,
//		  lightness and chroma
//
// ✨ Why choose colorjourney?
//
//   - Perceptually uniform – distances in OKLab track what the eye sees,
//     so generated neighbors are reliably distinguishable
//   - Deterministic – identical inputs always produce identical output,
//     including seeded variation
//   - Concurrency-safe – a Journey is immutable after construction; all
//     sampling is a pure function of (journey, t) with no locks
//   - Pure Go – no cgo, no I/O, no hidden state
//
// Everything is organized under two subpackages:
//
//	oklab/   — color types, RGB↔OKLab↔LCh conversion, ΔE, gamut clamp,
//	           contrast primitives, the sRGB8 lookup table and the
//	           optional caller-owned conversion cache
//	journey/ — journey configuration, construction, continuous sampling,
//	           discrete palette generation and seeded variation
//
// Quick sketch of the data flow:
//
//	Config ─→ journey.New ─→ *Journey (immutable waypoints)
//	                             │
//	            ┌────────────────┼──────────────────┐
//	        Sample(t)       Palette(count)     At(i) / Range(s,n)
//
// Dive into the package docs of oklab and journey for the full API.
//
//	go get github.com/lumora/colorjourney
package colorjourney
