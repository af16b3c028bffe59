// Package journey builds and samples perceptually uniform color journeys:
// curated paths through OKLab space, seeded by 1–8 anchor colors.
//
// 🚀 What is a journey?
//
//	A journey is an immutable path through color space. A single anchor
//	sweeps a full hue revolution around that color; multiple anchors are
//	visited in order. Journeys are not linear interpolations — designed
//	waypoints, smoothstep easing, and parametric chroma/lightness
//	envelopes give them intentional, organic pacing.
//
// ✨ Key features:
//   - New(Config): validated, copy-once construction — a *Journey is
//     read-only for its whole lifetime
//   - Sample(t): continuous sampling with loop modes (open / closed /
//     ping-pong), shortest-path hue interpolation and perceptual biases
//   - Palette(count): a fixed-count palette spanning the journey evenly,
//     with iterative contrast enforcement between neighbors
//   - At(index) / Range(start, count): unbounded streaming access with
//     the same contrast chain; Range(s,n)[k] == At(s+k) always holds
//   - Seeded variation: deterministic micro-perturbation of hue,
//     lightness and chroma, derived fresh per call from (seed, t)
//
// ⚙️ Usage:
//
//	import "github.com/lumora/colorjourney/journey"
//
//	cfg := journey.DefaultConfig()
//	cfg.Anchors = []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}}
//	cfg.ContrastLevel = journey.ContrastMedium
//
//	j, err := journey.New(cfg)
//	if err != nil { ... }
//
//	mid := j.Sample(0.5)          // one color
//	palette := j.Palette(5)       // five distinct colors
//	next := j.At(1000)            // streaming access by index
//
// Concurrency:
//
//	All sampling methods are pure functions of (journey, input): waypoints
//	are immutable after New, PRNG state is derived per call and never
//	stored, and there are no internal caches or counters. Call them from
//	as many goroutines as you like against the same *Journey, without
//	locks. At(i) recomputes the contrast chain from index 0 and therefore
//	costs O(i); prefer Range for bulk or high-index access and cache at
//	the call boundary if needed.
//
// Errors:
//
//	New fails fast on malformed configuration (see the Err* sentinels in
//	types.go). The hot paths never fail: a nil *Journey or a negative
//	index yields the zero color oklab.RGB{} instead of a panic or error.
package journey
