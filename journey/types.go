// Package journey defines the configuration surface of a color journey:
// bias enums, variation settings, the Config struct, validation sentinels,
// and the DefaultConfig constructor.
package journey

import (
	"errors"

	"github.com/lumora/colorjourney/oklab"
)

// Sentinel errors returned by New when a Config fails validation.
// Malformed configuration fails fast at construction, never at first sample.
var (
	// ErrNoAnchors indicates the config carries no anchor colors.
	ErrNoAnchors = errors.New("journey: config has no anchors")

	// ErrTooManyAnchors indicates more than MaxAnchors anchor colors.
	ErrTooManyAnchors = errors.New("journey: more than 8 anchors")

	// ErrBadLightnessWeight indicates a custom lightness weight outside [-1, 1].
	ErrBadLightnessWeight = errors.New("journey: custom lightness weight outside [-1, 1]")

	// ErrBadChromaMultiplier indicates a custom chroma multiplier outside [0.5, 2].
	ErrBadChromaMultiplier = errors.New("journey: custom chroma multiplier outside [0.5, 2]")

	// ErrBadContrastThreshold indicates a non-positive custom contrast threshold.
	ErrBadContrastThreshold = errors.New("journey: custom contrast threshold must be positive")

	// ErrBadVibrancy indicates a mid-journey vibrancy outside [0, 1].
	ErrBadVibrancy = errors.New("journey: mid-journey vibrancy outside [0, 1]")

	// ErrBadDeltaRange indicates a delta range with Min ≤ 0 or Max < Min.
	ErrBadDeltaRange = errors.New("journey: delta range requires 0 < Min ≤ Max")
)

// MaxAnchors is the largest number of anchor colors a journey accepts.
const MaxAnchors = 8

// LightnessBias shifts the overall brightness of every sampled color while
// preserving hue and chroma. Useful for adapting one journey to light and
// dark UI modes.
type LightnessBias int

const (
	// LightnessNeutral preserves the lightness derived from the anchors.
	LightnessNeutral LightnessBias = iota

	// LightnessLighter shifts 20% toward white.
	LightnessLighter

	// LightnessDarker shifts 20% toward black.
	LightnessDarker

	// LightnessCustom shifts by Config.LightnessWeight·0.2
	// (weight in [-1, 1]: -1 darkest, +1 lightest).
	LightnessCustom
)

// ChromaBias scales saturation without changing lightness or hue.
type ChromaBias int

const (
	// ChromaNeutral preserves the chroma derived from the anchors.
	ChromaNeutral ChromaBias = iota

	// ChromaMuted scales chroma ×0.6 for a pastel feel.
	ChromaMuted

	// ChromaVivid scales chroma ×1.4 for bold, saturated output.
	ChromaVivid

	// ChromaCustom scales chroma by Config.ChromaMultiplier ([0.5, 2]).
	ChromaCustom
)

// ContrastLevel selects the minimum ΔE enforced between adjacent colors in
// discrete generation. Presets map onto the oklab calibration constants.
type ContrastLevel int

const (
	// ContrastLow enforces ΔE ≥ 0.05 (soft, subtle separation).
	ContrastLow ContrastLevel = iota

	// ContrastMedium enforces ΔE ≥ 0.10 (balanced; recommended for UIs).
	ContrastMedium

	// ContrastHigh enforces ΔE ≥ 0.15 (strong distinction).
	ContrastHigh

	// ContrastCustom enforces Config.ContrastThreshold (> 0).
	ContrastCustom
)

// TemperatureBias rotates every waypoint's hue toward warm or cool tones.
type TemperatureBias int

const (
	// TemperatureNeutral leaves waypoint hues untouched.
	TemperatureNeutral TemperatureBias = iota

	// TemperatureWarm rotates hues +0.3 rad toward reds/oranges/yellows.
	TemperatureWarm

	// TemperatureCool rotates hues -0.3 rad toward blues/cyans/purples.
	TemperatureCool
)

// LoopMode controls how the sampling parameter t behaves at journey
// boundaries.
//
//   - LoopOpen     — one-way: t is clamped to [0, 1]; start ≠ end.
//   - LoopClosed   — seamless: t wraps mod 1; Sample(0) == Sample(1).
//   - LoopPingPong — reversal: t reflects 0→1→0 with period 2.
type LoopMode int

const (
	// LoopOpen clamps t to [0, 1].
	LoopOpen LoopMode = iota

	// LoopClosed wraps t mod 1 for a seamless cycle.
	LoopClosed

	// LoopPingPong folds t into a 0→1→0 triangular wave of period 2.
	LoopPingPong
)

// VariationDimension is a bitmask selecting which color dimensions the
// seeded variation layer perturbs. Combine with |, e.g.
// VaryHue|VaryLightness.
type VariationDimension uint8

const (
	// VaryHue perturbs the hue angle.
	VaryHue VariationDimension = 1 << iota

	// VaryLightness perturbs lightness.
	VaryLightness

	// VaryChroma perturbs chroma (at half weight, so saturation drifts
	// more gently than hue or lightness).
	VaryChroma
)

// VariationStrength selects the perturbation magnitude preset.
type VariationStrength int

const (
	// VariationSubtle applies barely noticeable variation (magnitude 0.02).
	VariationSubtle VariationStrength = iota

	// VariationNoticeable applies medium variation (magnitude 0.05).
	VariationNoticeable

	// VariationCustom applies VariationConfig.Magnitude verbatim. The
	// magnitude itself is unclamped; only the resulting channels are.
	VariationCustom
)

// VariationConfig controls the deterministic seeded perturbation layer.
// Identical (Seed, t, Dimensions, magnitude) inputs produce identical
// perturbations across platforms, calls, and independently built journeys.
type VariationConfig struct {
	// Enabled turns the variation layer on; when false the other fields
	// (including Seed) are ignored.
	Enabled bool

	// Dimensions selects which of hue/lightness/chroma are perturbed.
	Dimensions VariationDimension

	// Strength picks the magnitude preset.
	Strength VariationStrength

	// Magnitude is used verbatim when Strength == VariationCustom.
	Magnitude float32

	// Seed is the 64-bit base seed. Per-call PRNG state is derived from
	// Seed and t; it is never stored, which keeps sampling stateless.
	Seed uint64
}

// DeltaRange bounds the perceptual distance between adjacent colors in
// index/range discrete access. Min is a hard guarantee; Max is best-effort
// and may be exceeded at loop-wrap boundaries or with high-contrast anchors.
// When set, it replaces the ContrastLevel threshold on those paths.
type DeltaRange struct {
	// Min is the hard lower bound on adjacent ΔE (≈0.02 is one JND).
	Min float32

	// Max is the best-effort upper bound on adjacent ΔE (≈0.05).
	Max float32
}

// Config describes a journey before construction. Build one with
// DefaultConfig, set Anchors (1–MaxAnchors colors in linear RGB), adjust
// biases, then pass it to New. New copies the config; later mutation of a
// Config does not affect journeys already built from it.
type Config struct {
	// Anchors are the seed colors, in order. One anchor produces a full
	// hue-wheel journey; 2–8 anchors produce a journey through them.
	Anchors []oklab.RGB

	// LightnessBias and LightnessWeight shape overall brightness.
	// LightnessWeight is only read when LightnessBias == LightnessCustom.
	LightnessBias   LightnessBias
	LightnessWeight float32

	// ChromaBias and ChromaMultiplier shape overall saturation.
	// ChromaMultiplier is only read when ChromaBias == ChromaCustom.
	ChromaBias       ChromaBias
	ChromaMultiplier float32

	// ContrastLevel and ContrastThreshold set the minimum ΔE between
	// adjacent discrete colors. ContrastThreshold is only read when
	// ContrastLevel == ContrastCustom.
	ContrastLevel     ContrastLevel
	ContrastThreshold float32

	// MidVibrancy boosts chroma around the journey midpoint, preventing
	// muddy centers. Range [0, 1]; 0 disables the boost.
	MidVibrancy float32

	// TemperatureBias rotates waypoint hues warm or cool.
	TemperatureBias TemperatureBias

	// LoopMode selects boundary behavior for the sampling parameter.
	LoopMode LoopMode

	// Variation configures the deterministic perturbation layer.
	Variation VariationConfig

	// DeltaRange, when non-nil, bounds adjacent ΔE in At/Range access.
	DeltaRange *DeltaRange
}

// DefaultConfig returns a Config with the engine's curated defaults:
// medium contrast, neutral biases, mild mid-journey vibrancy, open loop,
// variation disabled with a fixed deterministic seed.
//
// Anchors are intentionally left empty — callers must supply at least one.
func DefaultConfig() Config {
	return Config{
		LightnessBias:   LightnessNeutral,
		ChromaBias:      ChromaNeutral,
		ContrastLevel:   ContrastMedium,
		MidVibrancy:     0.3,
		TemperatureBias: TemperatureNeutral,
		LoopMode:        LoopOpen,
		Variation: VariationConfig{
			Enabled: false,
			Seed:    0x123456789ABCDEF0,
		},
	}
}

// validate reports the first configuration fault, or nil.
func (c *Config) validate() error {
	switch {
	case len(c.Anchors) == 0:
		return ErrNoAnchors
	case len(c.Anchors) > MaxAnchors:
		return ErrTooManyAnchors
	}
	if c.LightnessBias == LightnessCustom &&
		(c.LightnessWeight < -1 || c.LightnessWeight > 1) {
		return ErrBadLightnessWeight
	}
	if c.ChromaBias == ChromaCustom &&
		(c.ChromaMultiplier < 0.5 || c.ChromaMultiplier > 2) {
		return ErrBadChromaMultiplier
	}
	if c.ContrastLevel == ContrastCustom && c.ContrastThreshold <= 0 {
		return ErrBadContrastThreshold
	}
	if c.MidVibrancy < 0 || c.MidVibrancy > 1 {
		return ErrBadVibrancy
	}
	if c.DeltaRange != nil &&
		(c.DeltaRange.Min <= 0 || c.DeltaRange.Max < c.DeltaRange.Min) {
		return ErrBadDeltaRange
	}
	return nil
}

// minDeltaE resolves the contrast level to a concrete ΔE threshold.
func (c *Config) minDeltaE() float32 {
	switch c.ContrastLevel {
	case ContrastLow:
		return oklab.DeltaJND
	case ContrastHigh:
		return oklab.DeltaStrong
	case ContrastCustom:
		return c.ContrastThreshold
	default:
		return oklab.DeltaBalanced
	}
}
