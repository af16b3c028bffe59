package journey

import (
	"github.com/chewxy/math32"

	"github.com/lumora/colorjourney/oklab"
)

// waypoint is a derived control point on the journey path, in LCh.
type waypoint struct {
	lch    oklab.LCh
	weight float32
}

// singleAnchorWaypoints is the number of waypoints synthesized for a
// one-anchor journey: enough to shape a full hue revolution without
// flattening the easing curve.
const singleAnchorWaypoints = 8

// temperatureShift is the hue rotation (radians) applied per temperature
// bias step: positive toward warm, negative toward cool.
const temperatureShift float32 = 0.3

// Journey is an immutable path through OKLab color space. Build one with
// New; afterwards every method is read-only and safe for unsynchronized
// concurrent use. The zero value and a nil *Journey are inert: sampling
// them yields the zero color.
type Journey struct {
	cfg       Config
	anchors   []oklab.LCh
	waypoints []waypoint
}

// New validates cfg, converts its anchors to LCh once, builds the designed
// waypoint list, and returns the finished journey. The config (including
// the anchor slice and any DeltaRange) is copied, so callers may reuse or
// mutate cfg afterwards.
//
// Validation is strict: anchor count outside [1, MaxAnchors] or malformed
// bias parameters are rejected here with a sentinel error rather than
// surfacing as garbage at first sample.
//
// Complexity: O(len(Anchors)).
func New(cfg Config) (*Journey, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Detach the config from caller-owned memory.
	cfg.Anchors = append([]oklab.RGB(nil), cfg.Anchors...)
	if cfg.DeltaRange != nil {
		dr := *cfg.DeltaRange
		cfg.DeltaRange = &dr
	}

	j := &Journey{
		cfg:     cfg,
		anchors: make([]oklab.LCh, len(cfg.Anchors)),
	}
	for i, a := range cfg.Anchors {
		j.anchors[i] = oklab.LabToLCh(oklab.RGBToLab(a))
	}
	j.buildWaypoints()
	return j, nil
}

// buildWaypoints derives the journey's control points from its anchors.
// Runs exactly once, inside New; the result is never mutated afterwards.
func (j *Journey) buildWaypoints() {
	if len(j.anchors) == 1 {
		// Single anchor: synthesize a full hue-wheel sweep with shaped
		// pacing. Hue progresses by smoothstep rather than linearly, so
		// waypoints cluster where perception wants them; chroma peaks
		// mid-sweep and lightness rides two gentle oscillations.
		base := j.anchors[0]
		j.waypoints = make([]waypoint, singleAnchorWaypoints)
		for i := range j.waypoints {
			t := float32(i) / float32(singleAnchorWaypoints-1)
			hueT := smoothstep(t)
			j.waypoints[i] = waypoint{
				lch: oklab.LCh{
					L: base.L * (1 + 0.1*math32.Sin(t*2*math32.Pi)),
					C: base.C * (1 + 0.2*math32.Sin(t*math32.Pi)),
					H: base.H + hueT*2*math32.Pi,
				},
				weight: 1,
			}
		}
	} else {
		// Multi-anchor: one waypoint per anchor, input order, no synthesis.
		j.waypoints = make([]waypoint, len(j.anchors))
		for i, a := range j.anchors {
			j.waypoints[i] = waypoint{lch: a, weight: 1}
		}
	}

	if j.cfg.TemperatureBias != TemperatureNeutral {
		shift := temperatureShift
		if j.cfg.TemperatureBias == TemperatureCool {
			shift = -temperatureShift
		}
		for i := range j.waypoints {
			j.waypoints[i].lch.H = oklab.NormalizeHue(j.waypoints[i].lch.H + shift)
		}
	}
}

// Config returns a copy of the configuration the journey was built from.
func (j *Journey) Config() Config {
	if j == nil {
		return Config{}
	}
	cfg := j.cfg
	cfg.Anchors = append([]oklab.RGB(nil), cfg.Anchors...)
	if cfg.DeltaRange != nil {
		dr := *cfg.DeltaRange
		cfg.DeltaRange = &dr
	}
	return cfg
}

// Anchors returns a copy of the journey's anchors in LCh form.
func (j *Journey) Anchors() []oklab.LCh {
	if j == nil {
		return nil
	}
	return append([]oklab.LCh(nil), j.anchors...)
}

// smoothstep is the cubic easing 3t²−2t³ on [0, 1], clamped outside.
func smoothstep(t float32) float32 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// lerp linearly interpolates from a to b by t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
