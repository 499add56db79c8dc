package ring

// entranceFadeSpan is the ratio span over which a ring fades from invisible
// to fully opaque once it crosses the visibility threshold. Keeps a ring
// near zero from popping in as a hard dot.
const entranceFadeSpan = 0.028

// VisualState is the redraw-facing snapshot of a single ring: everything a
// surface needs to draw one frame. States are immutable; the pipeline
// replaces them wholesale on every accepted sample.
type VisualState struct {
	SweepFraction float64
	LapRotation   float64
	EndPoint      Point
	ShadowPoint   Point

	// Opacity is 0 at or below the visibility threshold, then fades in.
	Opacity float64

	// TipColor is the ramp color at the arc's leading edge, used to tint
	// the tip marker.
	TipColor RGBA

	// Stops is the directional highlight ramp. Non-empty, first offset 0,
	// last offset 1, offsets non-decreasing.
	Stops []ColorStop
}

// BuildState reduces a progress ratio and ring parameters into one
// VisualState snapshot.
func BuildState(ratio float64, p Params) VisualState {
	clamped := sanitizeRatio(ratio)

	geom := ComputeGeometry(clamped, p.Center, p.Radius, p.StrokeWidth)
	stops := HighlightStops(p.BaseColor, geom.SweepFraction, p.DarkSurface)

	opacity := 0.0
	if clamped > visibilityThreshold {
		opacity = clamp01((clamped - visibilityThreshold) / entranceFadeSpan)
	}

	return VisualState{
		SweepFraction: geom.SweepFraction,
		LapRotation:   geom.LapRotation,
		EndPoint:      geom.EndPoint,
		ShadowPoint:   geom.ShadowPoint,
		Opacity:       opacity,
		TipColor:      ColorAt(stops, geom.SweepFraction),
		Stops:         stops,
	}
}

// Equal reports whether two states are identical: every scalar field
// bit-equal and the stop lists pairwise equal. Used only to suppress no-op
// redraws.
func (s VisualState) Equal(o VisualState) bool {
	if s.SweepFraction != o.SweepFraction ||
		s.LapRotation != o.LapRotation ||
		s.EndPoint != o.EndPoint ||
		s.ShadowPoint != o.ShadowPoint ||
		s.Opacity != o.Opacity ||
		s.TipColor != o.TipColor {
		return false
	}
	if len(s.Stops) != len(o.Stops) {
		return false
	}
	for i := range s.Stops {
		if s.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return true
}
