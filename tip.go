package ring

import "math"

// TipMarker is the screen-space pose of the decorative marker riding the
// arc's leading edge.
type TipMarker struct {
	Position Point
	Visible  bool
}

// TrackTip locates the tip marker for a raw driver value. Unlike the
// throttled redraw path this is meant to run every frame: it is pure
// trigonometry, cheap enough to keep perfectly smooth.
//
// The returned position is in screen space, so overflow laps are folded
// into the angle here rather than left as a whole-arc rotation.
func TrackTip(progress float64, center Point, radius float64) TipMarker {
	clamped := sanitizeRatio(progress)

	geom := ComputeGeometry(clamped, center, radius, 0)
	angle := geom.SweepFraction*2*math.Pi + geom.LapRotation

	return TipMarker{
		Position: center.OnCircle(radius, angle),
		Visible:  clamped > visibilityThreshold,
	}
}
