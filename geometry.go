package ring

import "math"

const (
	// maxSweep caps the stroked fraction of the circle just below a full
	// turn so the rounded end cap at 100% stays visually separated from
	// the track start.
	maxSweep = 0.995

	// shadowOffsetFactor scales the stroke width into the tangent offset
	// of the trailing shadow blob.
	shadowOffsetFactor = 0.55

	// visibilityThreshold is the ratio below which a ring (and its tip
	// marker) is fully hidden, preventing a lone dot at ratio ≈ 0.
	visibilityThreshold = 0.002
)

// Geometry is the arc-space output of the ratio-to-geometry derivation.
// EndPoint and ShadowPoint are expressed in the un-rotated arc frame;
// LapRotation is applied by the surface as a whole-arc rotation.
type Geometry struct {
	// SweepFraction is the portion of a full circle to stroke, in [0, maxSweep].
	SweepFraction float64

	// LapRotation is the extra rotation in radians accumulated for every
	// full lap beyond 100%.
	LapRotation float64

	// EndPoint is the leading edge of the arc.
	EndPoint Point

	// ShadowPoint trails the leading edge along the tangent; a soft blob
	// drawn there reads as a light source.
	ShadowPoint Point
}

// sanitizeRatio maps NaN and negative ratios to 0. NaN propagates
// inconsistently through comparison operators, so it gets an explicit guard
// rather than relying on max.
func sanitizeRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || ratio < 0 {
		return 0
	}
	return ratio
}

// ComputeGeometry derives the arc geometry for a progress ratio.
// Ratios above 1 cap the sweep at maxSweep and convert the excess into
// LapRotation, one full turn per completed lap.
func ComputeGeometry(ratio float64, center Point, radius, strokeWidth float64) Geometry {
	clamped := sanitizeRatio(ratio)

	capped := clamped
	if capped > 1 {
		capped = 1
	}

	sweep := capped
	if sweep > maxSweep {
		sweep = maxSweep
	}

	lap := 0.0
	if clamped > 1 {
		lap = (clamped - 1) * 2 * math.Pi
	}

	angle := sweep * 2 * math.Pi
	end := center.OnCircle(radius, angle)
	shadow := end.Add(Pt(math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2)).Mul(shadowOffsetFactor * strokeWidth))

	return Geometry{
		SweepFraction: sweep,
		LapRotation:   lap,
		EndPoint:      end,
		ShadowPoint:   shadow,
	}
}
