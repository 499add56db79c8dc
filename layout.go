package ring

import "time"

// Slot is one ring's place in a concentric layout: its radius and the hold
// before its entrance animation begins.
type Slot struct {
	Radius float64
	Delay  time.Duration
}

// ComputeLayout packs count rings inward from outerRadius, outer ring
// first. Each inner ring sits one stroke width plus one spacing gap inside
// its neighbor, and each ring's entrance delay grows by delayPerRing on top
// of baseDelay, producing a staggered reveal.
//
// Radii are strictly decreasing and are not clamped: the caller must choose
// parameters that keep the innermost radius positive. A non-positive slot
// is reported through the package logger and returned as computed.
func ComputeLayout(count int, outerRadius, strokeWidth, spacing float64, baseDelay, delayPerRing time.Duration) []Slot {
	if count <= 0 {
		return nil
	}

	slots := make([]Slot, count)
	for i := range slots {
		radius := outerRadius - float64(i)*(strokeWidth+spacing)
		if radius <= 0 {
			logger().Warn("ring layout produced non-positive radius",
				"index", i,
				"radius", radius,
				"outerRadius", outerRadius,
				"strokeWidth", strokeWidth,
				"spacing", spacing)
		}
		slots[i] = Slot{
			Radius: radius,
			Delay:  baseDelay + time.Duration(i)*delayPerRing,
		}
	}
	return slots
}
