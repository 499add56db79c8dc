package ring

import "sort"

// sampleEpsilon floors the interpolation denominator so coincident stops
// cannot divide by zero.
const sampleEpsilon = 1e-4

// ColorAt returns the interpolated color of a ramp at the given offset.
// Offsets at or before the first stop return the first stop's color;
// offsets beyond the last stop return the last stop's color (pad semantics).
// Stops must be ordered by non-decreasing offset, as HighlightStops
// guarantees. Deterministic for identical inputs.
func ColorAt(stops []ColorStop, offset float64) RGBA {
	if len(stops) == 0 {
		return RGBA{}
	}
	if offset <= stops[0].Offset {
		return stops[0].Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= offset
	})
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	left := stops[idx-1]
	right := stops[idx]

	span := right.Offset - left.Offset
	if span < sampleEpsilon {
		span = sampleEpsilon
	}
	t := (offset - left.Offset) / span

	return left.Color.Lerp(right.Color, clamp01(t))
}
