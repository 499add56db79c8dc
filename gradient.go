package ring

// ColorStop represents a color at a specific position in a gradient ramp.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Tonal shift factors for the highlight ramp. Shifts are softer on light
// surfaces to avoid harsh banding.
const (
	darkenOnDark   = -0.35
	darkenOnLight  = -0.18
	lightenOnDark  = 0.12
	lightenOnLight = 0.06

	// Width of the highlight band as a fraction of the ramp. Narrower on
	// light surfaces to avoid over-brightening.
	bandOnDark  = 0.12
	bandOnLight = 0.08
)

// EffectIntensity returns the strength of the directional highlight for a
// given sweep fraction. The highlight switches on once the ring has swept
// past 10% and reaches full strength by 40%, so a freshly started ring looks
// flat rather than already glinting.
func EffectIntensity(sweep float64) float64 {
	return clamp01((sweep - 0.1) / 0.3)
}

// HighlightStops derives the 7-stop directional highlight ramp for a ring.
// The ramp runs along the stroked arc: a flat run of the start shade, a warm
// band just behind the leading edge, the base color at the edge itself, and
// a tail that folds back into the start shade so the ramp tiles cleanly
// across the cap gap.
//
// Offsets are guaranteed non-decreasing, with the first stop at 0 and the
// last at 1. ColorAt depends on that ordering.
func HighlightStops(base RGBA, sweep float64, darkSurface bool) []ColorStop {
	intensity := EffectIntensity(sweep)

	darken, lighten, band := darkenOnLight, lightenOnLight, bandOnLight
	if darkSurface {
		darken, lighten, band = darkenOnDark, lightenOnDark, bandOnDark
	}

	startShade := base.Lerp(base.Shade(darken), intensity)
	warmShade := base.Lerp(base.Shade(lighten), intensity)

	highlightEnd := sweep
	if highlightEnd < 0 {
		highlightEnd = 0
	}
	highlightStart := highlightEnd - band
	if highlightStart < 0 {
		highlightStart = 0
	}

	hold := sweep + 0.015
	if hold > 0.999 {
		hold = 0.999
	}

	stops := []ColorStop{
		{0, startShade},
		{highlightStart * 0.65, startShade},
		{highlightStart, warmShade},
		{highlightEnd - 0.001, base},
		{hold, base},
		{0.999, startShade},
		{1, startShade},
	}

	// The formulas above can produce a locally decreasing offset when the
	// sweep is tiny (highlightEnd − 0.001 goes negative). Clamp each offset
	// to its predecessor to keep the ramp monotonic.
	for i := 1; i < len(stops); i++ {
		if stops[i].Offset < stops[i-1].Offset {
			stops[i].Offset = stops[i-1].Offset
		}
	}

	return stops
}
