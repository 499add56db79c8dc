package ring

import "math"

// Curve transforms linear animation progress in [0, 1] into eased progress.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// EaseOut starts quickly and decelerates into the target. This is the
// default driver curve; it makes a ring surge toward its value and settle
// gently, which reads well for entrance animations.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
// The curve starts at (0,0) and ends at (1,1); the parameters are the two
// control points.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson converges quickly for well-behaved curves.
		u := t
		for range 8 {
			x := bezierComponent(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierComponent(y1, y2, clamp01(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback guarantees a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for range 12 {
			x := bezierComponent(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierComponent(y1, y2, u)
	}
}

func bezierComponent(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
