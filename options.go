package ring

import "time"

// Params is the immutable per-ring visual configuration. It is passed by
// value; MultiRingLayout overrides Radius when a ring belongs to a Gauge.
type Params struct {
	Center      Point
	Radius      float64
	StrokeWidth float64

	// BaseColor is the ring's identity color; the highlight ramp is
	// derived from it.
	BaseColor RGBA

	// DarkSurface selects the stronger shading curve used on dark
	// backgrounds.
	DarkSurface bool

	TrackColor   RGBA
	TrackOpacity float64
	ShadowColor  RGBA
}

// DefaultParams returns the default ring configuration.
func DefaultParams() Params {
	return Params{
		Center:       Pt(0, 0),
		Radius:       100,
		StrokeWidth:  12,
		BaseColor:    Hex("#1EC8B6"),
		DarkSurface:  true,
		TrackColor:   RGB(0.5, 0.5, 0.5),
		TrackOpacity: 0.2,
		ShadowColor:  RGB(0, 0, 0),
	}
}

// ringConfig collects everything a Ring is built from.
type ringConfig struct {
	params Params
	driver []DriverOption
	sync   []SyncOption
}

func defaultRingConfig() ringConfig {
	return ringConfig{params: DefaultParams()}
}

// RingOption configures a Ring during creation.
//
// Example:
//
//	r := ring.NewRing(surface,
//	    ring.WithCenter(ring.Pt(128, 128)),
//	    ring.WithBaseColor(ring.Hex("#FF5A76")),
//	    ring.WithDelay(200*time.Millisecond),
//	)
type RingOption func(*ringConfig)

// WithParams replaces the entire parameter set.
func WithParams(p Params) RingOption {
	return func(c *ringConfig) { c.params = p }
}

// WithCenter sets the ring center.
func WithCenter(p Point) RingOption {
	return func(c *ringConfig) { c.params.Center = p }
}

// WithRadius sets the ring radius.
func WithRadius(r float64) RingOption {
	return func(c *ringConfig) { c.params.Radius = r }
}

// WithStrokeWidth sets the stroke width.
func WithStrokeWidth(w float64) RingOption {
	return func(c *ringConfig) { c.params.StrokeWidth = w }
}

// WithBaseColor sets the ring's base color.
func WithBaseColor(col RGBA) RingOption {
	return func(c *ringConfig) { c.params.BaseColor = col }
}

// WithDarkSurface selects the dark- or light-surface shading curve.
func WithDarkSurface(dark bool) RingOption {
	return func(c *ringConfig) { c.params.DarkSurface = dark }
}

// WithTrack sets the track color and opacity.
func WithTrack(col RGBA, opacity float64) RingOption {
	return func(c *ringConfig) {
		c.params.TrackColor = col
		c.params.TrackOpacity = opacity
	}
}

// WithShadowColor sets the color of the trailing shadow blob.
func WithShadowColor(col RGBA) RingOption {
	return func(c *ringConfig) { c.params.ShadowColor = col }
}

// WithSkipAnimation makes the ring jump to each target instantly instead of
// easing toward it.
func WithSkipAnimation() RingOption {
	return func(c *ringConfig) { c.driver = append(c.driver, DriverSkipAnimation()) }
}

// WithDelay holds the driver for d before it begins easing toward its
// first target. Used for staggered multi-ring reveals.
func WithDelay(d time.Duration) RingOption {
	return func(c *ringConfig) { c.driver = append(c.driver, DriverDelay(d)) }
}

// WithDuration sets how long the driver takes to ease to a new target.
func WithDuration(d time.Duration) RingOption {
	return func(c *ringConfig) { c.driver = append(c.driver, DriverDuration(d)) }
}

// WithEasing sets the driver's easing curve.
func WithEasing(curve Curve) RingOption {
	return func(c *ringConfig) { c.driver = append(c.driver, DriverCurve(curve)) }
}

// WithSync forwards options to the ring's Synchronizer.
func WithSync(opts ...SyncOption) RingOption {
	return func(c *ringConfig) { c.sync = append(c.sync, opts...) }
}
