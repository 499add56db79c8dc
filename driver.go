package ring

import "time"

// defaultDriverDuration is how long the driver takes to ease to a new
// target unless configured otherwise.
const defaultDriverDuration = 900 * time.Millisecond

// Driver eases a progress value toward a target over time. It is the
// continuous half of the pipeline: Advance is meant to be called once per
// display frame by whatever scheduler the host provides (an ebiten tick, a
// vsync callback, a test loop), and each call yields a timestamped Sample.
//
// A Driver holds no clock of its own; all timing comes in through the now
// arguments, which keeps it deterministic under test.
type Driver struct {
	duration time.Duration
	delay    time.Duration
	curve    Curve
	skip     bool

	value    float64
	from     float64
	target   float64
	start    time.Time
	easing   bool
	targeted bool
}

// DriverOption configures a Driver during creation.
type DriverOption func(*Driver)

// DriverDuration sets the easing duration.
func DriverDuration(d time.Duration) DriverOption {
	return func(dr *Driver) {
		if d > 0 {
			dr.duration = d
		}
	}
}

// DriverDelay sets the hold applied before the first target starts
// easing. Later retargets ease immediately; the hold exists to stagger
// ring entrances, not to lag live updates.
func DriverDelay(d time.Duration) DriverOption {
	return func(dr *Driver) {
		if d >= 0 {
			dr.delay = d
		}
	}
}

// DriverCurve sets the easing curve.
func DriverCurve(c Curve) DriverOption {
	return func(dr *Driver) {
		if c != nil {
			dr.curve = c
		}
	}
}

// DriverSkipAnimation makes SetTarget jump straight to the target value.
func DriverSkipAnimation() DriverOption {
	return func(dr *Driver) { dr.skip = true }
}

// NewDriver creates a driver at value 0 with an ease-out curve.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		duration: defaultDriverDuration,
		curve:    EaseOut,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetTarget starts easing toward target from the current value. NaN and
// negative targets clamp to 0. With skip-animation the value jumps
// immediately and the next Advance publishes it. The configured delay
// holds only the first target; retargets ease right away.
func (d *Driver) SetTarget(target float64, now time.Time) {
	target = sanitizeRatio(target)

	if d.skip {
		d.value = target
		d.target = target
		d.easing = false
		d.targeted = true
		return
	}

	d.from = d.value
	d.target = target
	d.start = now
	if !d.targeted {
		d.start = now.Add(d.delay)
	}
	d.targeted = true
	d.easing = true
}

// Value returns the current driver value without advancing it.
func (d *Driver) Value() float64 {
	return d.value
}

// Settled reports whether the driver has finished easing.
func (d *Driver) Settled() bool {
	return !d.easing
}

// SkipsAnimation reports whether the driver jumps to targets instantly.
func (d *Driver) SkipsAnimation() bool {
	return d.skip
}

// Advance steps the driver to the given time and returns the resulting
// sample. During the initial delay the value holds at its starting point.
func (d *Driver) Advance(now time.Time) Sample {
	if d.easing {
		switch {
		case now.Before(d.start):
			d.value = d.from
		case now.Sub(d.start) >= d.duration:
			d.value = d.target
			d.easing = false
		default:
			t := float64(now.Sub(d.start)) / float64(d.duration)
			d.value = d.from + (d.target-d.from)*d.curve(t)
		}
	}
	return Sample{Value: d.value, Time: now}
}
