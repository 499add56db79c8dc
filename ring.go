package ring

import (
	"fmt"
	"time"
)

// Ring is the single-ring pipeline: a Driver easing toward the latest
// target, a Synchronizer throttling the expensive redraw path, and the
// Surface both feed. One Ring owns one set of Params; rings never share
// state, so any number of them can advance independently.
type Ring struct {
	params  Params
	driver  *Driver
	sync    *Synchronizer
	surface Surface
}

// NewRing creates a ring pipeline drawing onto surface.
func NewRing(surface Surface, opts ...RingOption) *Ring {
	cfg := defaultRingConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Ring{
		params:  cfg.params,
		driver:  NewDriver(cfg.driver...),
		sync:    NewSynchronizer(cfg.sync...),
		surface: surface,
	}
}

// Params returns the ring's visual configuration.
func (r *Ring) Params() Params {
	return r.params
}

// SetProgress starts animating toward a new progress ratio. With
// skip-animation configured the driver jumps straight to the target and the
// throttle history is cleared, so the next Advance publishes exactly one
// fresh state.
func (r *Ring) SetProgress(ratio float64, now time.Time) {
	r.driver.SetTarget(ratio, now)
	if r.driver.SkipsAnimation() {
		r.sync.Reset()
	}
}

// Value returns the driver's current (possibly mid-ease) value.
func (r *Ring) Value() float64 {
	return r.driver.Value()
}

// State returns the currently rendered state, if any.
func (r *Ring) State() (VisualState, bool) {
	return r.sync.State()
}

// Advance runs one frame of the pipeline: step the driver, update the tip
// marker from the raw value, and redraw the ring if the throttle accepts
// the sample and the state actually changed.
func (r *Ring) Advance(now time.Time) error {
	sample := r.driver.Advance(now)

	state, redraw := r.sync.Observe(sample, r.params)
	if redraw {
		if err := r.surface.DrawRing(r.params, state); err != nil {
			return fmt.Errorf("ring: draw: %w", err)
		}
	}

	tip := TrackTip(sample.Value, r.params.Center, r.params.Radius)
	if err := r.surface.MoveTip(r.params, tip, state.TipColor); err != nil {
		return fmt.Errorf("ring: tip: %w", err)
	}
	return nil
}
