package ring

import "time"

// Throttle tuning. The burst gate caps the expensive redraw path near 60 fps
// while the driver is moving meaningfully; the catch-up floor bounds how
// stale the published state may get (about 20 fps) so slow drift never
// leaves the display frozen.
const (
	defaultSettleEpsilon   = 0.001
	defaultBurstDelta      = 0.004
	defaultBurstInterval   = 16 * time.Millisecond
	defaultCatchUpInterval = 48 * time.Millisecond
)

// Sample is one raw, unthrottled driver reading. Samples are created every
// display frame and consumed immediately; they are never queued.
type Sample struct {
	Value float64
	Time  time.Time
}

// Synchronizer bridges the per-frame driver to the discrete VisualState the
// surface consumes. Each observed sample either publishes a fresh state or
// is suppressed; publishes are further deduplicated against the currently
// rendered state so bit-identical snapshots never trigger a redraw.
//
// The machine is driven entirely by the timestamps inside samples, so it
// never reads a clock. Samples must arrive in non-decreasing time order.
type Synchronizer struct {
	settleEpsilon   float64
	burstDelta      float64
	burstInterval   time.Duration
	catchUpInterval time.Duration

	prevValue          float64
	hasPrev            bool
	lastPublishTime    time.Time
	lastPublishedValue float64
	hasPublished       bool

	current  VisualState
	hasState bool
}

// SyncOption configures a Synchronizer during creation.
type SyncOption func(*Synchronizer)

// SyncSettleEpsilon sets the per-frame movement below which the driver is
// considered settled.
func SyncSettleEpsilon(eps float64) SyncOption {
	return func(s *Synchronizer) {
		if eps > 0 {
			s.settleEpsilon = eps
		}
	}
}

// SyncBurstDelta sets the minimum value change that qualifies for a
// rate-limited burst publish.
func SyncBurstDelta(delta float64) SyncOption {
	return func(s *Synchronizer) {
		if delta > 0 {
			s.burstDelta = delta
		}
	}
}

// SyncBurstInterval sets the minimum spacing between burst publishes
// (the redraw rate ceiling).
func SyncBurstInterval(d time.Duration) SyncOption {
	return func(s *Synchronizer) {
		if d > 0 {
			s.burstInterval = d
		}
	}
}

// SyncCatchUpInterval sets the maximum staleness before a publish is forced
// (the redraw rate floor).
func SyncCatchUpInterval(d time.Duration) SyncOption {
	return func(s *Synchronizer) {
		if d > 0 {
			s.catchUpInterval = d
		}
	}
}

// NewSynchronizer creates a synchronizer with the default throttle tuning.
func NewSynchronizer(opts ...SyncOption) *Synchronizer {
	s := &Synchronizer{
		settleEpsilon:   defaultSettleEpsilon,
		burstDelta:      defaultBurstDelta,
		burstInterval:   defaultBurstInterval,
		catchUpInterval: defaultCatchUpInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe feeds one sample through the throttle. It returns the state the
// surface should be showing and whether that state is new since the last
// redraw. The very first sample always publishes so the pipeline has a
// state to show.
func (s *Synchronizer) Observe(sample Sample, p Params) (VisualState, bool) {
	publish := true
	if s.hasPublished {
		elapsed := sample.Time.Sub(s.lastPublishTime)
		delta := abs(sample.Value - s.lastPublishedValue)

		hasSettled := s.hasPrev && abs(sample.Value-s.prevValue) < s.settleEpsilon
		shouldBurst := delta >= s.burstDelta && elapsed >= s.burstInterval
		shouldCatchUp := elapsed >= s.catchUpInterval

		publish = hasSettled || shouldBurst || shouldCatchUp
	}

	s.prevValue = sample.Value
	s.hasPrev = true

	if !publish {
		return s.current, false
	}

	s.lastPublishTime = sample.Time
	s.lastPublishedValue = sample.Value
	s.hasPublished = true

	state := BuildState(sample.Value, p)
	if s.hasState && state.Equal(s.current) {
		return s.current, false
	}

	s.current = state
	s.hasState = true
	logger().Debug("ring state published",
		"value", sample.Value,
		"sweep", state.SweepFraction,
		"opacity", state.Opacity)
	return s.current, true
}

// State returns the currently rendered state, if any sample has published.
func (s *Synchronizer) State() (VisualState, bool) {
	return s.current, s.hasState
}

// Reset clears all throttle history and the rendered state, as if the
// synchronizer was freshly created. Used when a ring is remounted.
func (s *Synchronizer) Reset() {
	*s = Synchronizer{
		settleEpsilon:   s.settleEpsilon,
		burstDelta:      s.burstDelta,
		burstInterval:   s.burstInterval,
		catchUpInterval: s.catchUpInterval,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
