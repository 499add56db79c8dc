package ring

import (
	"testing"
	"time"
)

func syncClock() time.Time {
	return time.Unix(0, 0)
}

func TestSynchronizerFirstSamplePublishes(t *testing.T) {
	s := NewSynchronizer()
	p := testParams()

	_, redraw := s.Observe(Sample{Value: 0.5, Time: syncClock()}, p)
	if !redraw {
		t.Fatal("first sample must publish and redraw")
	}
	if _, ok := s.State(); !ok {
		t.Fatal("state should be retained after first publish")
	}
}

// A fast ramp must never redraw more often than the burst interval.
func TestSynchronizerBurstCeiling(t *testing.T) {
	s := NewSynchronizer()
	p := testParams()

	var redrawTimes []time.Time
	now := syncClock()
	value := 0.0

	// 4ms sampling, large per-frame movement: every sample wants a redraw.
	for range 250 {
		now = now.Add(4 * time.Millisecond)
		value += 0.004
		if _, redraw := s.Observe(Sample{Value: value, Time: now}, p); redraw {
			redrawTimes = append(redrawTimes, now)
		}
	}

	if len(redrawTimes) < 2 {
		t.Fatalf("expected multiple redraws, got %d", len(redrawTimes))
	}
	for i := 1; i < len(redrawTimes); i++ {
		if spacing := redrawTimes[i].Sub(redrawTimes[i-1]); spacing < defaultBurstInterval {
			t.Fatalf("redraws %v apart, ceiling is %v", spacing, defaultBurstInterval)
		}
	}
}

// Slow drift below the burst delta must still publish at the catch-up
// floor, so the display never freezes.
func TestSynchronizerCatchUpFloor(t *testing.T) {
	s := NewSynchronizer()
	p := testParams()

	now := syncClock()
	s.Observe(Sample{Value: 0.5, Time: now}, p)

	// Oscillate ±0.002 around the published value at 8ms: never settled,
	// never past the burst delta.
	var publishes []time.Time
	value := 0.5
	for i := range 30 {
		now = now.Add(8 * time.Millisecond)
		if i%2 == 0 {
			value = 0.502
		} else {
			value = 0.498
		}
		prev, _ := s.State()
		state, _ := s.Observe(Sample{Value: value, Time: now}, p)
		if !state.Equal(prev) {
			publishes = append(publishes, now)
		}
	}

	if len(publishes) == 0 {
		t.Fatal("catch-up floor never published")
	}
	// First accepted sample arrives at the first tick at or past 48ms.
	if got := publishes[0].Sub(syncClock()); got > defaultCatchUpInterval+8*time.Millisecond {
		t.Fatalf("first catch-up publish at %v, want within %v", got, defaultCatchUpInterval+8*time.Millisecond)
	}
}

func TestSynchronizerSettlePublishes(t *testing.T) {
	s := NewSynchronizer()
	p := testParams()

	now := syncClock()
	s.Observe(Sample{Value: 0.3, Time: now}, p)

	// Driver moves, then stops dead 2ms later: the settle detector must
	// publish the final value without waiting for the catch-up floor.
	now = now.Add(1 * time.Millisecond)
	s.Observe(Sample{Value: 0.42, Time: now}, p)

	now = now.Add(1 * time.Millisecond)
	state, redraw := s.Observe(Sample{Value: 0.42, Time: now}, p)
	if !redraw {
		t.Fatal("settled value should publish immediately")
	}
	if state.SweepFraction != 0.42 {
		t.Errorf("SweepFraction = %v, want 0.42", state.SweepFraction)
	}
}

// Feeding the same value twice within one window redraws exactly once:
// the equality predicate suppresses the duplicate.
func TestSynchronizerSuppressesIdenticalStates(t *testing.T) {
	s := NewSynchronizer()
	p := testParams()

	now := syncClock()
	redraws := 0
	for range 10 {
		now = now.Add(2 * time.Millisecond)
		if _, redraw := s.Observe(Sample{Value: 0.42, Time: now}, p); redraw {
			redraws++
		}
	}

	if redraws != 1 {
		t.Fatalf("got %d redraws for a constant value, want 1", redraws)
	}
}

func TestSynchronizerReset(t *testing.T) {
	s := NewSynchronizer(SyncBurstInterval(32 * time.Millisecond))
	p := testParams()

	now := syncClock()
	s.Observe(Sample{Value: 0.7, Time: now}, p)
	s.Reset()

	if _, ok := s.State(); ok {
		t.Fatal("reset should drop the retained state")
	}

	// History is gone: the next sample is a first sample again, even with
	// a different value arriving immediately.
	_, redraw := s.Observe(Sample{Value: 0.1, Time: now.Add(time.Millisecond)}, p)
	if !redraw {
		t.Fatal("first sample after reset must publish")
	}
}
