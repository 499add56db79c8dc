package ring

import (
	"math"
	"testing"
)

func TestTrackTipPosition(t *testing.T) {
	center := Pt(0, 0)

	tests := []struct {
		name     string
		progress float64
		want     Point
	}{
		{"quarter", 0.25, Pt(0, 10)},
		{"half", 0.5, Pt(-10, 0)},
		{"three quarters", 0.75, Pt(0, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackTip(tt.progress, center, 10)
			if !pointsClose(got.Position, tt.want, 1e-9) {
				t.Errorf("Position = %+v, want %+v", got.Position, tt.want)
			}
		})
	}
}

func TestTrackTipOverflowFoldsLaps(t *testing.T) {
	// Past 100% the marker's screen angle includes the lap rotation, so it
	// keeps circling instead of parking at the sweep cap.
	got := TrackTip(1.25, Pt(0, 0), 10)

	angle := (maxSweep + 0.25) * 2 * math.Pi
	want := Pt(10*math.Cos(angle), 10*math.Sin(angle))
	if !pointsClose(got.Position, want, 1e-9) {
		t.Errorf("Position = %+v, want %+v", got.Position, want)
	}
}

func TestTrackTipVisibility(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     bool
	}{
		{"zero", 0, false},
		{"at threshold", 0.002, false},
		{"above threshold", 0.003, true},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"overflow", 2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrackTip(tt.progress, Pt(0, 0), 10).Visible; got != tt.want {
				t.Errorf("Visible = %v, want %v", got, tt.want)
			}
		})
	}
}
