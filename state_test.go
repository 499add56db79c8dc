package ring

import (
	"math"
	"testing"
)

func testParams() Params {
	p := DefaultParams()
	p.Center = Pt(100, 100)
	p.Radius = 80
	p.StrokeWidth = 16
	p.BaseColor = Hex("#1EC8B6")
	p.DarkSurface = false
	return p
}

func TestBuildStateOpacityCutoff(t *testing.T) {
	p := testParams()

	tests := []struct {
		name        string
		ratio       float64
		wantVisible bool
	}{
		{"zero", 0, false},
		{"at threshold", 0.002, false},
		{"just above threshold", 0.003, true},
		{"half", 0.5, true},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildState(tt.ratio, p)
			if tt.wantVisible && got.Opacity <= 0 {
				t.Errorf("Opacity = %v, want > 0", got.Opacity)
			}
			if !tt.wantVisible && got.Opacity != 0 {
				t.Errorf("Opacity = %v, want 0", got.Opacity)
			}
		})
	}
}

func TestBuildStateHalfRatio(t *testing.T) {
	// End-to-end: 50% on a light surface.
	got := BuildState(0.5, testParams())

	if got.SweepFraction != 0.5 {
		t.Errorf("SweepFraction = %v, want 0.5", got.SweepFraction)
	}
	if got.LapRotation != 0 {
		t.Errorf("LapRotation = %v, want 0", got.LapRotation)
	}
	if len(got.Stops) != 7 {
		t.Errorf("len(Stops) = %d, want 7", len(got.Stops))
	}
	if got.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", got.Opacity)
	}

	wantTip := ColorAt(got.Stops, got.SweepFraction)
	if !colorsClose(got.TipColor, wantTip, 0) {
		t.Errorf("TipColor = %+v, want ramp sample %+v", got.TipColor, wantTip)
	}
}

func TestBuildStateOverflow(t *testing.T) {
	got := BuildState(1.5, testParams())

	if got.SweepFraction != maxSweep {
		t.Errorf("SweepFraction = %v, want %v", got.SweepFraction, maxSweep)
	}
	if math.Abs(got.LapRotation-math.Pi) > 1e-9 {
		t.Errorf("LapRotation = %v, want %v", got.LapRotation, math.Pi)
	}
}

func TestVisualStateEqual(t *testing.T) {
	p := testParams()

	a := BuildState(0.5, p)
	b := BuildState(0.5, p)
	if !a.Equal(b) {
		t.Error("identical inputs should produce equal states")
	}

	c := BuildState(0.51, p)
	if a.Equal(c) {
		t.Error("different ratios should produce unequal states")
	}

	// Any stop difference breaks equality.
	d := BuildState(0.5, p)
	d.Stops = append([]ColorStop(nil), d.Stops...)
	d.Stops[3].Color.R += 0.001
	if a.Equal(d) {
		t.Error("modified stop should break equality")
	}

	e := BuildState(0.5, p)
	e.Stops = e.Stops[:6]
	if a.Equal(e) {
		t.Error("different stop counts should break equality")
	}
}
