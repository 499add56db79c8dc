package ring

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"long form", "#1EC8B6", RGBA{R: 0x1E / 255.0, G: 0xC8 / 255.0, B: 0xB6 / 255.0, A: 1}},
		{"no hash", "1EC8B6", RGBA{R: 0x1E / 255.0, G: 0xC8 / 255.0, B: 0xB6 / 255.0, A: 1}},
		{"short form", "#FFF", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"short black", "#000", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"lowercase", "#ff2d55", RGBA{R: 0xFF / 255.0, G: 0x2D / 255.0, B: 0x55 / 255.0, A: 1}},
		{"invalid length", "#12345", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"empty", "", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(1, 1, 1)

	if got := black.Lerp(white, 0); !colorsClose(got, black, 1e-9) {
		t.Errorf("Lerp(0) = %+v, want black", got)
	}
	if got := black.Lerp(white, 1); !colorsClose(got, white, 1e-9) {
		t.Errorf("Lerp(1) = %+v, want white", got)
	}
	if got := black.Lerp(white, 0.5); !colorsClose(got, RGB(0.5, 0.5, 0.5), 1e-9) {
		t.Errorf("Lerp(0.5) = %+v, want mid gray", got)
	}
}

func TestShade(t *testing.T) {
	base := RGB(0.4, 0.5, 0.6)

	lighter := base.Shade(0.2)
	if lighter.R <= base.R || lighter.G <= base.G || lighter.B <= base.B {
		t.Errorf("Shade(0.2) = %+v, should be lighter than %+v", lighter, base)
	}

	darker := base.Shade(-0.2)
	if darker.R >= base.R || darker.G >= base.G || darker.B >= base.B {
		t.Errorf("Shade(-0.2) = %+v, should be darker than %+v", darker, base)
	}

	if got := base.Shade(0); !colorsClose(got, base, 1e-9) {
		t.Errorf("Shade(0) = %+v, want unchanged %+v", got, base)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)

	if got := c.WithAlpha(0.35); !colorsClose(got, RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.35}, 1e-9) {
		t.Errorf("WithAlpha(0.35) = %+v", got)
	}
	if got := c.WithAlpha(0); got.A != 0 {
		t.Errorf("WithAlpha(0).A = %v, want 0", got.A)
	}
}

func TestShadePreservesAlpha(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.3}
	if got := c.Shade(0.4).A; got != 0.3 {
		t.Errorf("alpha = %v, want 0.3", got)
	}
}
