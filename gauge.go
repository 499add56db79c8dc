package ring

import (
	"errors"
	"time"
)

// GaugeConfig describes the shared geometry and stagger of a set of
// concentric rings.
type GaugeConfig struct {
	Center       Point
	OuterRadius  float64
	StrokeWidth  float64
	Spacing      float64
	BaseDelay    time.Duration
	DelayPerRing time.Duration
}

// Gauge is a set of concentric rings sharing a center, packed inward from
// the outer radius and revealed with staggered entrance delays. Every ring
// runs its own independent pipeline; the gauge only fans calls out.
type Gauge struct {
	rings []*Ring
}

// NewGauge lays out one ring per color, outermost first, and builds the
// ring pipelines on the given surface. Shared opts apply to every ring
// before the layout-derived radius and delay, so the layout always wins
// those two fields.
func NewGauge(surface Surface, cfg GaugeConfig, colors []RGBA, opts ...RingOption) *Gauge {
	surfaces := make([]Surface, len(colors))
	for i := range surfaces {
		surfaces[i] = surface
	}
	return NewGaugeOnSurfaces(surfaces, cfg, colors, opts...)
}

// NewGaugeOnSurfaces is NewGauge with one surface per ring, for hosts that
// keep a separate layer per ring (as the render package's Canvas does).
// surfaces and colors must have the same length.
func NewGaugeOnSurfaces(surfaces []Surface, cfg GaugeConfig, colors []RGBA, opts ...RingOption) *Gauge {
	if len(surfaces) != len(colors) {
		panic("ring: NewGaugeOnSurfaces: len(surfaces) != len(colors)")
	}

	slots := ComputeLayout(len(colors), cfg.OuterRadius, cfg.StrokeWidth, cfg.Spacing, cfg.BaseDelay, cfg.DelayPerRing)

	g := &Gauge{rings: make([]*Ring, len(colors))}
	for i, col := range colors {
		ringOpts := make([]RingOption, 0, len(opts)+5)
		ringOpts = append(ringOpts, opts...)
		ringOpts = append(ringOpts,
			WithCenter(cfg.Center),
			WithStrokeWidth(cfg.StrokeWidth),
			WithBaseColor(col),
			WithRadius(slots[i].Radius),
			WithDelay(slots[i].Delay),
		)
		g.rings[i] = NewRing(surfaces[i], ringOpts...)
	}
	return g
}

// Len returns the number of rings in the gauge.
func (g *Gauge) Len() int {
	return len(g.rings)
}

// Ring returns the i-th ring, outermost first.
func (g *Gauge) Ring(i int) *Ring {
	return g.rings[i]
}

// SetProgress starts animating the i-th ring toward a new ratio.
func (g *Gauge) SetProgress(i int, ratio float64, now time.Time) {
	g.rings[i].SetProgress(ratio, now)
}

// Advance runs one frame for every ring and joins any surface errors.
func (g *Gauge) Advance(now time.Time) error {
	var errs []error
	for _, r := range g.rings {
		if err := r.Advance(now); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
