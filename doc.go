// Package ring provides an animated circular progress ("ring gauge")
// rendering engine for the GoGPU ecosystem.
//
// # Overview
//
// ring computes everything needed to draw one or many concentric progress
// rings with a directional highlight gradient, a soft trailing shadow and a
// decorative tip marker riding the leading edge. It is a pure computation
// layer: given a progress ratio and a handful of visual parameters it
// produces arc geometry, gradient stops and an immutable VisualState
// snapshot, and it decides when a redraw is actually worth doing. Actual
// rasterization is delegated to a Surface implementation; the render
// subpackage ships one built on github.com/gogpu/gg.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ring"
//	    "github.com/gogpu/ring/render"
//	)
//
//	dc := gg.NewContext(256, 256)
//	canvas := render.NewCanvas(dc, gg.RGBA{R: 1, G: 1, B: 1, A: 1})
//	r := ring.NewRing(canvas.NewPainter(),
//	    ring.WithCenter(ring.Pt(128, 128)),
//	    ring.WithRadius(100),
//	    ring.WithStrokeWidth(16),
//	    ring.WithBaseColor(ring.Hex("#1EC8B6")),
//	)
//	r.SetProgress(0.75, time.Now())
//
//	// Drive from any frame loop:
//	r.Advance(time.Now())
//	canvas.Paint()
//	dc.SavePNG("ring.png")
//
// # Progress semantics
//
// A ratio of 1.0 means exactly at goal. Ratios above 1.0 lap the circle:
// the sweep caps just below a full turn and the whole arc gains one extra
// full-turn rotation per completed lap, so a ring at 230% overlaps itself
// once and shows 30% of a second lap. Negative and NaN ratios clamp to 0.
//
// # Architecture
//
// The library is organized into:
//   - Pure core: ComputeGeometry, HighlightStops, ColorAt, BuildState
//   - Scheduling: Driver (eased value), Synchronizer (publish throttle)
//   - Composition: Ring (one gauge), Gauge (concentric set), ComputeLayout
//   - Integration: Surface interface, render subpackage (gg painter)
package ring
