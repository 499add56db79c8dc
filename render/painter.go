// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ring"
)

// shadowAlpha scales the shadow blob's peak opacity.
const shadowAlpha = 0.35

// tipRadiusFactor sizes the tip marker relative to the stroke width.
const tipRadiusFactor = 0.3

// Canvas owns a gg context and the painters that draw onto it.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
	painters   []*Painter
	dirty      bool
}

// NewCanvas wraps a gg context. The background color is used to clear the
// context before each repaint.
func NewCanvas(dc *gg.Context, background gg.RGBA) *Canvas {
	return &Canvas{dc: dc, background: background}
}

// NewPainter adds a ring layer to the canvas and returns its Surface.
// Layers paint in creation order, so create outer rings first.
func (c *Canvas) NewPainter() *Painter {
	p := &Painter{canvas: c}
	c.painters = append(c.painters, p)
	return p
}

// Dirty reports whether any layer changed since the last Paint.
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Paint clears the context and repaints every ring layer. It is a no-op
// when nothing changed since the last call.
func (c *Canvas) Paint() error {
	if !c.dirty {
		return nil
	}
	c.dc.ClearWithColor(c.background)
	for _, p := range c.painters {
		if err := p.paint(c.dc); err != nil {
			return err
		}
	}
	c.dirty = false
	return nil
}

// Painter is one ring's layer on a Canvas. It implements ring.Surface by
// retaining the latest snapshot; rasterization happens in Canvas.Paint.
type Painter struct {
	canvas *Canvas

	params   ring.Params
	state    ring.VisualState
	hasState bool

	tip      ring.TipMarker
	tipColor ring.RGBA
	hasTip   bool
}

// DrawRing retains a newly published state. Called by the ring pipeline
// only when the throttle accepted a changed state.
func (p *Painter) DrawRing(params ring.Params, state ring.VisualState) error {
	p.params = params
	p.state = state
	p.hasState = true
	p.canvas.dirty = true
	return nil
}

// MoveTip retains the tip marker pose. Called every frame; only marks the
// canvas dirty when the pose or tint actually moved.
func (p *Painter) MoveTip(params ring.Params, tip ring.TipMarker, tipColor ring.RGBA) error {
	if p.hasTip && p.tip == tip && p.tipColor == tipColor {
		return nil
	}
	p.params = params
	p.tip = tip
	p.tipColor = tipColor
	p.hasTip = true
	p.canvas.dirty = true
	return nil
}

func (p *Painter) paint(dc *gg.Context) error {
	if !p.hasState {
		return nil
	}

	pr := p.params
	cx, cy := pr.Center.X, pr.Center.Y

	// Translucency goes through layer opacity: gg's direct path copies
	// fully-covered source pixels verbatim, so brush alpha alone would
	// not blend against what is already on the canvas.
	if pr.TrackOpacity > 0 {
		dc.PushLayer(gg.BlendNormal, pr.TrackOpacity)
		dc.SetStrokeBrush(gg.Solid(ggColor(pr.TrackColor)))
		dc.SetStroke(gg.DefaultStroke().WithWidth(pr.StrokeWidth).WithCap(gg.LineCapRound))
		dc.DrawCircle(cx, cy, pr.Radius)
		err := dc.Stroke()
		dc.PopLayer()
		if err != nil {
			return fmt.Errorf("render: track: %w", err)
		}
	}

	st := p.state
	if st.Opacity > 0 {
		// Lap rotation turns the whole arc; geometry stays in the
		// un-rotated arc frame.
		dc.PushLayer(gg.BlendNormal, st.Opacity)
		dc.Push()
		dc.RotateAbout(st.LapRotation, cx, cy)

		brush := gg.NewSweepGradientBrush(cx, cy, 0)
		for _, stop := range st.Stops {
			brush.AddColorStop(stop.Offset, ggColor(stop.Color))
		}
		dc.SetStrokeBrush(brush)
		dc.SetStroke(gg.DefaultStroke().WithWidth(pr.StrokeWidth).WithCap(gg.LineCapRound))
		dc.DrawArc(cx, cy, pr.Radius, 0, st.SweepFraction*2*math.Pi)
		err := dc.Stroke()
		dc.Pop()
		dc.PopLayer()
		if err != nil {
			return fmt.Errorf("render: arc: %w", err)
		}

		// The shadow gets its own layer: its transparent fringe would
		// overwrite arc pixels if drawn into the same one.
		dc.PushLayer(gg.BlendNormal, st.Opacity)
		dc.Push()
		dc.RotateAbout(st.LapRotation, cx, cy)

		shadow := gg.NewRadialGradientBrush(st.ShadowPoint.X, st.ShadowPoint.Y, 0, pr.StrokeWidth)
		shadow.AddColorStop(0, ggColor(pr.ShadowColor.WithAlpha(shadowAlpha)))
		shadow.AddColorStop(1, ggColor(pr.ShadowColor.WithAlpha(0)))
		dc.SetFillBrush(shadow)
		dc.DrawCircle(st.ShadowPoint.X, st.ShadowPoint.Y, pr.StrokeWidth)
		err = dc.Fill()
		dc.Pop()
		dc.PopLayer()
		if err != nil {
			return fmt.Errorf("render: shadow: %w", err)
		}
	}

	if p.hasTip && p.tip.Visible && st.Opacity > 0 {
		dc.PushLayer(gg.BlendNormal, st.Opacity)
		dc.SetFillBrush(gg.Solid(ggColor(p.tipColor)))
		dc.DrawCircle(p.tip.Position.X, p.tip.Position.Y, pr.StrokeWidth*tipRadiusFactor)
		err := dc.Fill()
		dc.PopLayer()
		if err != nil {
			return fmt.Errorf("render: tip: %w", err)
		}
	}

	return nil
}

// ggColor converts an engine color to a gg color.
func ggColor(c ring.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
