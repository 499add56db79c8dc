// Command ringdemo shows an animated three-ring gauge driven at display
// rate. Space animates the rings toward new random targets; rings can lap
// past 100% to show the overflow rotation.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/render"
)

const (
	screenSize = 480

	outerRadius = 170
	strokeWidth = 26
	ringSpacing = 10
)

var ringColors = []ring.RGBA{
	ring.Hex("#FF2D55"),
	ring.Hex("#A8E515"),
	ring.Hex("#1EC8B6"),
}

type game struct {
	canvas *render.Canvas
	gauge  *ring.Gauge
	frame  *ebiten.Image
}

func newGame() *game {
	dc := gg.NewContext(screenSize, screenSize)
	canvas := render.NewCanvas(dc, gg.RGBA{R: 0.07, G: 0.07, B: 0.09, A: 1})

	painters := make([]ring.Surface, len(ringColors))
	for i := range painters {
		painters[i] = canvas.NewPainter()
	}

	gauge := ring.NewGaugeOnSurfaces(painters, ring.GaugeConfig{
		Center:       ring.Pt(screenSize/2, screenSize/2),
		OuterRadius:  outerRadius,
		StrokeWidth:  strokeWidth,
		Spacing:      ringSpacing,
		DelayPerRing: 120 * time.Millisecond,
	}, ringColors)

	g := &game{canvas: canvas, gauge: gauge}
	g.randomize(time.Now())
	return g
}

func (g *game) randomize(now time.Time) {
	for i := range g.gauge.Len() {
		g.gauge.SetProgress(i, rand.Float64()*1.8, now)
	}
}

func (g *game) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.randomize(now)
	}

	if err := g.gauge.Advance(now); err != nil {
		return err
	}

	if g.canvas.Dirty() {
		if err := g.canvas.Paint(); err != nil {
			return err
		}
		g.frame = ebiten.NewImageFromImage(g.canvas.Context().Image())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenSize, screenSize
}

func main() {
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("ring gauge demo (space = new targets)")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatalf("ringdemo: %v", err)
	}
}
