package ring

// Surface is the drawing capability a ring pipeline renders onto. The
// engine never rasterizes anything itself; it hands immutable snapshots to
// a Surface and lets the host decide how to paint them.
//
// DrawRing is called only when the throttle accepts a new state. MoveTip is
// called every frame with the raw driver value's marker pose, so a Surface
// should keep it cheap (reposition an icon, not repaint the ring).
//
// Implementations must be able to stroke a circular arc with round caps and
// a positional color ramp, rotate it by a whole-arc angle, draw a soft
// shadow blob at a point, and place a marker at a point. The render
// subpackage provides a reference implementation on github.com/gogpu/gg.
type Surface interface {
	DrawRing(p Params, state VisualState) error
	MoveTip(p Params, tip TipMarker, tipColor RGBA) error
}
