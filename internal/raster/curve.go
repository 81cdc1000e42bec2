package raster

import (
	"github.com/chewxy/math32"

	"github.com/keenst/oxide-engine/internal/bezier"
	"github.com/keenst/oxide-engine/internal/camera"
	"github.com/keenst/oxide-engine/internal/mathutil"
)

// DrawBezierCurve strokes curve with half-width radius (world units) in
// CurveColor.
//
// The curve is treated as a distance field: every pixel near the curve's
// bounding box is mapped back to world space and painted when its distance
// to the curve is at most radius. The box is grown by the stroke radius in
// pixels plus two, so every painted pixel is inside it. The cost is
// DistanceSamples curve evaluations per pixel of the grown box.
func (r *Rasterizer) DrawBezierCurve(cam camera.Camera, curve *bezier.Curve, radius float32) {
	b := r.Buf
	if b.empty() || radius < 0 {
		return
	}

	screenRadius := radius * cam.Scale
	pad := mathutil.Splat(uint32(math32.Ceil(screenRadius)) + 2)
	last := mathutil.Vec2u32{X: uint32(b.Width - 1), Y: uint32(b.Height - 1)}

	box := curve.Bounds()
	reach := mathutil.Rect{X: box.X - radius, Y: box.Y - radius, Width: box.Width + 2*radius, Height: box.Height + 2*radius}
	if !reach.Intersects(cam.Bounds()) {
		return
	}
	tl := camera.WorldToScreen(cam, box.Min()).Sub(pad)
	br := camera.WorldToScreen(cam, box.Max()).Min(last).Add(pad).Min(last)
	if tl.X > br.X || tl.Y > br.Y {
		return
	}

	dist := curve.MinDistance
	if r.Refine {
		dist = curve.MinDistanceRefined
	}

	r.forRows(int(tl.Y), int(br.Y)+1, func(y int) {
		for x := tl.X; x <= br.X; x++ {
			px := mathutil.Vec2u32{X: x, Y: uint32(y)}
			world := camera.ScreenToWorld(cam, px)
			if dist(world)*cam.Scale <= screenRadius {
				r.DrawPixel(px.X, px.Y, r.CurveColor)
			}
		}
	})
}
