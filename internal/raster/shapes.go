package raster

import (
	"github.com/keenst/oxide-engine/internal/bezier"
	"github.com/keenst/oxide-engine/internal/camera"
	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/mathutil"
)

// DrawRectangle fills the world-space rectangle rect with c, clipped to the
// buffer. Every pixel goes through DrawPixel, so translucent colors blend.
func (r *Rasterizer) DrawRectangle(cam camera.Camera, rect mathutil.Rect, c uint32) {
	b := r.Buf
	if b.empty() {
		return
	}
	tl := camera.WorldToScreen(cam, rect.Min())
	br := camera.WorldToScreen(cam, rect.Max())
	x1 := min(br.X, uint32(b.Width))
	y1 := min(br.Y, uint32(b.Height))

	for y := tl.Y; y < y1; y++ {
		for x := tl.X; x < x1; x++ {
			r.DrawPixel(x, y, c)
		}
	}
}

// DrawBoundingBoxes overlays the cached bounding box of every curve that
// intersects the camera's view, using BoxColor.
func (r *Rasterizer) DrawBoundingBoxes(cam camera.Camera, curves []*bezier.Curve) {
	view := cam.Bounds()
	for i, c := range curves {
		box := c.Bounds()
		if !box.Intersects(view) {
			diag.Logger().Debug("raster: culled bounding box", "curve", i)
			continue
		}
		r.DrawRectangle(cam, box, r.BoxColor)
	}
}

// DrawCircle draws a filled circle with a one-pixel antialiased rim.
//
// The circle is drawn only if its whole body, the square of side 2r+1 around
// the projected center, fits in the buffer; otherwise nothing is drawn.
// Pixels within r of the center get c. Pixels between r and r+1 get c with
// its alpha scaled by the remaining coverage.
func (r *Rasterizer) DrawCircle(cam camera.Camera, center mathutil.Vec2, radius float32, c uint32) {
	b := r.Buf
	cx, cy := camera.WorldToPixel(cam, center)
	sr := int(radius * cam.Scale)
	if sr < 0 || cx-sr < 0 || cy-sr < 0 || cx+sr >= b.Width || cy+sr >= b.Height {
		diag.Logger().Debug("raster: circle not fully on screen", "x", cx, "y", cy, "r", sr)
		return
	}

	rf := float32(sr)
	alpha := float32(c >> 24)
	mid := mathutil.Vec2u32{X: uint32(cx), Y: uint32(cy)}
	x0, x1 := max(cx-sr-1, 0), min(cx+sr+1, b.Width-1)
	y0, y1 := max(cy-sr-1, 0), min(cy+sr+1, b.Height-1)

	r.forRows(y0, y1+1, func(y int) {
		for x := x0; x <= x1; x++ {
			p := mathutil.Vec2u32{X: uint32(x), Y: uint32(y)}
			d := mid.Dist(p)
			switch {
			case d <= rf:
				r.DrawPixel(p.X, p.Y, c)
			case d <= rf+1:
				if a := uint32(alpha * (1 - (d - rf))); a > 0 {
					r.DrawPixel(p.X, p.Y, withAlpha(c, a))
				}
			}
		}
	})
}
