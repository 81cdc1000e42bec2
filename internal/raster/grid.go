package raster

import (
	"github.com/chewxy/math32"

	"github.com/keenst/oxide-engine/internal/camera"
)

// DrawUnitGrid draws a one-pixel line at every integer world x and y inside
// the camera's extent. Lines that would land outside the buffer, such as
// the one exactly at the far edge, are skipped.
func (r *Rasterizer) DrawUnitGrid(cam camera.Camera) {
	b := r.Buf
	if b.empty() {
		return
	}

	// horizontal lines
	for k := int(math32.Ceil(cam.Y)); float32(k) <= cam.Y+cam.Height; k++ {
		row := int(math32.Floor((float32(k) - cam.Y) * cam.Scale))
		if row < 0 {
			continue
		}
		if row >= b.Height {
			break
		}
		for x := 0; x < b.Width; x++ {
			r.DrawPixel(uint32(x), uint32(row), r.GridColor)
		}
	}

	// vertical lines
	for k := int(math32.Ceil(cam.X)); float32(k) <= cam.X+cam.Width; k++ {
		col := int(math32.Floor((float32(k) - cam.X) * cam.Scale))
		if col < 0 {
			continue
		}
		if col >= b.Width {
			break
		}
		for y := 0; y < b.Height; y++ {
			r.DrawPixel(uint32(col), uint32(y), r.GridColor)
		}
	}
}
