package raster

// Clear sets every pixel to c. Row padding is left alone.
func (r *Rasterizer) Clear(c uint32) {
	b := r.Buf
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Set(x, y, c)
		}
	}
}

// DrawPixel composites c onto pixel (x, y).
//
// The caller guarantees x < Width and y < Height. An opaque c replaces
// the pixel. Otherwise the RGB channels move from the old value towards c
// by c's alpha, and the old alpha byte is kept.
func (r *Rasterizer) DrawPixel(x, y uint32, c uint32) {
	b := r.Buf
	xi, yi := int(x), int(y)
	switch a := c >> 24; a {
	case 0xFF:
		b.Set(xi, yi, c)
	case 0:
		// fully transparent
	default:
		b.Set(xi, yi, blend(b.At(xi, yi), c, float32(a)/255))
	}
}

// blend interpolates the RGB channels of dst towards src by t and keeps
// dst's alpha.
func blend(dst, src uint32, t float32) uint32 {
	red := lerp8(uint8(dst>>16), uint8(src>>16), t)
	green := lerp8(uint8(dst>>8), uint8(src>>8), t)
	blue := lerp8(uint8(dst), uint8(src), t)
	return dst&0xFF000000 | uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)))
}

// withAlpha replaces the alpha byte of c.
func withAlpha(c uint32, a uint32) uint32 {
	return c&0x00FFFFFF | a<<24
}
