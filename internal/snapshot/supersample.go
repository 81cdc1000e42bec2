package snapshot

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks img to width x height with premultiplied-alpha-aware
// CatmullRom filtering. Images already within the target are returned as is.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		a := float64(dst.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			out.Pix[i] = clamp8(float64(dst.Pix[i]) * inv)
			out.Pix[i+1] = clamp8(float64(dst.Pix[i+1]) * inv)
			out.Pix[i+2] = clamp8(float64(dst.Pix[i+2]) * inv)
		}
		out.Pix[i+3] = dst.Pix[i+3]
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
