// Package snapshot converts frame buffers to images and writes them to disk.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"github.com/keenst/oxide-engine/internal/raster"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("snapshot: unknown format")

// Format names an output encoding. Its value is also the file extension.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	PNG  Format = "png"
	JPEG Format = "jpg"
)

// Formats lists the supported formats.
var Formats = []Format{WebP, TGA, BMP, PNG, JPEG}

// ParseFormat maps a format name or extension to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	if s == "jpeg" {
		return JPEG, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Options control encoding.
type Options struct {
	Format Format

	// Quality is used by JPEG only; the other encoders are lossless.
	Quality int
}

// ToNRGBA copies buf into a new opaque image. Buffer alpha is ignored, the
// way a window surface shows it.
func ToNRGBA(buf *raster.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	FillRGBA(img.Pix, buf)
	return img
}

// FillRGBA writes buf to dst as tightly packed opaque RGBA rows. dst must
// hold Width*Height*4 bytes. Opaque pixels are the same premultiplied or
// not, so dst suits either kind of surface.
func FillRGBA(dst []byte, buf *raster.Buffer) {
	rowBytes := buf.Width * 4
	for y := 0; y < buf.Height; y++ {
		src := buf.Pix[buf.PixOffset(0, y):]
		row := dst[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < buf.Width; x++ {
			s, d := x*raster.BytesPerPixel, x*4
			row[d] = src[s+2]
			row[d+1] = src[s+1]
			row[d+2] = src[s]
			row[d+3] = 0xFF
		}
	}
}

// Encode writes img to w.
func Encode(w io.Writer, img image.Image, opts Options) error {
	var err error
	switch opts.Format {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		q := opts.Quality
		if q <= 0 || q > 100 {
			q = jpeg.DefaultQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		return fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("snapshot: %s encode: %w", opts.Format, err)
	}
	return nil
}

// WriteFile encodes img to path, creating parent directories.
func WriteFile(path string, img image.Image, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
