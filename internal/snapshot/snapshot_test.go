package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/keenst/oxide-engine/internal/raster"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(60 * y), B: 0x7F, A: 0xFF})
		}
	}
	return img
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			require.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga}, "pixel (%d, %d)", x, y)
		}
	}
}

func TestToNRGBAChannelOrder(t *testing.T) {
	buf := &raster.Buffer{
		Pix:           make([]byte, 3*(2*4+4)),
		Width:         2,
		Height:        3,
		Stride:        2*4 + 4,
		BytesPerPixel: raster.BytesPerPixel,
	}
	buf.Set(0, 0, 0x80112233)
	buf.Set(1, 2, 0x00FFEEDD)

	img := ToNRGBA(buf)
	require.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xEE, B: 0xDD, A: 0xFF}, img.NRGBAAt(1, 2))
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.NRGBAAt(1, 0))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"webp", WebP},
		{"TGA", TGA},
		{".bmp", BMP},
		{"png", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEncodeLossless(t *testing.T) {
	img := testImage()
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		TGA: func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
	}
	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Encode(&out, img, Options{Format: f}))
			got, err := decode(bytes.NewReader(out.Bytes()))
			require.NoError(t, err)
			assertSamePixels(t, img, got)
		})
	}
}

func TestEncodeWebP(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Encode(&out, testImage(), Options{Format: WebP}))
	data := out.Bytes()
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestEncodeJPEG(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Encode(&out, testImage(), Options{Format: JPEG, Quality: 75}))
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
}

func TestEncodeUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := Encode(&out, testImage(), Options{Format: "gif"})
	assert.ErrorIs(t, err, ErrFormat)
	assert.Zero(t, out.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "frame.png")
	require.NoError(t, WriteFile(path, testImage(), Options{Format: PNG}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assertSamePixels(t, testImage(), got)
}

func TestDownsample(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 200, 100, 50, 255
	}

	got := Downsample(img, 4, 3)
	require.Equal(t, image.Rect(0, 0, 4, 3), got.Bounds())
	for i := 0; i < len(got.Pix); i += 4 {
		assert.InDelta(t, 200, got.Pix[i], 1)
		assert.InDelta(t, 100, got.Pix[i+1], 1)
		assert.InDelta(t, 50, got.Pix[i+2], 1)
		assert.InDelta(t, 255, got.Pix[i+3], 1)
	}

	assert.Same(t, img, Downsample(img, 8, 6))
}

func TestFillRGBA(t *testing.T) {
	buf := raster.NewBuffer(2, 1)
	buf.Set(0, 0, 0xFF0A0B0C)
	buf.Set(1, 0, 0x00010203)

	dst := make([]byte, 8)
	FillRGBA(dst, buf)
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C, 0xFF, 0x01, 0x02, 0x03, 0xFF}, dst)
}
