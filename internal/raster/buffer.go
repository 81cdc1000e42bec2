package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BytesPerPixel is the size of one packed 0xAARRGGBB pixel.
const BytesPerPixel = 4

// ErrBadBuffer is returned by Validate for inconsistent buffer descriptors.
var ErrBadBuffer = errors.New("raster: bad buffer")

// Buffer describes a host-owned pixel buffer.
//
// Each pixel is a little-endian uint32 laid out as 0xAARRGGBB, so the bytes
// in memory are B, G, R, A. Rows start Stride bytes apart; Stride may be
// larger than Width*BytesPerPixel and the padding is never written.
type Buffer struct {
	Pix           []byte
	Width         int
	Height        int
	Stride        int // bytes per row
	BytesPerPixel int
}

// NewBuffer allocates a zeroed, tightly packed width×height buffer.
// The rasterizer itself never allocates pixel memory; this is for hosts
// and tests.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:           make([]byte, width*height*BytesPerPixel),
		Width:         width,
		Height:        height,
		Stride:        width * BytesPerPixel,
		BytesPerPixel: BytesPerPixel,
	}
}

// Validate checks the descriptor against the backing slice.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil", ErrBadBuffer)
	}
	if b.BytesPerPixel != BytesPerPixel {
		return fmt.Errorf("%w: %d bytes per pixel, want %d", ErrBadBuffer, b.BytesPerPixel, BytesPerPixel)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadBuffer, b.Width, b.Height)
	}
	if b.Stride < b.Width*BytesPerPixel {
		return fmt.Errorf("%w: stride %d < %d", ErrBadBuffer, b.Stride, b.Width*BytesPerPixel)
	}
	if b.Width == 0 || b.Height == 0 {
		return nil
	}
	if need := (b.Height-1)*b.Stride + b.Width*BytesPerPixel; len(b.Pix) < need {
		return fmt.Errorf("%w: %d bytes, need %d", ErrBadBuffer, len(b.Pix), need)
	}
	return nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// At returns the packed color at (x, y).
func (b *Buffer) At(x, y int) uint32 {
	i := b.PixOffset(x, y)
	return binary.LittleEndian.Uint32(b.Pix[i : i+4])
}

// Set stores a packed color at (x, y) without blending.
func (b *Buffer) Set(x, y int, c uint32) {
	i := b.PixOffset(x, y)
	binary.LittleEndian.PutUint32(b.Pix[i:i+4], c)
}

// empty reports whether there is no pixel to draw into.
func (b *Buffer) empty() bool {
	return b.Width <= 0 || b.Height <= 0
}
