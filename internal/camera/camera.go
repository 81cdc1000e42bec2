// Package camera maps between continuous world space and discrete screen
// pixels for a viewport defined by an origin, a visible extent and a
// uniform scale.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/keenst/oxide-engine/internal/mathutil"
)

// ErrInvalid is returned by Validate for cameras that cannot be rendered.
var ErrInvalid = errors.New("camera: invalid")

// Camera is the viewport for one frame.
//
// (X, Y) is the world point drawn at the screen origin (top-left).
// Width and Height give the visible world extent, and Scale converts world
// units to pixels.
type Camera struct {
	X, Y          float32
	Width, Height float32
	Scale         float32
}

// New returns a camera at (x, y) showing a width×height world region at
// unit scale.
func New(x, y, width, height float32) Camera {
	return Camera{X: x, Y: y, Width: width, Height: height, Scale: 1}
}

// Fit returns a camera at (x, y) whose visible extent exactly covers a
// pixelW×pixelH screen at the given scale.
func Fit(pixelW, pixelH int, scale, x, y float32) Camera {
	return Camera{
		X:      x,
		Y:      y,
		Width:  float32(pixelW) / scale,
		Height: float32(pixelH) / scale,
		Scale:  scale,
	}
}

// Validate checks that the scale and extents are positive and finite.
func (c Camera) Validate() error {
	if !(c.Scale > 0) || math32.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale %v", ErrInvalid, c.Scale)
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: extent %vx%v", ErrInvalid, c.Width, c.Height)
	}
	if !c.Position().IsFinite() {
		return fmt.Errorf("%w: position (%v, %v)", ErrInvalid, c.X, c.Y)
	}
	return nil
}

// Position returns the world point mapped to the screen origin.
func (c Camera) Position() mathutil.Vec2 {
	return mathutil.Vec2{X: c.X, Y: c.Y}
}

// Bounds returns the visible world region.
func (c Camera) Bounds() mathutil.Rect {
	return mathutil.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// WorldToScreen maps a world point to the pixel containing it.
//
// Coordinates left of or above the screen origin clamp to 0, and NaN maps
// to 0. Values too large for a uint32 clamp to math.MaxUint32. Use
// WorldToPixel when the sign matters.
func WorldToScreen(c Camera, p mathutil.Vec2) mathutil.Vec2u32 {
	return mathutil.Vec2u32{
		X: clampU32(math32.Floor((p.X - c.X) * c.Scale)),
		Y: clampU32(math32.Floor((p.Y - c.Y) * c.Scale)),
	}
}

// WorldToPixel is WorldToScreen without clamping. Points off the top or
// left edge give negative coordinates.
func WorldToPixel(c Camera, p mathutil.Vec2) (x, y int) {
	return int(math32.Floor((p.X - c.X) * c.Scale)), int(math32.Floor((p.Y - c.Y) * c.Scale))
}

// ScreenToWorld maps the top-left corner of a pixel back to world space.
func ScreenToWorld(c Camera, px mathutil.Vec2u32) mathutil.Vec2 {
	return mathutil.Vec2{
		X: float32(px.X)/c.Scale + c.X,
		Y: float32(px.Y)/c.Scale + c.Y,
	}
}

// PixelSize returns the world-space size of one screen pixel.
func (c Camera) PixelSize() float32 {
	return 1 / c.Scale
}

// twoPow32 is the first float32 that does not fit in a uint32.
const twoPow32 = float32(1 << 32)

func clampU32(v float32) uint32 {
	switch {
	case !(v > 0): // negative, zero or NaN
		return 0
	case v >= twoPow32:
		return math.MaxUint32
	}
	return uint32(v)
}
