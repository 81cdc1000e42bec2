package mathutil

import "github.com/chewxy/math32"

// Vec2u32 is a pixel coordinate in screen space.
// Subtraction saturates at zero, so offsets near the buffer's top-left
// edge never wrap around.
type Vec2u32 struct {
	X, Y uint32
}

// Splat returns a Vec2u32 with both components set to v.
func Splat(v uint32) Vec2u32 {
	return Vec2u32{X: v, Y: v}
}

// Add returns the component-wise sum a + b.
func (a Vec2u32) Add(b Vec2u32) Vec2u32 {
	return Vec2u32{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b, clamped to zero per component.
func (a Vec2u32) Sub(b Vec2u32) Vec2u32 {
	return Vec2u32{subSat(a.X, b.X), subSat(a.Y, b.Y)}
}

// Min returns the component-wise minimum of a and b.
func (a Vec2u32) Min(b Vec2u32) Vec2u32 {
	return Vec2u32{min(a.X, b.X), min(a.Y, b.Y)}
}

// Dist returns the Euclidean distance between two pixel coordinates.
func (a Vec2u32) Dist(b Vec2u32) float32 {
	dx := float32(a.X) - float32(b.X)
	dy := float32(a.Y) - float32(b.Y)
	return math32.Sqrt(dx*dx + dy*dy)
}

func subSat(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}
