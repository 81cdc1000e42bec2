package mathutil

import "github.com/chewxy/math32"

// Vec2 is a continuous 2D point or direction in world space (value type).
type Vec2 struct {
	X, Y float32
}

// V2 returns Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between a and b.
func (a Vec2) Dist(b Vec2) float32 {
	return a.Sub(b).Len()
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0)
}
