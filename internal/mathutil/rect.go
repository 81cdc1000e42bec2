package mathutil

// Rect is an axis-aligned rectangle given by its origin and extent.
// Whether it lives in world or screen space depends on the caller.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.Width, r.Y + r.Height}
}

// Min returns the origin corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Intersects reports whether r and o overlap or touch on both axes.
//
// It is used as a cull test before per-pixel work, so it errs on the side
// of true: rectangles that share only an edge or a corner count as
// intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// RectFromPoints returns the smallest rectangle containing pts.
// It returns the zero Rect for an empty slice.
func RectFromPoints(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}
