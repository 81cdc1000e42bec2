// Package bezier implements cubic Bézier curves with a cached tight
// bounding box and point-to-curve distance queries.
package bezier

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/mathutil"
)

// ErrPointIndex is returned by Modify for indices outside 0..3.
var ErrPointIndex = errors.New("bezier: invalid control point index")

// Curve is a cubic Bézier given by four control points.
//
// The bounding box is cached. The control points are only reachable
// through New and Modify, which both recompute it, so Bounds always
// matches the current points.
type Curve struct {
	p      [4]mathutil.Vec2
	bounds mathutil.Rect
}

// New returns the curve with control points p0..p3.
func New(p0, p1, p2, p3 mathutil.Vec2) *Curve {
	c := &Curve{p: [4]mathutil.Vec2{p0, p1, p2, p3}}
	c.bounds = c.BoundingBox()
	return c
}

// Point returns control point i. It panics if i is outside 0..3.
func (c *Curve) Point(i int) mathutil.Vec2 {
	return c.p[i]
}

// Points returns all four control points.
func (c *Curve) Points() [4]mathutil.Vec2 {
	return c.p
}

// Bounds returns the cached tight bounding box in world space.
func (c *Curve) Bounds() mathutil.Rect {
	return c.bounds
}

// Modify moves control point i to pos and recomputes the bounding box.
// An index outside 0..3 is logged and leaves the curve unchanged.
func (c *Curve) Modify(i int, pos mathutil.Vec2) error {
	if i < 0 || i >= len(c.p) {
		diag.Logger().Warn("bezier: ignoring point update", "index", i)
		return fmt.Errorf("%w: %d", ErrPointIndex, i)
	}
	c.p[i] = pos
	c.bounds = c.BoundingBox()
	return nil
}

// Evaluate returns B(t). Any real t is accepted; values outside [0, 1]
// extrapolate the polynomial.
func (c *Curve) Evaluate(t float32) mathutil.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c.p[0].Scale(omt2 * omt).
		Add(c.p[1].Scale(3 * omt2 * t)).
		Add(c.p[2].Scale(3 * omt * t2)).
		Add(c.p[3].Scale(t2 * t))
}

// Derivative returns B'(t).
func (c *Curve) Derivative(t float32) mathutil.Vec2 {
	// B'(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
	omt := 1 - t
	return c.p[1].Sub(c.p[0]).Scale(3 * omt * omt).
		Add(c.p[2].Sub(c.p[1]).Scale(6 * omt * t)).
		Add(c.p[3].Sub(c.p[2]).Scale(3 * t * t))
}

// SecondDerivative returns B''(t).
func (c *Curve) SecondDerivative(t float32) mathutil.Vec2 {
	// B''(t) = 6(1-t)(P2 - 2P1 + P0) + 6t(P3 - 2P2 + P1)
	d1 := c.p[2].Sub(c.p[1].Scale(2)).Add(c.p[0])
	d2 := c.p[3].Sub(c.p[2].Scale(2)).Add(c.p[1])
	return d1.Scale(6 * (1 - t)).Add(d2.Scale(6 * t))
}

// BoundingBox computes the tight axis-aligned bounds of the curve over
// t in [0, 1] from the endpoints and the interior roots of B'.
func (c *Curve) BoundingBox() mathutil.Rect {
	var buf [6]mathutil.Vec2
	pts := append(buf[:0], c.Evaluate(0), c.Evaluate(1))

	xs, nx := derivativeRoots(c.p[0].X, c.p[1].X, c.p[2].X, c.p[3].X)
	ys, ny := derivativeRoots(c.p[0].Y, c.p[1].Y, c.p[2].Y, c.p[3].Y)
	for _, t := range xs[:nx] {
		if t > 0 && t < 1 {
			pts = append(pts, c.Evaluate(t))
		}
	}
	for _, t := range ys[:ny] {
		if t > 0 && t < 1 {
			pts = append(pts, c.Evaluate(t))
		}
	}
	return mathutil.RectFromPoints(pts)
}

// derivativeRoots returns the real roots of one coordinate of B'(t).
func derivativeRoots(p0, p1, p2, p3 float32) ([2]float32, int) {
	a := -3*p0 + 9*p1 - 9*p2 + 3*p3
	b := 6*p0 - 12*p1 + 6*p2
	cc := -3*p0 + 3*p1
	return solveQuadratic(a, b, cc)
}

// degenerateEpsilon is the magnitude below which a polynomial coefficient
// is treated as zero.
const degenerateEpsilon = 1e-6

// solveQuadratic returns the real roots of a t² + b t + c = 0.
//
// For |a| below degenerateEpsilon the equation is solved as linear; if b
// is negligible as well there is no root.
func solveQuadratic(a, b, c float32) ([2]float32, int) {
	if math32.Abs(a) < degenerateEpsilon {
		if math32.Abs(b) < degenerateEpsilon {
			return [2]float32{}, 0
		}
		return [2]float32{-c / b}, 1
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return [2]float32{}, 0
	}
	sq := math32.Sqrt(disc)
	return [2]float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}, 2
}
