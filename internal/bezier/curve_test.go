package bezier

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keenst/oxide-engine/internal/mathutil"
)

func v(x, y float32) mathutil.Vec2 { return mathutil.V2(x, y) }

var testCurves = []struct {
	name string
	p    [4]mathutil.Vec2
}{
	{"scene_s_curve", [4]mathutil.Vec2{v(0, 0.5), v(1, 0), v(1, 1.6), v(0, 2)}},
	{"s_shape", [4]mathutil.Vec2{v(0, 0), v(3, -2), v(-2, 3), v(1, 1)}},
	{"loop", [4]mathutil.Vec2{v(0, 0), v(4, 3), v(-3, 3), v(1, 0)}},
	{"straight", [4]mathutil.Vec2{v(0, 0), v(1, 1), v(2, 2), v(3, 3)}},
	{"point", [4]mathutil.Vec2{v(2, 2), v(2, 2), v(2, 2), v(2, 2)}},
	{"quadratic_like", [4]mathutil.Vec2{v(0, 0), v(1, 2), v(1, 2), v(0, 0)}},
	{"negative", [4]mathutil.Vec2{v(-5, -1), v(-7, 4), v(-1, -6), v(-2, 0.5)}},
}

func newCurve(p [4]mathutil.Vec2) *Curve {
	return New(p[0], p[1], p[2], p[3])
}

func TestBoundingBoxContainsCurve(t *testing.T) {
	const tol = 1e-4
	for _, tc := range testCurves {
		t.Run(tc.name, func(t *testing.T) {
			c := newCurve(tc.p)
			box := c.Bounds()
			grown := mathutil.Rect{X: box.X - tol, Y: box.Y - tol, Width: box.Width + 2*tol, Height: box.Height + 2*tol}
			for i := 0; i <= 1000; i++ {
				pt := c.Evaluate(float32(i) / 1000)
				require.True(t, grown.Contains(pt), "t=%v point %v outside %v", float32(i)/1000, pt, box)
			}
		})
	}
}

func TestBoundingBoxIsTight(t *testing.T) {
	const tol = 1e-3
	for _, tc := range testCurves {
		t.Run(tc.name, func(t *testing.T) {
			c := newCurve(tc.p)
			lo := v(math32.MaxFloat32, math32.MaxFloat32)
			hi := v(-math32.MaxFloat32, -math32.MaxFloat32)
			for i := 0; i <= 10000; i++ {
				pt := c.Evaluate(float32(i) / 10000)
				lo.X, lo.Y = min(lo.X, pt.X), min(lo.Y, pt.Y)
				hi.X, hi.Y = max(hi.X, pt.X), max(hi.Y, pt.Y)
			}
			box := c.Bounds()
			assert.InDelta(t, lo.X, box.X, tol)
			assert.InDelta(t, lo.Y, box.Y, tol)
			assert.InDelta(t, hi.X, box.Max().X, tol)
			assert.InDelta(t, hi.Y, box.Max().Y, tol)
		})
	}
}

func TestBoundingBoxSCurve(t *testing.T) {
	c := New(v(0, 0.5), v(1, 0), v(1, 1.6), v(0, 2))
	box := c.Bounds()
	assert.InDelta(t, 0, box.X, 1e-6)
	assert.InDelta(t, 0.75, box.Width, 1e-5) // x extremum at t=0.5
	assert.Less(t, box.Y, float32(0.5))     // dips above the start point
	assert.InDelta(t, 2, box.Max().Y, 1e-5)
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float32
		want    []float32
	}{
		{"two_roots", 1, -3, 2, []float32{2, 1}},
		{"linear", 0, -6, 3, []float32{0.5}},
		{"near_linear", 1e-7, 2, -1, []float32{0.5}},
		{"constant", 0, 0, 3, nil},
		{"near_constant", 1e-7, 1e-7, 3, nil},
		{"complex", 1, 0, 1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roots, n := solveQuadratic(tc.a, tc.b, tc.c)
			require.Equal(t, len(tc.want), n)
			for i, r := range tc.want {
				assert.InDelta(t, r, roots[i], 1e-6)
			}
		})
	}
}

func TestBoundingBoxDegenerateIsFinite(t *testing.T) {
	for _, tc := range testCurves {
		box := newCurve(tc.p).Bounds()
		assert.True(t, box.Min().IsFinite() && box.Max().IsFinite(), tc.name)
	}
}

func TestEvaluateEndpoints(t *testing.T) {
	c := New(v(0, 0.5), v(1, 0), v(1, 1.6), v(0, 2))
	assert.Equal(t, v(0, 0.5), c.Evaluate(0))
	assert.Equal(t, v(0, 2), c.Evaluate(1))
}

func TestDerivatives(t *testing.T) {
	const h = 1e-2
	c := New(v(0, 0), v(3, -2), v(-2, 3), v(1, 1))
	for _, tt := range []float32{0.1, 0.35, 0.5, 0.8} {
		fd := c.Evaluate(tt + h).Sub(c.Evaluate(tt - h)).Scale(1 / (2 * h))
		d := c.Derivative(tt)
		assert.InDelta(t, fd.X, d.X, 1e-2, "t=%v", tt)
		assert.InDelta(t, fd.Y, d.Y, 1e-2, "t=%v", tt)

		fd2 := c.Derivative(tt + h).Sub(c.Derivative(tt - h)).Scale(1 / (2 * h))
		d2 := c.SecondDerivative(tt)
		assert.InDelta(t, fd2.X, d2.X, 1e-2, "t=%v", tt)
		assert.InDelta(t, fd2.Y, d2.Y, 1e-2, "t=%v", tt)
	}
	// endpoint tangent is 3(P1-P0)
	assert.Equal(t, v(9, -6), c.Derivative(0))
}

func TestModify(t *testing.T) {
	c := New(v(0, 0), v(1, 1), v(2, 2), v(3, 3))
	require.NoError(t, c.Modify(3, v(3, 10)))
	assert.Equal(t, v(3, 10), c.Point(3))
	assert.Equal(t, c.BoundingBox(), c.Bounds())
	assert.InDelta(t, 10, c.Bounds().Max().Y, 1e-5)
}

func TestModifyInvalidIndex(t *testing.T) {
	c := New(v(0, 0), v(1, 1), v(2, 2), v(3, 3))
	before := *c
	for _, i := range []int{-1, 4, 255} {
		err := c.Modify(i, v(100, 100))
		assert.ErrorIs(t, err, ErrPointIndex)
	}
	assert.Equal(t, before, *c)
}
