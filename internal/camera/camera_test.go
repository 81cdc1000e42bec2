package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keenst/oxide-engine/internal/mathutil"
)

func TestWorldToScreen(t *testing.T) {
	cam := Camera{X: -1, Y: 0.5, Width: 8, Height: 6, Scale: 100}
	tests := []struct {
		name string
		in   mathutil.Vec2
		want mathutil.Vec2u32
	}{
		{"origin", mathutil.V2(-1, 0.5), mathutil.Vec2u32{}},
		{"inside", mathutil.V2(0, 1), mathutil.Vec2u32{X: 100, Y: 50}},
		{"fraction", mathutil.V2(-0.9951, 0.5151), mathutil.Vec2u32{X: 0, Y: 1}},
		{"left_clamps", mathutil.V2(-3, 1), mathutil.Vec2u32{X: 0, Y: 50}},
		{"above_clamps", mathutil.V2(0, -2), mathutil.Vec2u32{X: 100, Y: 0}},
		{"huge_clamps", mathutil.V2(1e30, 0.5), mathutil.Vec2u32{X: math.MaxUint32, Y: 0}},
		{"nan", mathutil.V2(float32(math.NaN()), 1), mathutil.Vec2u32{X: 0, Y: 50}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WorldToScreen(cam, tc.in))
		})
	}
}

func TestWorldToPixelSigned(t *testing.T) {
	cam := Camera{X: 0, Y: 0, Width: 4, Height: 4, Scale: 10}
	x, y := WorldToPixel(cam, mathutil.V2(-0.25, 0.25))
	assert.Equal(t, -3, x)
	assert.Equal(t, 2, y)
}

func TestRoundTrip(t *testing.T) {
	cam := Fit(640, 480, 160, -1.3, 0.7)
	px := cam.PixelSize()
	for x := cam.X; x < cam.X+cam.Width; x += 0.0371 {
		for y := cam.Y; y < cam.Y+cam.Height; y += 0.0419 {
			p := mathutil.V2(x, y)
			back := ScreenToWorld(cam, WorldToScreen(cam, p))
			require.InDelta(t, p.X, back.X, float64(px), "x at %v", p)
			require.InDelta(t, p.Y, back.Y, float64(px), "y at %v", p)
			require.LessOrEqual(t, back.X, p.X+1e-5)
			require.LessOrEqual(t, back.Y, p.Y+1e-5)
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	cam := Camera{X: 2, Y: -1, Width: 1, Height: 1, Scale: 4}
	assert.Equal(t, mathutil.V2(2.5, -0.25), ScreenToWorld(cam, mathutil.Vec2u32{X: 2, Y: 3}))
}

func TestFitAndBounds(t *testing.T) {
	cam := Fit(800, 600, 200, 1, 2)
	assert.Equal(t, mathutil.Rect{X: 1, Y: 2, Width: 4, Height: 3}, cam.Bounds())
	assert.Equal(t, float32(1), New(0, 0, 1, 1).Scale)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Fit(10, 10, 2, 0, 0).Validate())
	for _, cam := range []Camera{
		{Width: 1, Height: 1},
		{Width: 1, Height: 1, Scale: -2},
		{Width: 0, Height: 1, Scale: 1},
		{Width: 1, Height: 1, Scale: float32(math.Inf(1))},
		{X: float32(math.NaN()), Width: 1, Height: 1, Scale: 1},
	} {
		assert.ErrorIs(t, cam.Validate(), ErrInvalid, "%+v", cam)
	}
}
