// Package raster draws grids, rectangles, circles and Bézier strokes into a
// packed 32-bit pixel buffer.
package raster

// Default colors, 0xAARRGGBB.
const (
	DefaultGridColor  = 0xFF444444
	DefaultBoxColor   = 0x3300DDAA
	DefaultCurveColor = 0xFFFFFFFF
)

// Rasterizer draws into Buf. Set the exported fields before drawing; they
// may be changed between calls.
//
// A Rasterizer is not safe for concurrent use. Internally, DrawCircle and
// DrawBezierCurve may split their rows across Workers goroutines.
type Rasterizer struct {
	// Buf is the target. It must pass Buffer.Validate.
	Buf *Buffer

	// Workers is the number of goroutines for per-pixel loops.
	// Values below 2 draw on the calling goroutine.
	Workers int

	// GridColor is used by DrawUnitGrid.
	GridColor uint32

	// BoxColor is used by DrawBoundingBoxes.
	BoxColor uint32

	// CurveColor is used by DrawBezierCurve.
	CurveColor uint32

	// Refine switches DrawBezierCurve from the sampled distance estimate to
	// the Newton-refined one.
	Refine bool
}

// NewRasterizer returns a single-threaded Rasterizer for buf with the
// default colors.
func NewRasterizer(buf *Buffer) *Rasterizer {
	return &Rasterizer{
		Buf:        buf,
		Workers:    1,
		GridColor:  DefaultGridColor,
		BoxColor:   DefaultBoxColor,
		CurveColor: DefaultCurveColor,
	}
}
