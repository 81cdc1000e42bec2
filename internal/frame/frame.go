// Package frame assembles a scene and renders it into a host-owned buffer
// once per frame.
package frame

import (
	"fmt"
	"time"

	"github.com/keenst/oxide-engine/internal/bezier"
	"github.com/keenst/oxide-engine/internal/camera"
	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/mathutil"
	"github.com/keenst/oxide-engine/internal/raster"
)

// DiagnosticsInterval is the minimum time between two frame-time reports.
const DiagnosticsInterval = time.Second

// FrameState is the per-frame bookkeeping shared between the host and Render.
type FrameState struct {
	// DeltaTime is the duration of the previous frame, set by the host.
	DeltaTime time.Duration

	// Camera is the viewport for this frame.
	Camera camera.Camera

	// LastPerfPrint is when frame time was last reported; zero before the
	// first report. Render updates it.
	LastPerfPrint time.Time
}

// Marker is a filled circle in world space.
type Marker struct {
	Center mathutil.Vec2
	Radius float32
	Color  uint32
}

// Scene is the geometry drawn each frame.
type Scene struct {
	Curves        []*bezier.Curve
	Markers       []Marker
	StrokeRadius  float32 // world units
	Grid          bool
	BoundingBoxes bool
}

// DefaultScene returns a single S-shaped curve, a red marker at the world
// origin, the unit grid and the bounding-box overlay.
func DefaultScene() Scene {
	return Scene{
		Curves: []*bezier.Curve{
			bezier.New(mathutil.V2(0, 0.5), mathutil.V2(1, 0), mathutil.V2(1, 1.6), mathutil.V2(0, 2)),
		},
		Markers: []Marker{
			{Center: mathutil.V2(0, 0), Radius: 0.05, Color: 0xFFFF0000},
		},
		StrokeRadius:  0.02,
		Grid:          true,
		BoundingBoxes: true,
	}
}

// Renderer draws Scene. The zero value draws an empty scene on a black
// background.
type Renderer struct {
	Scene Scene

	// Background is the clear color.
	Background uint32

	// Workers and Refine are passed on to the rasterizer.
	Workers int
	Refine  bool

	// Now returns the current time for diagnostics; nil means time.Now.
	Now func() time.Time
}

// Render repaints buf for the camera in state and reports frame time at
// most once per DiagnosticsInterval.
//
// It fails only if buf or the camera is invalid, in which case buf is not
// touched.
func (r *Renderer) Render(state *FrameState, buf *raster.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	cam := state.Camera
	if err := cam.Validate(); err != nil {
		return fmt.Errorf("frame: %w", err)
	}

	rast := raster.NewRasterizer(buf)
	rast.Workers = r.Workers
	rast.Refine = r.Refine

	rast.Clear(r.Background)
	if r.Scene.Grid {
		rast.DrawUnitGrid(cam)
	}
	for _, m := range r.Scene.Markers {
		rast.DrawCircle(cam, m.Center, m.Radius, m.Color)
	}
	if r.Scene.BoundingBoxes {
		rast.DrawBoundingBoxes(cam, r.Scene.Curves)
	}
	for _, c := range r.Scene.Curves {
		rast.DrawBezierCurve(cam, c, r.Scene.StrokeRadius)
	}

	r.reportFrameTime(state)
	return nil
}

func (r *Renderer) reportFrameTime(state *FrameState) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	t := now()
	if !state.LastPerfPrint.IsZero() && t.Sub(state.LastPerfPrint) < DiagnosticsInterval {
		return
	}
	var fps float64
	if state.DeltaTime > 0 {
		fps = 1 / state.DeltaTime.Seconds()
	}
	diag.Logger().Info("frame", "frame_time", state.DeltaTime, "fps", fps)
	state.LastPerfPrint = t
}
