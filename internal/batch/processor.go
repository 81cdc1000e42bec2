package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/keenst/oxide-engine/internal/camera"
	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/frame"
	"github.com/keenst/oxide-engine/internal/mathutil"
	"github.com/keenst/oxide-engine/internal/raster"
	"github.com/keenst/oxide-engine/internal/snapshot"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Options   snapshot.Options

	// Output size in pixels. Frames are rendered Supersample times larger
	// and filtered down.
	Width, Height int
	Supersample   int
	Scale         float32

	// Camera origin of frame 0 and its offset per frame, in world units.
	Start mathutil.Vec2
	Pan   mathutil.Vec2

	Frames  int
	Workers int
	Refine  bool
	Scene   frame.Scene
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	File    string // relative to OutputDir
	Camera  camera.Camera
	Success bool
	Error   string
}

// FileName returns the output name of frame i.
func FileName(i int, f snapshot.Format) string {
	return fmt.Sprintf("frame_%04d.%s", i, f)
}

// CameraAt returns the output-resolution camera for frame i.
func (cfg Config) CameraAt(i int) camera.Camera {
	pos := cfg.Start.Add(cfg.Pan.Scale(float32(i)))
	return camera.Fit(cfg.Width, cfg.Height, cfg.Scale, pos.X, pos.Y)
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(cfg.Workers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk := newWorker(cfg)
			for idx := range frameChan {
				results[idx] = wk.render(idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// worker owns a buffer and frame state; nothing is shared between workers
// except the read-only scene.
type worker struct {
	cfg      Config
	ss       int
	buf      *raster.Buffer
	renderer frame.Renderer
	state    frame.FrameState
}

func newWorker(cfg Config) *worker {
	ss := max(cfg.Supersample, 1)
	return &worker{
		cfg: cfg,
		ss:  ss,
		buf: raster.NewBuffer(cfg.Width*ss, cfg.Height*ss),
		renderer: frame.Renderer{
			Scene:   cfg.Scene,
			Workers: 1,
			Refine:  cfg.Refine,
		},
	}
}

func (w *worker) render(i int) Result {
	cam := w.cfg.CameraAt(i)
	res := Result{
		Frame:  i,
		File:   FileName(i, w.cfg.Options.Format),
		Camera: cam,
	}

	// Supersampled frames see the same world window at ss times the density.
	w.state.Camera = camera.Fit(w.buf.Width, w.buf.Height, cam.Scale*float32(w.ss), cam.X, cam.Y)

	began := time.Now()
	if err := w.renderer.Render(&w.state, w.buf); err != nil {
		res.Error = err.Error()
		return res
	}
	w.state.DeltaTime = time.Since(began)

	img := snapshot.ToNRGBA(w.buf)
	if w.ss > 1 {
		img = snapshot.Downsample(img, w.cfg.Width, w.cfg.Height)
	}

	if err := snapshot.WriteFile(filepath.Join(w.cfg.OutputDir, res.File), img, w.cfg.Options); err != nil {
		diag.Logger().Error("batch: write frame", "frame", i, "err", err)
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
