//go:build !tinygo

// Command viewer shows the default scene in a desktop window. Arrow keys
// pan, the mouse wheel zooms, G and B toggle the grid and bounding boxes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/keenst/oxide-engine/internal/camera"
	"github.com/keenst/oxide-engine/internal/config"
	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/frame"
	"github.com/keenst/oxide-engine/internal/raster"
	"github.com/keenst/oxide-engine/internal/snapshot"
)

const (
	panSpeed  = 1.5 // world units per second
	zoomStep  = 1.1
	tickRate  = 60
	minScale  = 4
	maxScale  = 20000
	titleBase = "oxide"
)

func main() {
	configFile := flag.String("config", "", "Path to a .toml or .json config file")
	width := flag.Int("width", 0, "Window width in pixels (default: 800)")
	height := flag.Int("height", 0, "Window height in pixels (default: 600)")
	workers := flag.Int("workers", 0, "Rasterizer row workers (default: NumCPU)")
	refine := flag.Bool("refine", false, "Refine curve distances with Newton steps")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (default: info)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:    *width,
		Height:   *height,
		Workers:  *workers,
		Refine:   *refine,
		LogLevel: *logLevel,
	})

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	diag.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g := &viewer{
		renderer: frame.Renderer{
			Scene:   frame.DefaultScene(),
			Workers: cfg.Workers,
			Refine:  cfg.Refine,
		},
		x:     cfg.CameraX,
		y:     cfg.CameraY,
		scale: cfg.Scale,
	}

	ebiten.SetWindowTitle(titleBase)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type viewer struct {
	renderer frame.Renderer
	state    frame.FrameState

	// Camera origin and zoom; width and height follow the window.
	x, y, scale float32

	buf      *raster.Buffer
	pix      []byte
	lastDraw time.Time
}

func (g *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.renderer.Scene.Grid = !g.renderer.Scene.Grid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.renderer.Scene.BoundingBoxes = !g.renderer.Scene.BoundingBoxes
	}

	step := float32(panSpeed) / tickRate
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.x -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.x += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.y += step
	}

	if _, wy := ebiten.Wheel(); wy != 0 && g.buf != nil {
		g.zoom(wy > 0)
	}
	return nil
}

// zoom keeps the world point under the window center fixed.
func (g *viewer) zoom(in bool) {
	next := g.scale * zoomStep
	if !in {
		next = g.scale / zoomStep
	}
	next = min(max(next, minScale), maxScale)

	cx, cy := float32(g.buf.Width)/2, float32(g.buf.Height)/2
	g.x += cx/g.scale - cx/next
	g.y += cy/g.scale - cy/next
	g.scale = next
}

func (g *viewer) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.buf == nil || g.buf.Width != w || g.buf.Height != h {
		g.buf = raster.NewBuffer(w, h)
		g.pix = make([]byte, w*h*4)
	}

	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.state.DeltaTime = now.Sub(g.lastDraw)
	}
	g.lastDraw = now

	g.state.Camera = camera.Fit(w, h, g.scale, g.x, g.y)
	if err := g.renderer.Render(&g.state, g.buf); err != nil {
		diag.Logger().Error("viewer: render", "err", err)
		return
	}

	snapshot.FillRGBA(g.pix, g.buf)
	screen.WritePixels(g.pix)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
