package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/keenst/oxide-engine/internal/batch"
	"github.com/keenst/oxide-engine/internal/config"
	"github.com/keenst/oxide-engine/internal/diag"
	"github.com/keenst/oxide-engine/internal/frame"
	"github.com/keenst/oxide-engine/internal/mathutil"
	"github.com/keenst/oxide-engine/internal/snapshot"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .toml or .json config file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: 600)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, tga, bmp, png, jpg (default: webp)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	refine := flag.Bool("refine", false, "Refine curve distances with Newton steps")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (default: info)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Quality:   *quality,
		Frames:    *frames,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
		Refine:    *refine,
		LogLevel:  *logLevel,
	})

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	diag.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	f, err := snapshot.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Oxide curve renderer → %s\n", f)
	fmt.Printf("Frames: %d (%dx%d, x%d supersample), Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Options:     snapshot.Options{Format: f, Quality: cfg.Quality},
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Scale:       cfg.Scale,
		Start:       mathutil.V2(cfg.CameraX, cfg.CameraY),
		Pan:         mathutil.V2(cfg.PanX, cfg.PanY),
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Refine:      cfg.Refine,
		Scene:       frame.DefaultScene(),
	}

	results := batch.Run(batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
