package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupported is returned by Load for files that are neither TOML nor JSON.
var ErrUnsupported = errors.New("config: unsupported file type")

// Config holds output, camera and render settings.
type Config struct {
	// Output
	OutputDir string `json:"output_dir" toml:"output_dir"`
	Format    string `json:"format" toml:"format"`
	Quality   int    `json:"quality" toml:"quality"`
	Frames    int    `json:"frames" toml:"frames"`

	// Viewport, in pixels and pixels per world unit
	Width       int     `json:"width" toml:"width"`
	Height      int     `json:"height" toml:"height"`
	Scale       float32 `json:"scale" toml:"scale"`
	Supersample int     `json:"supersample" toml:"supersample"`

	// Camera origin and per-frame pan, in world units
	CameraX float32 `json:"camera_x" toml:"camera_x"`
	CameraY float32 `json:"camera_y" toml:"camera_y"`
	PanX    float32 `json:"pan_x" toml:"pan_x"`
	PanY    float32 `json:"pan_y" toml:"pan_y"`

	// Render settings
	Workers  int    `json:"workers" toml:"workers"`
	Refine   bool   `json:"refine" toml:"refine"`
	LogLevel string `json:"log_level" toml:"log_level"`
}

// Load reads a .toml or .json config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Refine {
		c.Refine = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	c.Format = strings.ToLower(c.Format)
	if c.Quality <= 0 {
		c.Quality = 90
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 200
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Quality   int
	Frames    int
	Width     int
	Height    int
	Workers   int
	Refine    bool
	LogLevel  string
}
