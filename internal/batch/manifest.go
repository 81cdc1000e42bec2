package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one written frame in the output manifest.
type ManifestEntry struct {
	Frame   int     `json:"frame"`
	Image   string  `json:"image"`
	CameraX float32 `json:"camera_x"`
	CameraY float32 `json:"camera_y"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Scale   float32 `json:"scale"`
}

// WriteManifest writes the successful frames of results to path as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:   r.Frame,
			Image:   r.File,
			CameraX: r.Camera.X,
			CameraY: r.Camera.Y,
			Width:   r.Camera.Width,
			Height:  r.Camera.Height,
			Scale:   r.Camera.Scale,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
