package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index     int     `json:"index"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Image     string  `json:"image"`
	Segments  int     `json:"segments"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes a JSON list of the rendered frames to path. Image
// paths are made relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img := r.Path
		if rel, err := filepath.Rel(dir, r.Path); err == nil && r.Path != "" {
			img = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Index:     r.Index,
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
			Image:     img,
			Segments:  r.Segments,
		}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
