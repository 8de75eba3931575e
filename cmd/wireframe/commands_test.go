package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wireframe/internal/config"
)

const cubeScene = `
view:
  prp: [0, 0, 5]
  srp: [0, 0, 0]
  vup: [0, 1, 0]
  clip: [-1, 1, -1, 1, 1, 50]
models:
  - type: cube
    center: [0, 0, 0]
    width: 2
    height: 2
    depth: 2
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.yaml")
	if err := os.WriteFile(path, []byte(cubeScene), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdSegments(t *testing.T) {
	var out bytes.Buffer
	if err := cmdSegments([]string{"-width", "800", "-height", "600", writeScene(t)}, &out); err != nil {
		t.Fatalf("cmdSegments: %v", err)
	}

	var doc segmentsDoc
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if doc.Width != 800 || doc.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", doc.Width, doc.Height)
	}
	if len(doc.Segments) != 12 || doc.Stats.Accepted != 12 {
		t.Errorf("segments = %d, accepted = %d, want 12", len(doc.Segments), doc.Stats.Accepted)
	}
	for _, s := range doc.Segments {
		for _, p := range [][2]float64{s.From, s.To} {
			if p[0] < 0 || p[0] > 800 || p[1] < 0 || p[1] > 600 {
				t.Errorf("point %v outside the canvas", p)
			}
		}
	}
}

func TestCmdSegmentsMissingScene(t *testing.T) {
	var out bytes.Buffer
	err := cmdSegments([]string{filepath.Join(t.TempDir(), "missing.yaml")}, &out)
	if err == nil {
		t.Fatal("expected error for missing scene")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output on error: %s", out.String())
	}
}

func TestCmdConfigWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "wireframe.yaml")
	var out bytes.Buffer
	if err := cmdConfig([]string{"-width", "1280", "-height", "720", "-o", path}, &out); err != nil {
		t.Fatalf("cmdConfig: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Canvas.Width != 1280 || cfg.Canvas.Height != 720 {
		t.Errorf("canvas = %dx%d, want 1280x720", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	// Unset values keep their defaults.
	if cfg.Render.MarkerColor != config.Default().Render.MarkerColor {
		t.Errorf("marker colour = %s", cfg.Render.MarkerColor)
	}
}

func TestCmdConfigPrints(t *testing.T) {
	var out bytes.Buffer
	if err := cmdConfig([]string{"-width", "640"}, &out); err != nil {
		t.Fatalf("cmdConfig: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if cfg.Canvas.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Canvas.Width)
	}
}

func TestTrimExt(t *testing.T) {
	tests := map[string]string{
		"cube.yaml":   "cube",
		"scene.v2.js": "scene.v2",
		"noext":       "noext",
	}
	for in, want := range tests {
		if got := trimExt(in); got != want {
			t.Errorf("trimExt(%q) = %q, want %q", in, got, want)
		}
	}
}
