package debug

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/Faultbox/wireframe/internal/engine/raster"
)

// ScreenshotCapture writes frames to an output directory, either with a
// timestamped name or as a numbered sequence.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    raster.Format
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string, format raster.Format) *ScreenshotCapture {
	if format == "" {
		format = raster.PNG
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// CaptureFromPixels captures a screenshot from raw top-down RGBA pixel data
// with width*height*4 bytes, as read back from a 2D renderer.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves img under a timestamped name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	filename := sc.GenerateFilename()
	if err := raster.WriteFile(filename, img, sc.format); err != nil {
		return "", err
	}
	return filename, nil
}

// CaptureFrame saves img as frame index of a sequence.
func (sc *ScreenshotCapture) CaptureFrame(img image.Image, index int) (string, error) {
	filename := sc.FrameFilename(index)
	if err := raster.WriteFile(filename, img, sc.format); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateFilename generates a timestamped screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05.000")
	return sc.path(fmt.Sprintf("%s_%s%s", sc.prefix, timestamp, sc.format.Ext()))
}

// FrameFilename returns the sequence filename for frame index.
func (sc *ScreenshotCapture) FrameFilename(index int) string {
	return sc.path(fmt.Sprintf("%s_%05d%s", sc.prefix, index, sc.format.Ext()))
}

func (sc *ScreenshotCapture) path(name string) string {
	if sc.outputDir != "" {
		return filepath.Join(sc.outputDir, name)
	}
	return name
}
