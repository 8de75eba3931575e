// Package raster draws wireframe frames into in-memory images and encodes
// them for output.
package raster

import (
	"image"
	"image/color"
	gomath "math"

	"golang.org/x/image/draw"
)

// Options configures a Canvas.
type Options struct {
	Width, Height int
	Supersample   int // render at this multiple of the output size, then downsample
	Line          color.NRGBA
	Marker        color.NRGBA
	Background    color.NRGBA
	MarkerSize    int // endpoint marker edge length in output pixels; 0 disables markers
}

// DefaultOptions returns black lines with 4px red endpoint markers on white.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		Supersample: 1,
		Line:        color.NRGBA{A: 255},
		Marker:      color.NRGBA{R: 255, A: 255},
		Background:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		MarkerSize:  4,
	}
}

// Canvas is an image-backed drawing surface. Coordinates have their origin at
// the bottom-left corner with +y up, matching the projected segments.
type Canvas struct {
	opts Options
	img  *image.NRGBA
}

// NewCanvas creates a canvas cleared to the background colour.
func NewCanvas(opts Options) *Canvas {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.Width < 1 {
		opts.Width = 1
	}
	if opts.Height < 1 {
		opts.Height = 1
	}
	c := &Canvas{
		opts: opts,
		img:  image.NewNRGBA(image.Rect(0, 0, opts.Width*opts.Supersample, opts.Height*opts.Supersample)),
	}
	c.Clear()
	return c
}

// Size returns the output size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.opts.Width, c.opts.Height
}

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
}

// DrawLine draws a line between two points and a square marker at each end.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64) {
	ax, ay := c.toPixel(x0, y0)
	bx, by := c.toPixel(x1, y1)
	c.line(ax, ay, bx, by, c.opts.Line)

	if c.opts.MarkerSize > 0 {
		c.marker(ax, ay)
		c.marker(bx, by)
	}
}

// toPixel maps canvas coordinates into the backing image, flipping y.
// Points on the far edges (x = width, y = 0) land in the last pixel.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	s := float64(c.opts.Supersample)
	b := c.img.Bounds()
	px := clampEdge(x*s, float64(b.Dx()))
	py := clampEdge(float64(b.Dy())-y*s, float64(b.Dy()))
	return px, py
}

// clampEdge moves values in [limit, limit+1) to the centre of the last pixel.
func clampEdge(v, limit float64) float64 {
	if v >= limit && v < limit+1 {
		return limit - 0.5
	}
	return v
}

// line draws with a DDA stepping one pixel along the major axis.
func (c *Canvas) line(x0, y0, x1, y1 float64, col color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := gomath.Max(gomath.Abs(dx), gomath.Abs(dy))
	if steps < 1 {
		c.set(int(gomath.Floor(x0)), int(gomath.Floor(y0)), col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps
	x, y := x0, y0
	for i := 0; i <= int(steps); i++ {
		c.set(int(gomath.Floor(x)), int(gomath.Floor(y)), col)
		x += xInc
		y += yInc
	}
}

func (c *Canvas) marker(x, y float64) {
	size := c.opts.MarkerSize * c.opts.Supersample
	half := float64(size) / 2
	min := image.Pt(int(gomath.Round(x-half)), int(gomath.Round(y-half)))
	r := image.Rectangle{Min: min, Max: min.Add(image.Pt(size, size))}.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.opts.Marker), image.Point{}, draw.Src)
}

func (c *Canvas) set(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	off := c.img.PixOffset(x, y)
	c.img.Pix[off] = col.R
	c.img.Pix[off+1] = col.G
	c.img.Pix[off+2] = col.B
	c.img.Pix[off+3] = col.A
}

// Image returns the frame at output size. A supersampled canvas is
// downsampled with a Catmull-Rom filter; otherwise a copy of the backing
// image is returned.
func (c *Canvas) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, c.opts.Width, c.opts.Height))
	if c.opts.Supersample == 1 {
		copy(out.Pix, c.img.Pix)
		return out
	}
	draw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return out
}
