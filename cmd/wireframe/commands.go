package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wireframe/internal/batch"
	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/renderer"
	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/internal/logger"
)

// command bundles the config flags shared by every subcommand.
type command struct {
	name  string
	fs    *flag.FlagSet
	flags *config.Flags
}

func newCommand(name string) *command {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &command{name: name, fs: fs, flags: config.RegisterFlags(fs)}
}

// load parses args, loads the configuration and starts logging.
func (c *command) load(args []string) (*config.Config, error) {
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.LoadWithFlags(c.flags)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

// setup is load followed by resolving the scene path from the first
// positional argument or the config.
func (c *command) setup(args []string) (*config.Config, string, error) {
	cfg, err := c.load(args)
	if err != nil {
		return nil, "", err
	}

	path := cfg.Scene
	if c.fs.NArg() > 0 {
		path = c.fs.Arg(0)
	}
	if path == "" {
		return nil, "", fmt.Errorf("usage: wireframe %s [options] <scene>", c.name)
	}
	return cfg, path, nil
}

// loadScene loads path and poses animated models at elapsed when animation
// is enabled.
func loadScene(cfg *config.Config, path string, elapsed time.Duration) (*scene.Scene, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Animation.Enabled {
		unit, err := cfg.Animation.Unit()
		if err != nil {
			return nil, err
		}
		if err := sc.UpdateTransforms(elapsed, 0, unit); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func cmdInfo(args []string) error {
	c := newCommand("info")
	cfg, path, err := c.setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sc, err := loadScene(cfg, path, 0)
	if err != nil {
		return err
	}

	st := sc.Stats()
	v := sc.View
	fmt.Printf("Scene:    %s\n", path)
	fmt.Printf("PRP:      (%g, %g, %g)\n", v.PRP.X, v.PRP.Y, v.PRP.Z)
	fmt.Printf("SRP:      (%g, %g, %g)\n", v.SRP.X, v.SRP.Y, v.SRP.Z)
	fmt.Printf("VUP:      (%g, %g, %g)\n", v.VUP.X, v.VUP.Y, v.VUP.Z)
	fmt.Printf("Clip:     %+v\n", v.Clip)
	fmt.Printf("zmin:     %.6f\n", v.ZMin())
	fmt.Printf("Models:   %d (%d animated)\n", st.Models, st.Animated)
	fmt.Printf("Vertices: %d\n", st.Vertices)
	fmt.Printf("Segments: %d\n", st.Segments)
	fmt.Println()

	for i := range sc.Models {
		m := &sc.Models[i]
		anim := "-"
		if m.Animation != nil {
			anim = fmt.Sprintf("%s @ %g", m.Animation.Axis, m.Animation.RPS)
		}
		fmt.Printf("  %-3d %-10s %-16s %5d vertices %5d segments  anim %s\n",
			i, m.Kind, m.Label(), len(m.Vertices), m.SegmentCount(), anim)
	}
	return nil
}

func cmdConfig(args []string, out io.Writer) error {
	c := newCommand("config")
	output := c.fs.String("o", "", "Write the merged config to this file")
	save := c.fs.Bool("save", false, "Write the merged config to the user config directory")
	cfg, err := c.load(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch {
	case *output != "":
		if err := cfg.SaveTo(*output); err != nil {
			return err
		}
		fmt.Fprintf(out, "config written to %s\n", *output)
	case *save:
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(out, "config written to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	return nil
}

func cmdValidate(args []string) error {
	c := newCommand("validate")
	_, path, err := c.setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if _, err := scene.Load(path); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}

// segmentDoc is the YAML form of one projected segment.
type segmentDoc struct {
	From [2]float64 `yaml:"from,flow"`
	To   [2]float64 `yaml:"to,flow"`
}

type segmentsDoc struct {
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Elapsed  string       `yaml:"elapsed"`
	Stats    statsDoc     `yaml:"stats"`
	Segments []segmentDoc `yaml:"segments"`
}

type statsDoc struct {
	Lines      int `yaml:"lines"`
	Accepted   int `yaml:"accepted"`
	Clipped    int `yaml:"clipped"`
	Rejected   int `yaml:"rejected"`
	Degenerate int `yaml:"degenerate"`
}

func writeSegments(w io.Writer, width, height int, elapsed time.Duration, segs []renderer.Segment, st renderer.Stats) error {
	doc := segmentsDoc{
		Width:   width,
		Height:  height,
		Elapsed: elapsed.String(),
		Stats: statsDoc{
			Lines:      st.Lines,
			Accepted:   st.Accepted,
			Clipped:    st.Clipped,
			Rejected:   st.Rejected,
			Degenerate: st.Degenerate,
		},
		Segments: make([]segmentDoc, len(segs)),
	}
	for i, s := range segs {
		doc.Segments[i] = segmentDoc{
			From: [2]float64{s.P0.X, s.P0.Y},
			To:   [2]float64{s.P1.X, s.P1.Y},
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func cmdSegments(args []string, out io.Writer) error {
	c := newCommand("segments")
	at := c.fs.Duration("t", 0, "Animation time offset")
	cfg, path, err := c.setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sc, err := loadScene(cfg, path, *at)
	if err != nil {
		return err
	}
	r, err := renderer.New(renderer.Config{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}, sc)
	if err != nil {
		return err
	}
	segs := r.Segments()
	return writeSegments(out, cfg.Canvas.Width, cfg.Canvas.Height, *at, segs, r.Stats())
}

func cmdRender(args []string) error {
	c := newCommand("render")
	output := c.fs.String("o", "", "Output image (default <scene>.<format>)")
	at := c.fs.Duration("t", 0, "Animation time offset")
	bounds := c.fs.Bool("bounds", false, "Overlay model bounding boxes")
	cfg, path, err := c.setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	format, err := cfg.Render.OutputFormat()
	if err != nil {
		return err
	}
	if *output == "" {
		*output = trimExt(filepath.Base(path)) + format.Ext()
	} else if f, err := raster.FormatFromPath(*output); err == nil {
		format = f
	}

	sc, err := loadScene(cfg, path, *at)
	if err != nil {
		return err
	}
	if *bounds || cfg.Render.Bounds {
		sc = debug.WithBoundingBoxes(sc, debug.DefaultBBoxPadding)
	}

	opts, err := cfg.Render.Options(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return err
	}
	r, err := renderer.New(renderer.Config{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}, sc)
	if err != nil {
		return err
	}
	canvas := raster.NewCanvas(opts)
	drawn := r.Draw(canvas)

	if err := raster.WriteFile(*output, canvas.Image(), format); err != nil {
		return err
	}

	st := r.Stats()
	logger.Info("image written",
		zap.String("path", *output),
		zap.Int("segments", drawn),
		zap.Int("clipped", st.Clipped),
		zap.Int("rejected", st.Rejected),
	)
	fmt.Printf("%s: %d segments\n", *output, drawn)
	return nil
}

func cmdAnimate(args []string) error {
	c := newCommand("animate")
	output := c.fs.String("o", "frames", "Output directory")
	prefix := c.fs.String("prefix", "frame", "Frame file prefix")
	fps := c.fs.Int("fps", 0, "Frames per second (default from config)")
	duration := c.fs.Duration("duration", 0, "Sequence length (default from config)")
	start := c.fs.Duration("start", 0, "Animation time of the first frame")
	workers := c.fs.Int("workers", -1, "Worker count (0 = one per CPU, default from config)")
	bounds := c.fs.Bool("bounds", false, "Overlay model bounding boxes")
	manifest := c.fs.Bool("manifest", true, "Write manifest.json next to the frames")
	cfg, path, err := c.setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *fps > 0 {
		cfg.Animation.FPS = *fps
	}
	if *duration > 0 {
		cfg.Animation.Duration = *duration
	}
	if *workers >= 0 {
		cfg.Animation.Workers = *workers
	}

	d, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	unit, err := cfg.Animation.Unit()
	if err != nil {
		return err
	}
	format, err := cfg.Render.OutputFormat()
	if err != nil {
		return err
	}
	opts, err := cfg.Render.Options(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return err
	}

	results, runErr := batch.Run(batch.Config{
		Scene:            d,
		BaseDir:          filepath.Dir(path),
		Canvas:           opts,
		RateUnit:         unit,
		FPS:              cfg.Animation.FPS,
		Frames:           cfg.Animation.Frames(),
		Start:            *start,
		Workers:          cfg.Animation.Workers,
		Bounds:           *bounds || cfg.Render.Bounds,
		Capture:          debug.NewScreenshotCapture(*output, *prefix, format),
		ProgressInterval: 2 * time.Second,
	})
	if results == nil {
		return runErr
	}

	if *manifest {
		mpath := filepath.Join(*output, "manifest.json")
		if err := batch.WriteManifest(mpath, results); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}
	if runErr != nil {
		return runErr
	}
	fmt.Printf("%s: %d frames\n", *output, len(results))
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
