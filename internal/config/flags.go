package config

import "flag"

// Flags holds the command-line overrides shared by the wireframe commands.
type Flags struct {
	config  *string
	debug   *bool
	scene   *string
	width   *int
	height  *int
	animate *bool
}

// commandLine holds the overrides registered on flag.CommandLine.
var commandLine = RegisterFlags(flag.CommandLine)

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:  fs.String("config", "", "Path to config file"),
		debug:   fs.Bool("debug", false, "Enable debug logging"),
		scene:   fs.String("scene", "", "Scene file (YAML or JSON)"),
		width:   fs.Int("width", 0, "Canvas width"),
		height:  fs.Int("height", 0, "Canvas height"),
		animate: fs.Bool("animate", false, "Enable model animation"),
	}
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return commandLine.ConfigPath()
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return *f.config
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if *f.debug {
		cfg.Logging.Level = "debug"
		cfg.Viewer.ShowStats = true
	}
	if *f.scene != "" {
		cfg.Scene = *f.scene
	}
	if *f.width > 0 {
		cfg.Canvas.Width = *f.width
	}
	if *f.height > 0 {
		cfg.Canvas.Height = *f.height
	}
	if *f.animate {
		cfg.Animation.Enabled = true
	}
}

// Arg returns the i'th positional command-line argument, or "".
func Arg(i int) string {
	return flag.Arg(i)
}
