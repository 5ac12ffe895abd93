package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Config is the root configuration of the adapter.
// Everything that used to be a build time constant lives here.
type Config struct {
	Debug      bool
	NoColor    bool
	LockFile   string
	Video      Video
	Input      Input
	Monitoring Monitoring
}

type Video struct {
	// logical window (display) size
	Width  int `default:"960"`
	Height int `default:"544"`
	// host pixel buffer size, the texture is created with exactly these dimensions
	BufferWidth  int `default:"320"`
	BufferHeight int `default:"200"`
	// stretch or letterbox
	Scaling string `default:"stretch"`
	Title   string `default:"DOOM"`
	// use the in-memory framebuffer instead of an SDL window
	Headless bool
	// save the last presented frame as PNG on exit
	Screenshot string
}

// Input has no default tags on the stick values, zero is a valid
// center or deadzone and fig would replace it. See Default.
type Input struct {
	Center    int
	Deadzone  int
	QueueSize int `default:"16"`
	// custom button bindings, the built-in table is used when empty
	Keymap []Binding
}

// Binding maps a controller button name to a host key name.
// Release marks buttons that should also report key up events.
type Binding struct {
	Button  string
	Key     string
	Release bool
}

type Monitoring struct {
	Port             int
	URLPrefix        string
	MetricEnabled    bool `json:"metric_enabled"`
	ProfilingEnabled bool `json:"profiling_enabled"`
}

func (c *Monitoring) IsEnabled() bool { return c.MetricEnabled || c.ProfilingEnabled }

// Default returns the config with the values that can't be
// expressed with default tags. Load files and env over it.
func Default() Config {
	return Config{Input: Input{Center: 128, Deadzone: 32}}
}

const (
	ScalingStretch   = "stretch"
	ScalingLetterbox = "letterbox"
)

// Validate checks values that would break the frontend at runtime.
func (c *Config) Validate() error {
	v := c.Video
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("bad window size %vx%v", v.Width, v.Height)
	}
	if v.BufferWidth <= 0 || v.BufferHeight <= 0 {
		return fmt.Errorf("bad buffer size %vx%v", v.BufferWidth, v.BufferHeight)
	}
	switch strings.ToLower(v.Scaling) {
	case ScalingStretch, ScalingLetterbox:
	default:
		return fmt.Errorf("unknown scaling policy %q", v.Scaling)
	}
	in := c.Input
	if in.Center < 0 || in.Center > 255 {
		return fmt.Errorf("stick center %v is out of [0, 255]", in.Center)
	}
	if in.Deadzone < 0 || in.Deadzone > 127 {
		return fmt.Errorf("stick deadzone %v is out of [0, 127]", in.Deadzone)
	}
	if in.QueueSize <= 0 {
		return fmt.Errorf("bad key queue size %v", in.QueueSize)
	}
	return nil
}

// configPath is a custom path to the config file set with flags.
var configPath string

func ConfigPath() string { return configPath }

func (c *Config) WithFlags(fs *pflag.FlagSet) *Config {
	fs.StringVarP(&configPath, "conf", "c", "", "Set custom configuration file path")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored console logs")
	fs.StringVar(&c.LockFile, "lock", c.LockFile, "Instance lock file path")
	fs.IntVar(&c.Video.Width, "width", c.Video.Width, "Window width")
	fs.IntVar(&c.Video.Height, "height", c.Video.Height, "Window height")
	fs.StringVar(&c.Video.Scaling, "scaling", c.Video.Scaling, "Scaling policy: [stretch, letterbox]")
	fs.BoolVar(&c.Video.Headless, "headless", c.Video.Headless, "Render into memory instead of a window")
	fs.StringVar(&c.Video.Screenshot, "screenshot", c.Video.Screenshot, "Save the last frame as PNG on exit")
	fs.IntVar(&c.Input.Deadzone, "deadzone", c.Input.Deadzone, "Analog stick deadzone")
	fs.IntVar(&c.Monitoring.Port, "monitoring.port", c.Monitoring.Port, "Monitoring server port")
	return c
}
