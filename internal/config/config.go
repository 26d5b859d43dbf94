package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/body"
)

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultFrameRate   = 60
	DefaultDistance    = 140.0
	DefaultSensitivity = 0.05
	DefaultDamping     = 0.1
)

// CameraConfig tunes whichever controller Mode selects ("orbit" or "free").
type CameraConfig struct {
	Mode        string  `yaml:"mode"`
	Sensitivity float64 `yaml:"sensitivity"`
	Damping     float64 `yaml:"damping"`
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Window    WindowConfig `yaml:"window"`
	Camera    CameraConfig `yaml:"camera"`
	FrameRate int          `yaml:"frame_rate"`
	TimeScale float64      `yaml:"time_scale"`
	Preset    string       `yaml:"preset"`
	Bodies    []body.Spec  `yaml:"bodies,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Camera: CameraConfig{
			Mode:        "orbit",
			Sensitivity: DefaultSensitivity,
			Damping:     DefaultDamping,
			Distance:    DefaultDistance,
			MinDistance: 10,
			MaxDistance: 400,
		},
		FrameRate: DefaultFrameRate,
		TimeScale: 1.0,
		Preset:    "full",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.Camera.Mode != "orbit" && c.Camera.Mode != "free" {
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}
	if c.Camera.Damping <= 0 || c.Camera.Damping > 1 {
		return fmt.Errorf("damping must be in (0,1], got %f", c.Camera.Damping)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance <= c.Camera.MinDistance {
		return fmt.Errorf("distance bounds [%f, %f] are not an interval",
			c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	// Negative runs time backwards; zero would freeze every orbit.
	if c.TimeScale == 0 {
		return fmt.Errorf("time scale must be non-zero")
	}
	if len(c.Bodies) == 0 {
		if _, ok := body.Preset(c.Preset); !ok {
			return fmt.Errorf("unknown preset %q (available: %v)", c.Preset, body.Presets())
		}
	}
	return nil
}

// Scene builds the body tree the config describes: an explicit bodies list
// wins over the preset name. A bodies list replaces the whole catalog, with
// the first entry as the root.
func (c *Config) Scene() (*body.System, error) {
	var root body.Body
	if len(c.Bodies) > 0 {
		var err error
		root, err = body.Build(c.Bodies[0])
		if err != nil {
			return nil, err
		}
		for _, spec := range c.Bodies[1:] {
			sat, err := body.Build(spec)
			if err != nil {
				return nil, err
			}
			root.Satellites = append(root.Satellites, sat)
		}
	} else {
		var ok bool
		root, ok = body.Preset(c.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", c.Preset)
		}
	}

	sys := body.NewSystem(root)
	sys.SpeedScale = c.TimeScale
	return sys, nil
}
