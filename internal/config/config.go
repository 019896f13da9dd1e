package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/pixelviz/internal/pixel"
	"github.com/san-kum/pixelviz/internal/rule"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRule       = "demo"
	DefaultWidth      = 80
	DefaultHeight     = 48
	DefaultIntervalMs = 100
	DefaultVariations = 50
	DefaultSelector   = 5
	DefaultTolerance  = 0.2
	DefaultPolicy     = "clamp"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Rule       string       `yaml:"rule"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	IntervalMs int          `yaml:"interval_ms"`
	Variations int          `yaml:"variations"`
	Seed       int64        `yaml:"seed"`
	Policy     string       `yaml:"channel_policy"`
	Params     ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	// Radius of the circular rule in pixels. Zero means a quarter of the width.
	Radius    float64 `yaml:"radius"`
	Tolerance float64 `yaml:"tolerance"`
	Selector  int     `yaml:"selector"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:       DefaultRule,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		IntervalMs: DefaultIntervalMs,
		Variations: DefaultVariations,
		Policy:     DefaultPolicy,
		Params: ParamsConfig{
			Tolerance: DefaultTolerance,
			Selector:  DefaultSelector,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.IntervalMs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "interval must be positive, got %dms", c.IntervalMs)
	}
	if c.Variations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "variations must be at least 1, got %d", c.Variations)
	}
	if _, err := c.ChannelPolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

func (c *Config) ChannelPolicy() (pixel.Policy, error) {
	return pixel.ParsePolicy(c.Policy)
}

// RuleParams returns the construction parameters for the configured rule.
func (c *Config) RuleParams() rule.Params {
	radius := c.Params.Radius
	if radius == 0 {
		radius = float64(c.Width) / 4
	}
	return rule.Params{
		"radius":    radius,
		"tolerance": c.Params.Tolerance,
		"selector":  float64(c.Params.Selector),
	}
}
