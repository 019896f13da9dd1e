package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/pixelviz/internal/pixel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rule != "demo" {
		t.Errorf("expected rule demo, got %s", cfg.Rule)
	}
	if cfg.Interval() != 100*time.Millisecond {
		t.Errorf("expected 100ms interval, got %s", cfg.Interval())
	}
	if cfg.Variations != 50 {
		t.Errorf("expected 50 variations, got %d", cfg.Variations)
	}
	if cfg.Params.Selector != 5 {
		t.Errorf("expected selector 5, got %d", cfg.Params.Selector)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero interval", func(c *Config) { c.IntervalMs = 0 }},
		{"zero variations", func(c *Config) { c.Variations = 0 }},
		{"unknown policy", func(c *Config) { c.Policy = "saturate" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
}

func TestValidateKeepsPolicyCause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = "saturate"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, pixel.ErrUnknownPolicy) {
		t.Errorf("expected both config and policy errors, got %v", err)
	}
}

func TestRuleParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 120
	p := cfg.RuleParams()
	if p["radius"] != 30 {
		t.Errorf("expected default radius width/4 = 30, got %f", p["radius"])
	}
	if p["tolerance"] != 0.2 {
		t.Errorf("expected tolerance 0.2, got %f", p["tolerance"])
	}
	if p["selector"] != 5 {
		t.Errorf("expected selector 5, got %f", p["selector"])
	}

	cfg.Params.Radius = 7
	if got := cfg.RuleParams()["radius"]; got != 7 {
		t.Errorf("expected explicit radius 7, got %f", got)
	}
}

func TestChannelPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = "wrap"
	p, err := cfg.ChannelPolicy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != pixel.Wrap {
		t.Errorf("expected wrap, got %v", p)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelviz.yaml")

	cfg := DefaultConfig()
	cfg.Rule = "circular"
	cfg.Seed = 42
	cfg.Params.Radius = 9
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Rule != "circular" || loaded.Seed != 42 || loaded.Params.Radius != 9 {
		t.Errorf("unexpected loaded config %+v", loaded)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("circular", "thin")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Tolerance != 0.05 {
		t.Errorf("expected tolerance 0.05, got %f", cfg.Params.Tolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should be valid: %v", err)
	}

	cfg.Params.Tolerance = 1
	if GetPreset("circular", "thin").Params.Tolerance != 0.05 {
		t.Error("expected preset to be returned as a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("circular", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "ring"); cfg != nil {
		t.Error("expected nil for nonexistent rule")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("demo")
	if len(presets) != 7 {
		t.Errorf("expected 7 demo presets, got %d", len(presets))
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent rule")
	}
}
