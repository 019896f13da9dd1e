package config

import "sort"

var Presets = map[string]map[string]*Config{
	"circular": {
		"ring": {
			Rule: "circular", Width: DefaultWidth, Height: DefaultHeight, IntervalMs: 100, Variations: 50,
			Params: ParamsConfig{Tolerance: 0.2},
		},
		"thin": {
			Rule: "circular", Width: DefaultWidth, Height: DefaultHeight, IntervalMs: 100, Variations: 50,
			Params: ParamsConfig{Radius: 12, Tolerance: 0.05},
		},
		"pulse": {
			Rule: "circular", Width: DefaultWidth, Height: DefaultHeight, IntervalMs: 40, Variations: 25,
			Params: ParamsConfig{Radius: 16, Tolerance: 0.3},
		},
	},
	"random": {
		"noise": {
			Rule: "random", Width: DefaultWidth, Height: DefaultHeight, IntervalMs: 100, Variations: 50,
		},
	},
	"demo": {
		"static":   demoPreset(0),
		"bands":    demoPreset(1),
		"sweep":    demoPreset(2),
		"product":  demoPreset(3),
		"xor":      demoPreset(4),
		"gradient": demoPreset(5),
		"ratio":    demoPreset(6),
	},
}

func demoPreset(selector int) *Config {
	return &Config{
		Rule: "demo", Width: DefaultWidth, Height: DefaultHeight, IntervalMs: 100, Variations: 50,
		Params: ParamsConfig{Selector: selector},
	}
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(ruleName, name string) *Config {
	if presets, ok := Presets[ruleName]; ok {
		if cfg, ok := presets[name]; ok {
			c := *cfg
			if c.Policy == "" {
				c.Policy = DefaultPolicy
			}
			return &c
		}
	}
	return nil
}

func ListPresets(ruleName string) []string {
	presets, ok := Presets[ruleName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
