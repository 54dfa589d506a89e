package config

import "sort"

// Presets are ready-made knob sets selectable by name from the CLI.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"crowded": preset(func(c *Config) {
		c.Rain.ActiveColumnChance = 0.85
		c.Rain.SpeedMin = 6.0
		c.Rain.SpeedMax = 12.0
		c.Rain.ReadablePercent = 20
	}),
	"ghostly": preset(func(c *Config) {
		c.Rain.ActiveColumnChance = 0.30
		c.Rain.BackLayerAlpha = 0.08
		c.Rain.ReadablePercent = 55
		c.Rain.WhiteChance = 1.0 / 90.0
	}),
	"calm": preset(func(c *Config) {
		c.Rain.ActiveColumnChance = 0.25
		c.Rain.SpeedMin = 2.0
		c.Rain.SpeedMax = 4.0
		c.Rain.DepthLayers = 1
		c.Rain.TrailLen = 14
	}),
	"flat": preset(func(c *Config) {
		c.Rain.DepthLayers = 1
	}),
}

func preset(mod func(*Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
