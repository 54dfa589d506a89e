package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jasontate/emotrix/internal/rain"
)

const (
	DefaultFontSize = 18.0
	DefaultFPS      = rain.DefaultFPS
	DefaultTheme    = "matrix"
)

// Config is the YAML-file shape of every knob. CLI flags override
// whatever the file sets.
type Config struct {
	FontSize float64 `yaml:"font_size"`
	FPS      int     `yaml:"fps"`
	Seed     int64   `yaml:"seed"`
	Theme    string  `yaml:"theme"`
	Corpus   string  `yaml:"corpus"`
	Rain     Rain    `yaml:"rain"`
}

// Rain groups the animation knobs.
type Rain struct {
	SpeedMin                float64 `yaml:"speed_min"`
	SpeedMax                float64 `yaml:"speed_max"`
	ActiveColumnChance      float64 `yaml:"active_column_chance"`
	ReadablePercent         int     `yaml:"readable_percent"`
	ReadableFlipChance      float64 `yaml:"readable_flip_chance"`
	ReadableNoiseCharChance float64 `yaml:"readable_noise_char_chance"`
	NoiseWideChance         float64 `yaml:"noise_wide_chance"`
	WhiteChance             float64 `yaml:"white_chance"`
	WhiteHeadLen            int     `yaml:"white_head_len"`
	DepthLayers             int     `yaml:"depth_layers"`
	BackLayerAlpha          float64 `yaml:"back_layer_alpha"`
	BackLayerSpeedScale     float64 `yaml:"back_layer_speed_scale"`
	XJitter                 float64 `yaml:"x_jitter"`
	TrailLen                int     `yaml:"trail_len"`
}

func DefaultConfig() *Config {
	r := rain.DefaultConfig()
	return &Config{
		FontSize: DefaultFontSize,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		Rain: Rain{
			SpeedMin:                r.SpeedMin,
			SpeedMax:                r.SpeedMax,
			ActiveColumnChance:      r.ActiveColumnChance,
			ReadablePercent:         r.ReadablePercent,
			ReadableFlipChance:      r.ReadableFlipChance,
			ReadableNoiseCharChance: r.ReadableNoiseCharChance,
			NoiseWideChance:         r.NoiseWideChance,
			WhiteChance:             r.WhiteChance,
			WhiteHeadLen:            r.WhiteHeadLen,
			DepthLayers:             r.DepthLayers,
			BackLayerAlpha:          r.BackLayerAlpha,
			BackLayerSpeedScale:     r.BackLayerSpeedScale,
			XJitter:                 r.XJitter,
			TrailLen:                r.TrailLen,
		},
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine converts the file config into an engine config for the
// given canvas size. Out-of-range values are clamped by the engine.
func (c *Config) Engine(width, height float64) rain.Config {
	return rain.Config{
		Width:                   width,
		Height:                  height,
		FontSize:                c.FontSize,
		FPS:                     c.FPS,
		Seed:                    c.Seed,
		SpeedMin:                c.Rain.SpeedMin,
		SpeedMax:                c.Rain.SpeedMax,
		ActiveColumnChance:      c.Rain.ActiveColumnChance,
		ReadablePercent:         c.Rain.ReadablePercent,
		ReadableFlipChance:      c.Rain.ReadableFlipChance,
		ReadableNoiseCharChance: c.Rain.ReadableNoiseCharChance,
		NoiseWideChance:         c.Rain.NoiseWideChance,
		WhiteChance:             c.Rain.WhiteChance,
		WhiteHeadLen:            c.Rain.WhiteHeadLen,
		DepthLayers:             c.Rain.DepthLayers,
		BackLayerAlpha:          c.Rain.BackLayerAlpha,
		BackLayerSpeedScale:     c.Rain.BackLayerSpeedScale,
		XJitter:                 c.Rain.XJitter,
		TrailLen:                c.Rain.TrailLen,
	}
}
