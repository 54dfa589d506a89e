package rain

const (
	// DefaultFPS is the nominal external tick cadence. The engine does
	// not self-time; the caller owns the clock.
	DefaultFPS = 20

	minRowsOnScreen  = 10
	tapeMargin       = 8
	reactivateChance = 0.004
)

// Config holds every tunable knob of the engine. Zero values are
// replaced by defaults and degenerate geometry is clamped, so any
// Config is usable.
type Config struct {
	// Canvas size in drawing units.
	Width, Height float64

	// FontSize drives cell metrics: cell height equals the font size,
	// cell width is a fixed aspect fraction of it with a floor.
	FontSize float64

	// FPS the caller promises to tick at; converts rows/sec speeds to
	// per-tick pixel steps.
	FPS int

	// SpeedMin/SpeedMax bound per-drop fall speed in rows per second
	// for the front layer.
	SpeedMin, SpeedMax float64

	// ActiveColumnChance is the fraction of drops active at seed time.
	ActiveColumnChance float64

	// Tape content probabilities.
	ReadablePercent         int
	ReadableFlipChance      float64
	ReadableNoiseCharChance float64
	NoiseWideChance         float64

	// WhiteChance re-rolls the head-white flash flag each tick.
	WhiteChance float64
	// WhiteHeadLen is how many cells from the head the flash covers.
	WhiteHeadLen int

	// DepthLayers is 1 (front only) or 2 (back + front parallax).
	DepthLayers int
	// BackLayerAlpha dims the back layer.
	BackLayerAlpha float64
	// BackLayerSpeedScale slows the back layer.
	BackLayerSpeedScale float64

	// XJitter is per-drop horizontal jitter as a fraction of cell
	// width.
	XJitter float64

	// TrailLen is the number of tape cells visible behind the head.
	TrailLen int

	// Seed for the engine's random source. 0 means "pick one".
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Width:                   1280,
		Height:                  720,
		FontSize:                18,
		FPS:                     DefaultFPS,
		SpeedMin:                4.0,
		SpeedMax:                9.0,
		ActiveColumnChance:      0.50,
		ReadablePercent:         35,
		ReadableFlipChance:      0.02,
		ReadableNoiseCharChance: 0.10,
		NoiseWideChance:         0.90,
		WhiteChance:             1.0 / 45.0,
		WhiteHeadLen:            1,
		DepthLayers:             2,
		BackLayerAlpha:          0.16,
		BackLayerSpeedScale:     0.65,
		XJitter:                 0.12,
		TrailLen:                20,
	}
}

// clamp forces every field into a viable range. Anomalies degrade
// visuals, never correctness.
func (c *Config) clamp() {
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
	if c.FontSize < 1 {
		c.FontSize = 1
	}
	if c.FPS < 1 {
		c.FPS = DefaultFPS
	}
	if c.SpeedMin <= 0 {
		c.SpeedMin = 0.1
	}
	if c.SpeedMax < c.SpeedMin {
		c.SpeedMax = c.SpeedMin
	}
	if c.ActiveColumnChance < 0 {
		c.ActiveColumnChance = 0
	}
	if c.ActiveColumnChance > 1 {
		c.ActiveColumnChance = 1
	}
	if c.ReadablePercent < 0 {
		c.ReadablePercent = 0
	}
	if c.ReadablePercent > 100 {
		c.ReadablePercent = 100
	}
	if c.WhiteHeadLen < 0 {
		c.WhiteHeadLen = 0
	}
	if c.DepthLayers < 1 {
		c.DepthLayers = 1
	}
	if c.DepthLayers > 2 {
		c.DepthLayers = 2
	}
	if c.BackLayerAlpha < 0 {
		c.BackLayerAlpha = 0
	}
	if c.BackLayerAlpha > 1 {
		c.BackLayerAlpha = 1
	}
	if c.BackLayerSpeedScale <= 0 {
		c.BackLayerSpeedScale = 1
	}
	if c.TrailLen < 2 {
		c.TrailLen = 2
	}
}
