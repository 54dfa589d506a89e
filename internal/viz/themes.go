package viz

import "github.com/jasontate/emotrix/internal/rain"

// Theme names a trail fade ramp for the engine.
type Theme struct {
	Name string
	Ramp rain.Ramp
}

// Available themes
var (
	ThemeMatrix = Theme{
		Name: "matrix",
		Ramp: rain.MatrixGreen,
	}

	ThemeAmber = Theme{
		Name: "amber",
		Ramp: rain.Ramp{
			{R: 0xFF, G: 0xE0, B: 0xA0, A: 1},
			{R: 0xFF, G: 0xB0, B: 0x30, A: 1},
			{R: 0xD0, G: 0x88, B: 0x10, A: 1},
			{R: 0x8A, G: 0x5A, B: 0x08, A: 1},
			{R: 0x40, G: 0x2A, B: 0x04, A: 1},
		},
	}

	ThemeIce = Theme{
		Name: "ice",
		Ramp: rain.Ramp{
			{R: 0xC8, G: 0xF4, B: 0xFF, A: 1},
			{R: 0x50, G: 0xC8, B: 0xF0, A: 1},
			{R: 0x28, G: 0x96, B: 0xC8, A: 1},
			{R: 0x14, G: 0x5A, B: 0x82, A: 1},
			{R: 0x0A, G: 0x28, B: 0x3C, A: 1},
		},
	}

	Themes = []Theme{ThemeMatrix, ThemeAmber, ThemeIce}
)

// GetTheme returns a theme by name, defaulting to matrix.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMatrix
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
