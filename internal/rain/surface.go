package rain

import "github.com/jasontate/emotrix/internal/glyphs"

// Color is a straight-alpha RGBA color. Alpha is 0..1 so the back
// layer can be dimmed with one multiply; surfaces without real alpha
// composite against the black background instead.
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
)

// ShadeCount is the number of steps in the trail fade ramp.
const ShadeCount = 5

// Ramp is a head-to-tail trail fade: index 0 is the brightest shade
// drawn at the head, the last index the darkest at the tail.
type Ramp [ShadeCount]Color

// MatrixGreen is the default ramp.
var MatrixGreen = Ramp{
	{0xB4, 0xFF, 0xB4, 1},
	{0x50, 0xF0, 0x50, 1},
	{0x28, 0xC8, 0x28, 1},
	{0x14, 0x82, 0x14, 1},
	{0x0A, 0x3C, 0x0A, 1},
}

// shadeIndex maps a trail position (0 = head) to a ramp bucket by
// nearest-bucket rounding of the trail fraction. Always within
// [0, ShadeCount-1] regardless of inputs.
func shadeIndex(idxFromHead, trailLen int) int {
	if trailLen <= 1 || idxFromHead <= 0 {
		return 0
	}
	frac := float64(idxFromHead) / float64(trailLen-1)
	i := int(frac*float64(ShadeCount-1) + 0.5)
	if i < 0 {
		i = 0
	}
	if i >= ShadeCount {
		i = ShadeCount - 1
	}
	return i
}

// Surface is the drawing contract the engine paints through once per
// tick. Implementations draw immediately; the engine never retains
// the surface between ticks.
type Surface interface {
	// Clear fills the whole canvas.
	Clear(c Color)
	// Glyph draws one character at canvas position (x, y), the top
	// left of its cell. The set is the engine's classification of ch.
	Glyph(ch rune, set glyphs.Set, x, y float64, c Color)
}
