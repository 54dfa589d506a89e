package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jasontate/emotrix/internal/config"
	"github.com/jasontate/emotrix/internal/glyphs"
	"github.com/jasontate/emotrix/internal/rain"
	"github.com/jasontate/emotrix/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// App owns the raylib window and the engine it ticks.
type App struct {
	cfg        *config.Config
	corpusText string

	engine  *rain.Engine
	font    rl.Font
	surface *rlSurface
	paused  bool
	quit    bool
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "emotrix")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// fontCodepoints lists everything the tapes can contain: printable
// ASCII plus the katakana noise block.
func fontCodepoints() []rune {
	cps := make([]rune, 0, 95+int(glyphs.WideEnd-glyphs.WideStart)+1)
	for ch := rune(' '); ch <= '~'; ch++ {
		cps = append(cps, ch)
	}
	for ch := glyphs.WideStart; ch <= glyphs.WideEnd; ch++ {
		cps = append(cps, ch)
	}
	return cps
}

func loadFont(path string, size float64) rl.Font {
	if path == "" {
		return rl.GetFontDefault()
	}
	cps := fontCodepoints()
	font := rl.LoadFontEx(path, int32(size), cps, int32(len(cps)))
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates the window, font, engine and surface. Run must still
// be called to enter the loop.
func NewApp(cfg *config.Config, corpusText, fontPath string) *App {
	initWindow(cfg.FPS)

	a := &App{cfg: cfg, corpusText: corpusText}
	a.font = loadFont(fontPath, cfg.FontSize)

	resolve := glyphResolver(a.font)
	a.engine = rain.New(cfg.Engine(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())), resolve)
	a.engine.SetRamp(viz.GetTheme(cfg.Theme).Ramp)
	a.engine.LoadCorpus(corpusText)

	a.surface = &rlSurface{
		font:     a.font,
		fontSize: float32(a.engine.Provider().FontSize()),
		provider: a.engine.Provider(),
	}
	return a
}

// glyphResolver adapts raylib's glyph lookup to the provider cache.
// raylib answers every lookup with its '?' fallback slot, so a result
// equal to that slot for a different rune means "unresolvable".
func glyphResolver(font rl.Font) glyphs.Resolver {
	fallback := rl.GetGlyphIndex(font, '?')
	return func(ch rune, _ glyphs.Set) (glyphs.GlyphID, bool) {
		idx := rl.GetGlyphIndex(font, ch)
		if idx < 0 {
			return 0, false
		}
		if idx == fallback && ch != '?' {
			return 0, false
		}
		return glyphs.GlyphID(idx), true
	}
}

// Run enters the main loop and blocks until the window closes.
func (a *App) Run() {
	defer rl.CloseWindow()
	defer rl.UnloadFont(a.font)

	for !a.quit && !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
}

func (a *App) update() {
	if rl.IsWindowResized() {
		a.engine.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.engine.LoadCorpus(a.corpusText)
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	if a.paused {
		a.engine.Render(a.surface)
	} else {
		a.engine.Tick(a.surface)
	}
	rl.EndDrawing()
}

// Run builds an app from config and blocks until quit.
func Run(cfg *config.Config, corpusText, fontPath string) {
	NewApp(cfg, corpusText, fontPath).Run()
}

// rlSurface draws engine cells with the loaded font. The provider's
// per-set caches keep glyph resolution out of the per-frame hot path.
type rlSurface struct {
	font     rl.Font
	fontSize float32
	provider *glyphs.Provider
}

func (s *rlSurface) Clear(c rain.Color) {
	rl.ClearBackground(toRL(c))
}

func (s *rlSurface) Glyph(ch rune, set glyphs.Set, x, y float64, c rain.Color) {
	if s.provider.Index(ch, set) == 0 && ch != '?' {
		// Deterministic default for glyphs the font lacks.
		ch = '?'
	}
	rl.DrawTextCodepoint(s.font, ch, rl.NewVector2(float32(x), float32(y)), s.fontSize, toRL(c))
}

func toRL(c rain.Color) rl.Color {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(a*255+0.5))
}
