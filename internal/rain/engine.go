package rain

import (
	"math"
	"math/rand"
	"time"

	"github.com/jasontate/emotrix/internal/corpus"
	"github.com/jasontate/emotrix/internal/glyphs"
	"github.com/jasontate/emotrix/internal/tape"
)

// Engine owns all drop state and paints one full frame per Tick. It
// never fails in steady state: bad corpus input, missing glyphs and
// degenerate sizes all degrade the picture, not correctness.
type Engine struct {
	cfg Config
	rng *rand.Rand

	store    *corpus.Store
	provider *glyphs.Provider
	gen      *tape.Generator

	cellW, cellH float64
	cols, rows   int

	ramp  Ramp
	drops []Drop
}

// New builds an engine for the given config. The resolver may be nil;
// it only feeds the glyph-index cache used by index-based surfaces.
func New(cfg Config, resolve glyphs.Resolver) *Engine {
	cfg.clamp()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		store:    corpus.NewStore(),
		provider: glyphs.NewProvider(cfg.FontSize, resolve),
		ramp:     MatrixGreen,
	}
	e.gen = tape.New(e.store, tape.Options{
		ReadablePercent:         cfg.ReadablePercent,
		ReadableFlipChance:      cfg.ReadableFlipChance,
		ReadableNoiseCharChance: cfg.ReadableNoiseCharChance,
		NoiseWideChance:         cfg.NoiseWideChance,
	}, e.rng)

	e.rebuild()
	return e
}

// Provider exposes the glyph/metrics provider so surfaces can share
// its caches.
func (e *Engine) Provider() *glyphs.Provider { return e.provider }

func (e *Engine) Cols() int           { return e.cols }
func (e *Engine) Rows() int           { return e.rows }
func (e *Engine) CellWidth() float64  { return e.cellW }
func (e *Engine) CellHeight() float64 { return e.cellH }

// SetRamp swaps the trail fade colors, e.g. for a front-end theme.
func (e *Engine) SetRamp(r Ramp) { e.ramp = r }

// LoadCorpus cleans and installs new readable text, then replaces
// every drop so future tapes draw from it. Never fails; unusable
// input leaves only the built-in fallback line.
func (e *Engine) LoadCorpus(raw string) {
	e.store.Load(raw)
	e.reseed()
}

// Resize rebuilds metrics and reseeds the full drop grid at the new
// geometry. Individual drop state is not carried over.
func (e *Engine) Resize(width, height float64) {
	e.cfg.Width = width
	e.cfg.Height = height
	e.cfg.clamp()
	e.rebuild()
}

// SetFontSize changes cell geometry, invalidating glyph caches and
// reseeding the grid.
func (e *Engine) SetFontSize(size float64) {
	e.cfg.FontSize = size
	e.cfg.clamp()
	e.provider.SetFontSize(e.cfg.FontSize)
	e.rebuild()
}

func (e *Engine) rebuild() {
	m := glyphs.Measure(e.cfg.FontSize)
	e.cellW = m.CellWidth
	e.cellH = m.CellHeight
	e.cols = int(math.Floor(e.cfg.Width / e.cellW))
	if e.cols < 1 {
		e.cols = 1
	}
	e.rows = int(math.Floor(e.cfg.Height/e.cellH)) + 2
	if e.rows < minRowsOnScreen {
		e.rows = minRowsOnScreen
	}
	e.reseed()
}

// reseed replaces every drop: one per column for the front layer,
// plus one per column for the back layer when depth is enabled.
func (e *Engine) reseed() {
	n := e.cols * e.cfg.DepthLayers
	if cap(e.drops) < n {
		e.drops = make([]Drop, 0, n)
	}
	e.drops = e.drops[:0]

	// Back layer first so the front layer draws over it.
	if e.cfg.DepthLayers == 2 {
		for col := 0; col < e.cols; col++ {
			e.drops = append(e.drops, e.newDrop(col, 0))
		}
	}
	for col := 0; col < e.cols; col++ {
		e.drops = append(e.drops, e.newDrop(col, 1))
	}
}

// newDrop rolls a fresh drop for (col, layer): new jitter, speed,
// active flag, head-white seed and tape.
func (e *Engine) newDrop(col, layer int) Drop {
	rowsPerSec := e.cfg.SpeedMin + e.rng.Float64()*(e.cfg.SpeedMax-e.cfg.SpeedMin)
	speed := rowsPerSec * e.cellH / float64(e.cfg.FPS)
	if layer == 0 {
		speed *= e.cfg.BackLayerSpeedScale
	}

	// Start above the visible canvas, anywhere in [-height, -cellH).
	span := e.cfg.Height - e.cellH
	if span < 0 {
		span = 0
	}
	headY := -e.cfg.Height + e.rng.Float64()*span

	baseX := float64(col) * e.cellW
	jitter := (e.rng.Float64()*2 - 1) * e.cfg.XJitter * e.cellW

	// Sized so the viewing window never outruns the tape: the spawn
	// point can sit a full canvas above the screen.
	tapeLen := e.cfg.TrailLen + 2*e.rows + tapeMargin

	return Drop{
		col:       col,
		layer:     layer,
		baseX:     baseX,
		x:         baseX + jitter,
		headY:     headY,
		spawnY:    headY,
		speed:     speed,
		active:    e.rng.Float64() < e.cfg.ActiveColumnChance,
		headWhite: e.rng.Float64() < e.cfg.WhiteChance,
		tape:      e.gen.Build(tapeLen),
	}
}

// Tick advances state and paints the full frame: clear, draw each
// active drop's visible window at its current position, then advance
// and respawn. Drawing before advancing means a fresh drop's first
// frame appears exactly at its spawn position.
func (e *Engine) Tick(s Surface) {
	s.Clear(Black)
	for i := range e.drops {
		d := &e.drops[i]

		if !d.active {
			if e.rng.Float64() < reactivateChance {
				nd := e.newDrop(d.col, d.layer)
				nd.active = true
				*d = nd
			}
			continue
		}

		e.drawDrop(s, d)

		if e.rng.Float64() < e.cfg.WhiteChance {
			d.headWhite = e.rng.Intn(2) == 0
		}

		d.headY += d.speed
		if d.trailingEdgeY(e.cfg.TrailLen, e.cellH) > e.cfg.Height+e.cellH {
			*d = e.newDrop(d.col, d.layer)
		}
	}
}

// Render paints the current frame without advancing any state. Used
// by front-ends while paused.
func (e *Engine) Render(s Surface) {
	s.Clear(Black)
	for i := range e.drops {
		if e.drops[i].active {
			e.drawDrop(s, &e.drops[i])
		}
	}
}

// drawDrop paints the tape cells whose Y lands inside the band
// [-cellH, height+cellH]. Trail positions run head-first, so Y is
// strictly decreasing across the scan: cells still below the band are
// skipped, and the first cell above it ends the drop.
func (e *Engine) drawDrop(s Surface, d *Drop) {
	layerAlpha := 1.0
	if d.layer == 0 {
		layerAlpha = e.cfg.BackLayerAlpha
	}

	for idx := 0; idx < e.cfg.TrailLen; idx++ {
		y := d.headY - float64(idx)*e.cellH
		if y > e.cfg.Height+e.cellH {
			continue
		}
		if y < -e.cellH {
			break
		}

		ti, ok := d.tapeIndex(idx, e.cellH)
		if !ok {
			continue
		}
		ch := d.tape[ti]
		if ch == tape.Blank {
			continue
		}

		var c Color
		if d.headWhite && idx < e.cfg.WhiteHeadLen {
			c = White
		} else {
			c = e.ramp[shadeIndex(idx, e.cfg.TrailLen)]
		}
		c.A *= layerAlpha

		s.Glyph(ch, glyphs.SetOf(ch), d.x, y, c)
	}
}
