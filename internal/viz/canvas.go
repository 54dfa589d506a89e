package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jasontate/emotrix/internal/glyphs"
	"github.com/jasontate/emotrix/internal/rain"
)

// cell is one engine cell of the terminal grid.
type cell struct {
	ch    rune
	color rain.Color
	wide  bool
}

// Canvas adapts the terminal grid to the engine's drawing surface.
// One engine cell renders as two terminal columns so full-width
// katakana and ASCII stay in the same column grid.
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	grid         [][]cell

	styles map[string]lipgloss.Style
}

// NewCanvas builds a canvas of cols x rows engine cells whose drawing
// units match the given cell metrics.
func NewCanvas(cols, rows int, m glyphs.Metrics) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		cellW:  m.CellWidth,
		cellH:  m.CellHeight,
		grid:   make([][]cell, rows),
		styles: make(map[string]lipgloss.Style),
	}
	for i := range c.grid {
		c.grid[i] = make([]cell, cols)
	}
	return c
}

// Clear resets the grid. The terminal background stays the terminal's
// black; the clear color only blanks cells.
func (c *Canvas) Clear(_ rain.Color) {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = cell{}
		}
	}
}

// Glyph quantizes the engine position to the nearest grid cell.
// Positions outside the grid (the off-canvas margin band) are dropped.
func (c *Canvas) Glyph(ch rune, set glyphs.Set, x, y float64, col rain.Color) {
	gx := int(x/c.cellW + 0.5)
	gy := int(y/c.cellH + 0.5)
	if gx < 0 || gx >= c.cols || gy < 0 || gy >= c.rows {
		return
	}
	c.grid[gy][gx] = cell{ch: ch, color: col, wide: set == glyphs.SetWide}
}

// String renders the grid with lipgloss foreground colors. Alpha is
// composited against black since terminals have no translucency.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		for _, cl := range row {
			if cl.ch == 0 {
				b.WriteString("  ")
				continue
			}
			s := c.style(cl.color)
			if cl.wide {
				b.WriteString(s.Render(string(cl.ch)))
			} else {
				b.WriteString(s.Render(string(cl.ch) + " "))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) style(col rain.Color) lipgloss.Style {
	hex := compositeHex(col)
	if s, ok := c.styles[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	c.styles[hex] = s
	return s
}

func compositeHex(c rain.Color) string {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(float64(c.R)*a),
		uint8(float64(c.G)*a),
		uint8(float64(c.B)*a))
}
