package glyphs

import (
	"math"
	"testing"
)

func TestSetOfBoundaries(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want Set
	}{
		{"ascii letter", 'a', SetPrimary},
		{"digit", '7', SetPrimary},
		{"just below block", WideStart - 1, SetPrimary},
		{"block start", WideStart, SetWide},
		{"inside block", 0x30C4, SetWide},
		{"block end", WideEnd, SetWide},
		{"just above block", WideEnd + 1, SetPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetOf(tt.ch); got != tt.want {
				t.Errorf("SetOf(%U) = %v, want %v", tt.ch, got, tt.want)
			}
		})
	}
}

func TestNoiseAlphabets(t *testing.T) {
	for _, ch := range NoiseASCII {
		if SetOf(ch) != SetPrimary {
			t.Errorf("NoiseASCII char %q classified as wide", ch)
		}
	}
	for _, ch := range NoiseWide {
		if SetOf(ch) != SetWide {
			t.Errorf("NoiseWide char %U classified as primary", ch)
		}
	}
	if len(NoiseWide) == 0 {
		t.Fatal("empty wide noise alphabet")
	}
}

func TestMeasure(t *testing.T) {
	m := Measure(18)
	if m.CellHeight != 18 {
		t.Errorf("cell height = %f, want 18", m.CellHeight)
	}
	if math.Abs(m.CellWidth-11.7) > 1e-9 {
		t.Errorf("cell width = %f, want 11.7", m.CellWidth)
	}

	// Tiny sizes hit the width floor instead of collapsing.
	m = Measure(4)
	if m.CellWidth != minCellWidth {
		t.Errorf("cell width = %f, want floor %f", m.CellWidth, minCellWidth)
	}

	// Degenerate sizes are clamped, never zero.
	m = Measure(0)
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		t.Errorf("degenerate size produced non-positive cell: %+v", m)
	}
	m = Measure(-5)
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		t.Errorf("negative size produced non-positive cell: %+v", m)
	}
}

func TestProviderCaching(t *testing.T) {
	calls := 0
	resolve := func(ch rune, set Set) (GlyphID, bool) {
		calls++
		if ch == 'x' {
			return 0, false
		}
		return GlyphID(ch % 100), true
	}

	p := NewProvider(18, resolve)

	a := p.Index('a', SetPrimary)
	b := p.Index('a', SetPrimary)
	if a != b {
		t.Errorf("cached lookup differs: %d vs %d", a, b)
	}
	if calls != 1 {
		t.Errorf("expected 1 resolver call, got %d", calls)
	}

	// Same rune in the other set is a separate cache entry.
	p.Index('a', SetWide)
	if calls != 2 {
		t.Errorf("expected per-set caching, got %d calls", calls)
	}

	// Unresolvable falls back to 0 and is cached too.
	if got := p.Index('x', SetPrimary); got != 0 {
		t.Errorf("unresolvable glyph = %d, want 0", got)
	}
	p.Index('x', SetPrimary)
	if calls != 3 {
		t.Errorf("miss not cached: %d calls", calls)
	}
}

func TestProviderFontSizeInvalidation(t *testing.T) {
	calls := 0
	p := NewProvider(18, func(ch rune, set Set) (GlyphID, bool) {
		calls++
		return 1, true
	})

	p.Index('a', SetPrimary)
	p.SetFontSize(24)

	if p.Metrics().CellHeight != 24 {
		t.Errorf("metrics not recomputed: %+v", p.Metrics())
	}

	p.Index('a', SetPrimary)
	if calls != 2 {
		t.Errorf("cache not invalidated on font size change: %d calls", calls)
	}
}

func TestProviderNilResolver(t *testing.T) {
	p := NewProvider(18, nil)
	if got := p.Index('a', SetPrimary); got != 0 {
		t.Errorf("nil resolver should fall back to 0, got %d", got)
	}
}
