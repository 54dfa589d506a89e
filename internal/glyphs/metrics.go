package glyphs

// GlyphID is an index into a font's glyph table. 0 is the deterministic
// fallback for characters the font cannot resolve.
type GlyphID uint16

// Resolver looks up the glyph index for a character in one of the two
// glyph sets. Front-ends back this with their font library; a nil
// resolver makes every lookup fall back to glyph 0.
type Resolver func(ch rune, set Set) (GlyphID, bool)

const (
	cellAspect   = 0.65
	minCellWidth = 8.0

	descentPrimaryFrac = 0.20
	descentWideFrac    = 0.12
)

// Metrics holds cell geometry derived from a nominal font size.
// Width and height are always strictly positive.
type Metrics struct {
	CellWidth  float64
	CellHeight float64

	// Baseline descents, one per glyph set, stored positive.
	DescentPrimary float64
	DescentWide    float64
}

// Measure derives cell metrics from a font size. Degenerate sizes are
// clamped so callers never divide by zero on column counts.
func Measure(fontSize float64) Metrics {
	if fontSize < 1 {
		fontSize = 1
	}
	w := fontSize * cellAspect
	if w < minCellWidth {
		w = minCellWidth
	}
	return Metrics{
		CellWidth:      w,
		CellHeight:     fontSize,
		DescentPrimary: fontSize * descentPrimaryFrac,
		DescentWide:    fontSize * descentWideFrac,
	}
}

// Provider resolves cell metrics for the current font size and caches
// character-to-glyph-index lookups per set. Changing the font size
// recomputes metrics and clears both caches together.
type Provider struct {
	fontSize float64
	metrics  Metrics
	resolve  Resolver
	cache    [numSets]map[rune]GlyphID
}

func NewProvider(fontSize float64, resolve Resolver) *Provider {
	p := &Provider{resolve: resolve}
	p.SetFontSize(fontSize)
	return p
}

func (p *Provider) FontSize() float64 { return p.fontSize }

func (p *Provider) Metrics() Metrics { return p.metrics }

// SetFontSize recomputes metrics and invalidates all cached lookups.
func (p *Provider) SetFontSize(size float64) {
	if size < 1 {
		size = 1
	}
	p.fontSize = size
	p.metrics = Measure(size)
	for i := range p.cache {
		p.cache[i] = make(map[rune]GlyphID)
	}
}

// Index returns the cached glyph index for ch in the given set,
// consulting the resolver on a miss. Unresolvable characters map to
// glyph 0 so a frame never fails on a missing glyph.
func (p *Provider) Index(ch rune, set Set) GlyphID {
	if set < 0 || set >= numSets {
		set = SetPrimary
	}
	if id, ok := p.cache[set][ch]; ok {
		return id
	}
	var id GlyphID
	if p.resolve != nil {
		if r, ok := p.resolve(ch, set); ok {
			id = r
		}
	}
	p.cache[set][ch] = id
	return id
}
