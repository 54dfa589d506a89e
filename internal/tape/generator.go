package tape

import (
	"math/rand"

	"github.com/jasontate/emotrix/internal/corpus"
	"github.com/jasontate/emotrix/internal/glyphs"
)

// Blank is the gap filler between chunks. The renderer skips it.
const Blank = ' '

const (
	noiseChunkMin = 12
	noiseChunkMax = 45
	gapMax        = 5
)

// Options are the tunable probabilities of tape content.
type Options struct {
	// ReadablePercent is the 0-100 chance a chunk is readable text.
	ReadablePercent int
	// ReadableFlipChance reverses a readable chunk.
	ReadableFlipChance float64
	// ReadableNoiseCharChance corrupts individual readable characters
	// into noise glyphs, which is what makes text emerge from the rain
	// instead of arriving pristine.
	ReadableNoiseCharChance float64
	// NoiseWideChance picks the wide katakana alphabet over ASCII for
	// a noise character.
	NoiseWideChance float64
}

func DefaultOptions() Options {
	return Options{
		ReadablePercent:         35,
		ReadableFlipChance:      0.02,
		ReadableNoiseCharChance: 0.10,
		NoiseWideChance:         0.90,
	}
}

// Generator procedurally builds drop tapes: readable chunks drawn from
// the corpus interleaved with pure noise chunks, separated by short
// blank gaps. Deterministic for a fixed rng seed.
type Generator struct {
	opts   Options
	corpus *corpus.Store
	rng    *rand.Rand
}

func New(store *corpus.Store, opts Options, rng *rand.Rand) *Generator {
	return &Generator{opts: opts, corpus: store, rng: rng}
}

// Build returns a tape of length >= minLen. It may overshoot by up to
// one chunk plus gap.
func (g *Generator) Build(minLen int) []rune {
	if minLen < 1 {
		minLen = 1
	}
	out := make([]rune, 0, minLen+noiseChunkMax+gapMax)
	for len(out) < minLen {
		if g.rng.Intn(100) < g.opts.ReadablePercent && g.corpus != nil {
			out = g.appendReadable(out)
		} else {
			out = g.appendNoise(out)
		}
		for gap := g.rng.Intn(gapMax + 1); gap > 0; gap-- {
			out = append(out, Blank)
		}
	}
	return out
}

func (g *Generator) appendReadable(out []rune) []rune {
	line := g.corpus.RandomLine(g.rng)

	reversed := g.rng.Float64() < g.opts.ReadableFlipChance
	for i := range line {
		ch := line[i]
		if reversed {
			ch = line[len(line)-1-i]
		}
		if g.rng.Float64() < g.opts.ReadableNoiseCharChance {
			ch = g.noiseGlyph()
		}
		out = append(out, ch)
	}
	return out
}

func (g *Generator) appendNoise(out []rune) []rune {
	n := noiseChunkMin + g.rng.Intn(noiseChunkMax-noiseChunkMin+1)
	for i := 0; i < n; i++ {
		out = append(out, g.noiseGlyph())
	}
	return out
}

func (g *Generator) noiseGlyph() rune {
	if g.rng.Float64() < g.opts.NoiseWideChance {
		return glyphs.NoiseWide[g.rng.Intn(len(glyphs.NoiseWide))]
	}
	return glyphs.NoiseASCII[g.rng.Intn(len(glyphs.NoiseASCII))]
}
