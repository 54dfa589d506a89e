package corpus

import (
	"math/rand"
	"strings"
)

const (
	// MinLineLen is the shortest line kept after cleaning and merging.
	MinLineLen = 80
	// MaxLineLen caps how far short lines are merged together before
	// the length filter runs.
	MaxLineLen = 160
)

// Fallback is the single built-in line used when no input line
// survives cleaning. It keeps readable chunks flowing even with an
// unreadable or empty corpus.
const Fallback = "wake up the terminal is watching you and the rain keeps falling through columns of green light over the sleeping city"

// Store holds the cleaned readable lines available to tape generation.
// It is immutable between Load calls; Load replaces the line set
// wholesale.
type Store struct {
	lines [][]rune
}

func NewStore() *Store {
	return &Store{}
}

// Len reports how many lines survived the last Load. A zero count is
// not an error; RandomLine serves the fallback line instead.
func (s *Store) Len() int { return len(s.lines) }

// Load cleans raw text and replaces the active line set. Cleaning
// lowercases, strips everything but ASCII letters, digits and spaces,
// normalizes line endings, merges short lines up to MaxLineLen, then
// keeps only lines of at least MinLineLen. Load never fails; worst
// case the store ends up empty and the fallback takes over.
func (s *Store) Load(raw string) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines [][]rune
	var merged []rune

	flush := func() {
		if len(merged) >= MinLineLen {
			lines = append(lines, merged)
			merged = nil
		} else {
			merged = merged[:0]
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		cleaned := cleanLine(line)
		if len(cleaned) == 0 {
			continue
		}
		if len(merged) > 0 {
			merged = append(merged, ' ')
		}
		merged = append(merged, cleaned...)
		if len(merged) >= MaxLineLen {
			flush()
		}
	}
	flush()

	s.lines = lines
}

// RandomLine returns a uniformly random surviving line, or the
// fallback line when the store is empty. Callers must not mutate the
// returned slice.
func (s *Store) RandomLine(rng *rand.Rand) []rune {
	if len(s.lines) == 0 {
		return []rune(Fallback)
	}
	return s.lines[rng.Intn(len(s.lines))]
}

func cleanLine(line string) []rune {
	out := make([]rune, 0, len(line))
	lastSpace := true
	for _, ch := range strings.ToLower(line) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
			lastSpace = false
		case ch == ' ' || ch == '\t':
			if !lastSpace {
				out = append(out, ' ')
				lastSpace = true
			}
		}
	}
	// Drop a trailing space left by punctuation-only tails.
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return out
}
