package glyphs

// Set identifies which glyph alphabet a character belongs to.
type Set int

const (
	// SetPrimary covers the Latin/ASCII alphabet.
	SetPrimary Set = iota
	// SetWide covers the katakana noise block.
	SetWide

	numSets
)

// Katakana block used for the wide noise alphabet. Membership in the
// wide set is decided purely by this range; no per-character tag is
// stored anywhere.
const (
	WideStart rune = 0x30A0
	WideEnd   rune = 0x30FF
)

// SetOf classifies a character by numeric range membership.
func SetOf(ch rune) Set {
	if ch >= WideStart && ch <= WideEnd {
		return SetWide
	}
	return SetPrimary
}

// NoiseASCII is the fixed primary-set noise alphabet.
var NoiseASCII = []rune("0123456789abcdefghijklmnopqrstuvwxyz<>+*=|:.")

// NoiseWide is the wide noise alphabet, the printable katakana range.
var NoiseWide = buildNoiseWide()

func buildNoiseWide() []rune {
	// U+30A1..U+30F6 skips the block's punctuation and sound marks.
	rs := make([]rune, 0, 0x30F6-0x30A1+1)
	for ch := rune(0x30A1); ch <= 0x30F6; ch++ {
		rs = append(rs, ch)
	}
	return rs
}
