package rain

// Drop is one falling column instance, belonging to one screen column
// and one depth layer. Its tape is generated once at creation and
// never mutated; the fall scrolls a viewing window along it.
type Drop struct {
	col   int
	layer int // 0 = back, 1 = front

	baseX float64 // column origin
	x     float64 // baseX plus fixed jitter
	headY float64 // advances by speed every tick

	spawnY float64 // where the head entered; anchors tape indexing
	speed  float64 // pixels per tick

	active    bool
	headWhite bool

	tape []rune
}

// Layer reports the drop's depth plane, 0 back and 1 front.
func (d *Drop) Layer() int { return d.layer }

// Active reports whether the drop renders at all this tick.
func (d *Drop) Active() bool { return d.active }

// tapeIndex maps a trail position (0 = head) to a tape index. The
// character shown at a given canvas row stays fixed as the head moves
// past it, because the index depends only on how far below the spawn
// point that row lies.
func (d *Drop) tapeIndex(idxFromHead int, cellH float64) (int, bool) {
	steps := int((d.headY - d.spawnY) / cellH)
	ti := steps - idxFromHead
	if ti < 0 {
		return 0, false
	}
	if ti >= len(d.tape) {
		// Extreme geometry can outrun the tape; wrap rather than pop.
		ti %= len(d.tape)
	}
	return ti, true
}

// trailingEdgeY is the Y of the last visible trail cell.
func (d *Drop) trailingEdgeY(trailLen int, cellH float64) float64 {
	return d.headY - float64(trailLen-1)*cellH
}
