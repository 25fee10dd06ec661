package gallery

import "math"

// Tracker derives the active carousel index from a horizontal scroll
// offset measured in terminal columns.
type Tracker struct {
	snap   int
	offset int
	active int
}

// NewTracker returns a tracker whose snap interval is one card width plus
// the spacing between cards.
func NewTracker(snapInterval int) *Tracker {
	if snapInterval <= 0 {
		snapInterval = 1
	}
	return &Tracker{snap: snapInterval}
}

// ActiveIndex rounds offset/snap to the nearest card.
func ActiveIndex(offset, snap int) int {
	if snap <= 0 {
		return 0
	}
	return int(math.Round(float64(offset) / float64(snap)))
}

func (t *Tracker) SnapInterval() int { return t.snap }
func (t *Tracker) Offset() int       { return t.offset }
func (t *Tracker) Active() int       { return t.active }

// SetOffset records a scroll position for a gallery of n cards. An empty
// gallery has no active card and reports -1.
func (t *Tracker) SetOffset(offset, n int) {
	if n <= 0 {
		t.offset, t.active = 0, -1
		return
	}
	maxOffset := max(0, n-1) * t.snap
	t.offset = min(max(0, offset), maxOffset)
	t.active = ActiveIndex(t.offset, t.snap)
}

func (t *Tracker) ScrollBy(delta, n int) {
	t.SetOffset(t.offset+delta, n)
}

func (t *Tracker) ScrollTo(index, n int) {
	t.SetOffset(index*t.snap, n)
}

// Clamp pins the active card to min(n-1, index) after the list shrank to
// n cards.
func (t *Tracker) Clamp(index, n int) {
	t.ScrollTo(min(n-1, max(0, index)), n)
}

// Dots reports, per card, whether its indicator is lit.
func (t *Tracker) Dots(n int) []bool {
	dots := make([]bool, n)
	if t.active >= 0 && t.active < n {
		dots[t.active] = true
	}
	return dots
}
