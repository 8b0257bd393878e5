package grid

// Range is a normalized rectangular selection over display rows and
// effective column indices, with Min ≤ Max on both axes.
type Range struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Contains reports whether a display cell lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// Selection tracks an anchor/focus cell pair and normalizes it to a
// rectangular range. It has two states, idle and dragging; Extend only
// moves the focus while a drag is active. The selection persists across
// frames until explicitly changed.
type Selection struct {
	active   bool
	dragging bool

	anchorRow, anchorCol int
	focusRow, focusCol   int
}

// StartDrag begins a drag with anchor and focus at (row, col).
func (s *Selection) StartDrag(row, col int) {
	s.active = true
	s.dragging = true
	s.anchorRow, s.anchorCol = row, col
	s.focusRow, s.focusCol = row, col
}

// Extend moves the focus cell. It is a no-op unless a drag is active.
func (s *Selection) Extend(row, col int) {
	if !s.dragging {
		return
	}
	s.focusRow, s.focusCol = row, col
}

// EndDrag finishes the drag, keeping the selection.
func (s *Selection) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Selection) Dragging() bool {
	return s.dragging
}

// Clear removes the selection.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Set replaces the selection with an externally supplied range (controlled
// reset). The anchor moves to the range's min corner.
func (s *Selection) Set(r Range) {
	s.active = true
	s.dragging = false
	s.anchorRow, s.anchorCol = r.MinRow, r.MinCol
	s.focusRow, s.focusCol = r.MaxRow, r.MaxCol
}

// Normalized returns the selection as a Min ≤ Max range. ok is false when
// no selection exists. Valid in either state.
func (s *Selection) Normalized() (r Range, ok bool) {
	if !s.active {
		return Range{}, false
	}
	r = Range{
		MinRow: s.anchorRow, MaxRow: s.focusRow,
		MinCol: s.anchorCol, MaxCol: s.focusCol,
	}
	if r.MinRow > r.MaxRow {
		r.MinRow, r.MaxRow = r.MaxRow, r.MinRow
	}
	if r.MinCol > r.MaxCol {
		r.MinCol, r.MaxCol = r.MaxCol, r.MinCol
	}
	return r, true
}

// edgeScrollDelta returns the per-tick auto-scroll deltas for a pointer
// position against a viewport. Inside the edge zone the delta ramps up
// linearly with proximity to the edge; outside it both deltas are zero.
func edgeScrollDelta(x, y, w, h, zone, maxStep float64) (dx, dy float64) {
	ramp := func(pos, size float64) float64 {
		switch {
		case pos < zone:
			d := (zone - pos) / zone
			return -d * maxStep
		case pos > size-zone:
			d := (pos - (size - zone)) / zone
			return d * maxStep
		}
		return 0
	}
	return ramp(x, w), ramp(y, h)
}
