package grid

import "time"

// Input delivery. The host translates its windowing events into these
// calls; the grid resolves hits against the last drawn frame, runs the
// middleware chain, and applies default behaviors unless prevented.
//
// Consumer callbacks run on the calling goroutine with the grid unlocked,
// so they may freely call back into grid methods.

// PointerDown delivers a press at canvas coordinates.
func (g *Grid) PointerDown(x, y float64, mods Modifiers) {
	g.mu.Lock()
	hit := g.hitTest(x, y)
	g.lastPointerX, g.lastPointerY = x, y
	chain := g.events
	cb := g.Callbacks
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelPointerDown, Hit: hit, Modifiers: mods, X: x, Y: y}
	if !chain.dispatch(e) {
		return
	}

	// The press arms click synthesis only once the chain let it through;
	// a swallowed press must not pair with a later release.
	g.mu.Lock()
	g.pressHit = hit
	g.pressMoved = false
	g.mu.Unlock()

	if e.DefaultPrevented() || hit.Kind != HitCell {
		return
	}

	proposed := Range{MinRow: hit.Row, MaxRow: hit.Row, MinCol: hit.Col, MaxCol: hit.Col}
	if cb.OnBeforeSelectionChange != nil && !cb.OnBeforeSelectionChange(proposed) {
		return
	}

	g.mu.Lock()
	g.selection.StartDrag(hit.Row, hit.Col)
	g.dirty = true
	g.mu.Unlock()

	if cb.OnSelectionChange != nil {
		cb.OnSelectionChange(proposed)
	}
}

// PointerMove delivers pointer motion.
func (g *Grid) PointerMove(x, y float64, mods Modifiers) {
	g.mu.Lock()
	hit := g.hitTest(x, y)
	g.lastPointerX, g.lastPointerY = x, y
	if g.selection.Dragging() &&
		(hit.Row != g.pressHit.Row || hit.Col != g.pressHit.Col) {
		g.pressMoved = true
	}
	if g.selection.Dragging() && g.surface != nil {
		w, h := g.surface.Size()
		g.autoDX, g.autoDY = edgeScrollDelta(x, y, w, h,
			g.opts.autoScrollZone, g.opts.autoScrollMaxStep)
		// The timer exists only while the pointer sits in an edge zone.
		if g.autoDX != 0 || g.autoDY != 0 {
			g.startAutoScrollLocked()
		} else {
			g.stopAutoScrollLocked()
		}
	}
	dragging := g.selection.Dragging()
	chain := g.events
	cb := g.Callbacks
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelPointerMove, Hit: hit, Modifiers: mods, X: x, Y: y}
	if !chain.dispatch(e) {
		return
	}
	if e.DefaultPrevented() || !dragging || hit.Kind != HitCell {
		return
	}
	g.extendSelection(hit.Row, hit.Col, cb)
}

// PointerUp delivers a release. Click, double-click, and header-click
// events are synthesized here from the press/release pair.
func (g *Grid) PointerUp(x, y float64, mods Modifiers) {
	g.mu.Lock()
	hit := g.hitTest(x, y)
	press := g.pressHit
	moved := g.pressMoved
	g.pressHit = emptyHit()
	wasDragging := g.selection.Dragging()
	if wasDragging {
		g.selection.EndDrag()
		g.stopAutoScrollLocked()
	}
	chain := g.events
	cb := g.Callbacks
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelPointerUp, Hit: hit, Modifiers: mods, X: x, Y: y}
	if !chain.dispatch(e) {
		return
	}

	switch {
	case hit.Kind == HitCell && press.Kind == HitCell && !moved &&
		hit.Row == press.Row && hit.Col == press.Col:
		g.emitCellClick(hit, mods, x, y, chain, cb)
	case hit.Kind == HitHeader && press.Kind == HitHeader && hit.Col == press.Col:
		g.emitHeaderClick(hit, mods, x, y, chain, cb)
	}
}

func (g *Grid) emitCellClick(hit HitTest, mods Modifiers, x, y float64, chain dispatcher, cb Callbacks) {
	g.mu.Lock()
	now := g.now()
	double := now.Sub(g.lastClickAt) <= doubleClickWindow &&
		hit.Row == g.lastClickRow && hit.Col == g.lastClickCol
	if double {
		// Consume the pair; a third click starts over.
		g.lastClickAt = time.Time{}
	} else {
		g.lastClickAt = now
		g.lastClickRow, g.lastClickCol = hit.Row, hit.Col
	}
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelCellClick, Hit: hit, Modifiers: mods, X: x, Y: y}
	if chain.dispatch(e) && cb.OnCellClick != nil {
		cb.OnCellClick(e)
	}
	if !double {
		return
	}
	e = &Envelope{Channel: ChannelCellDoubleClick, Hit: hit, Modifiers: mods, X: x, Y: y}
	if chain.dispatch(e) && cb.OnCellDoubleClick != nil {
		cb.OnCellDoubleClick(e)
	}
}

func (g *Grid) emitHeaderClick(hit HitTest, mods Modifiers, x, y float64, chain dispatcher, cb Callbacks) {
	e := &Envelope{Channel: ChannelHeaderClick, Hit: hit, Modifiers: mods, X: x, Y: y}
	if !chain.dispatch(e) {
		return
	}
	if cb.OnHeaderClick != nil {
		cb.OnHeaderClick(e)
	}
	if e.DefaultPrevented() {
		return
	}

	g.mu.Lock()
	sortable := hit.Col >= 0 && hit.Col < len(g.effective) && g.effective[hit.Col].Sortable
	current := g.sort
	g.mu.Unlock()
	if !sortable {
		return
	}

	proposed := SortState{ColumnID: hit.ColumnID}
	if current.ColumnID == hit.ColumnID {
		proposed.Descending = !current.Descending
	}
	if cb.OnBeforeSortChange != nil && !cb.OnBeforeSortChange(proposed) {
		return
	}

	g.mu.Lock()
	g.sort = proposed
	g.dirty = true
	g.mu.Unlock()

	if cb.OnSortChange != nil {
		cb.OnSortChange(proposed)
	}
}

// Wheel delivers a scroll-wheel delta.
func (g *Grid) Wheel(dx, dy float64, mods Modifiers) {
	g.mu.Lock()
	hit := g.hitTest(g.lastPointerX, g.lastPointerY)
	chain := g.events
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelWheel, Hit: hit, Modifiers: mods, X: dx, Y: dy}
	if !chain.dispatch(e) || e.DefaultPrevented() {
		return
	}
	g.ScrollBy(dx, dy)
}

// KeyDown delivers a key press. Default behaviors: Escape clears the
// selection, arrow keys move the selection focus (extending it while
// shift is held).
func (g *Grid) KeyDown(key string, mods Modifiers) {
	g.mu.Lock()
	chain := g.events
	cb := g.Callbacks
	g.mu.Unlock()

	e := &Envelope{Channel: ChannelKeyDown, Modifiers: mods, Key: key}
	if !chain.dispatch(e) || e.DefaultPrevented() {
		return
	}

	switch key {
	case "Escape":
		g.ClearSelection()
	case "ArrowUp":
		g.moveSelection(-1, 0, mods.Shift, cb)
	case "ArrowDown":
		g.moveSelection(1, 0, mods.Shift, cb)
	case "ArrowLeft":
		g.moveSelection(0, -1, mods.Shift, cb)
	case "ArrowRight":
		g.moveSelection(0, 1, mods.Shift, cb)
	}
}

// moveSelection shifts the selection focus by one cell, clamped to the
// current view. Without shift the selection collapses to the moved cell.
func (g *Grid) moveSelection(dRow, dCol int, extend bool, cb Callbacks) {
	g.mu.Lock()
	r, ok := g.selection.Normalized()
	rows := g.pins.Total()
	cols := len(g.effective)
	if !ok || rows == 0 || cols == 0 {
		g.mu.Unlock()
		return
	}

	row := min(max(r.MaxRow+dRow, 0), rows-1)
	col := min(max(r.MaxCol+dCol, 0), cols-1)

	var proposed Range
	if extend {
		proposed = Range{
			MinRow: min(r.MinRow, row), MaxRow: max(r.MinRow, row),
			MinCol: min(r.MinCol, col), MaxCol: max(r.MinCol, col),
		}
	} else {
		proposed = Range{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}
	}
	g.mu.Unlock()

	if cb.OnBeforeSelectionChange != nil && !cb.OnBeforeSelectionChange(proposed) {
		return
	}

	g.mu.Lock()
	if extend {
		g.selection.Set(Range{MinRow: r.MinRow, MaxRow: row, MinCol: r.MinCol, MaxCol: col})
	} else {
		g.selection.Set(proposed)
	}
	g.dirty = true
	g.mu.Unlock()

	if cb.OnSelectionChange != nil {
		cb.OnSelectionChange(proposed)
	}
}

// extendSelection moves the drag focus to (row, col) with the veto hook
// applied to the resulting normalized range.
func (g *Grid) extendSelection(row, col int, cb Callbacks) {
	g.mu.Lock()
	if !g.selection.Dragging() {
		g.mu.Unlock()
		return
	}
	prev := g.selection
	g.selection.Extend(row, col)
	proposed, ok := g.selection.Normalized()
	if !ok {
		g.mu.Unlock()
		return
	}
	pr, _ := prev.Normalized()
	if proposed == pr {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	if cb.OnBeforeSelectionChange != nil && !cb.OnBeforeSelectionChange(proposed) {
		g.mu.Lock()
		g.selection = prev
		g.mu.Unlock()
		return
	}

	g.mu.Lock()
	g.dirty = true
	g.mu.Unlock()

	if cb.OnSelectionChange != nil {
		cb.OnSelectionChange(proposed)
	}
}
