package grid

import (
	"io"
	"sync"
	"time"
)

// Grid is a rendering session: columns, data, controlled view state, and
// the drawing surface it renders into. Create one with [New], attach a
// surface, and drive it with [Grid.Tick] or [Grid.Run].
//
// Grid implements io.Closer; Close cancels the frame loop resources.
type Grid struct {
	mu sync.Mutex

	opts     options
	theme    *Theme
	registry *Registry
	bridge   bridge
	events   dispatcher

	// Callbacks are the consumer event hooks. Configure before driving
	// the frame loop.
	Callbacks Callbacks

	// Declarative inputs, read-only snapshots from the grid's view.
	columns  []Column
	source   DataSource
	filtered []int // nil means identity order
	pinReq   PinRequest

	leftPinIDs  []string
	rightPinIDs []string

	overrides map[CellKey]Instruction
	strings   *stringTable

	sort      SortState
	selection Selection

	scrollTop  float64
	scrollLeft float64

	// Per-frame derived state, cached for hit-testing between frames.
	frame       Frame
	effective   []Column
	leftPinned  int
	rightPinned int
	pins        PinnedIndex
	order       []int
	colRegions  []Region
	rowRegions  []Region

	surface Surface
	dirty   bool
	closed  bool

	// Pointer/click tracking.
	pressHit     HitTest
	pressMoved   bool
	lastClickAt  time.Time
	lastClickRow int
	lastClickCol int
	lastPointerX float64
	lastPointerY float64

	auto         *autoScroller
	autoDX       float64
	autoDY       float64

	now func() time.Time // test hook
}

// Ensure Grid implements io.Closer
var _ io.Closer = (*Grid)(nil)

// doubleClickWindow is the maximum delay between two clicks on the same
// cell for the second to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// New creates a grid session. With no options it uses the built-in
// software layout engine, the default theme, and the built-in renderers.
func New(opts ...Option) *Grid {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	engine := o.engine
	if engine == nil {
		engine = NewSoftwareEngine()
	}
	theme := o.theme
	if theme == nil {
		theme = DefaultTheme()
	}
	registry := o.registry
	if registry == nil {
		registry = NewRegistry()
	}

	return &Grid{
		opts:      o,
		theme:     theme,
		registry:  registry,
		bridge:    bridge{engine: engine},
		overrides: make(map[CellKey]Instruction),
		pressHit:  emptyHit(),
		now:       time.Now,
	}
}

// Close cancels the session: the surface is detached and the auto-scroll
// timer stopped. Close is idempotent.
func (g *Grid) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	g.surface = nil
	g.stopAutoScrollLocked()
	return nil
}

// Use appends a middleware to the event chain. Middleware runs strictly
// in registration order.
func (g *Grid) Use(m Middleware) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events.use(m)
}

// ---------------------------------------------------------------------------
// Declarative state. Every setter marks the grid dirty; changes are
// observed at the next dirty cycle.

// SetColumns replaces the ordered column list.
func (g *Grid) SetColumns(cols []Column) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.columns = cols
	g.dirty = true
}

// SetSource replaces the data source and drops the memoized string table.
func (g *Grid) SetSource(src DataSource) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.source = src
	g.strings = newStringTable(src)
	g.dirty = true
}

// InvalidateData drops the memoized string table without replacing the
// source, for in-place data mutations.
func (g *Grid) InvalidateData() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.source != nil {
		g.strings = newStringTable(g.source)
	}
	g.dirty = true
}

// SetFilteredIndex installs the precomputed filtered/sorted view index.
// Pass nil to restore identity order. The slice is read, not copied;
// callers must not mutate it while installed.
func (g *Grid) SetFilteredIndex(index []int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.filtered = index
	g.dirty = true
}

// SetRowPins installs the row pinning request.
func (g *Grid) SetRowPins(req PinRequest) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pinReq = req
	g.dirty = true
}

// SetColumnPins freezes the named columns at the left and right edges.
// Pinned columns are reordered to the corresponding edge; an ID named on
// both sides pins left. Unknown IDs are ignored.
func (g *Grid) SetColumnPins(left, right []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leftPinIDs = left
	g.rightPinIDs = right
	g.dirty = true
}

// SetOverride installs per-cell override content, the highest-priority
// content source.
func (g *Grid) SetOverride(key CellKey, ins Instruction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.overrides[key] = ins
	g.dirty = true
}

// ClearOverride removes a per-cell override.
func (g *Grid) ClearOverride(key CellKey) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.overrides, key)
	g.dirty = true
}

// SetSort installs the controlled sorting state. The grid stores it and
// renders the header indicator; the host supplies the actual order via
// SetFilteredIndex.
func (g *Grid) SetSort(s SortState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sort = s
	g.dirty = true
}

// Sort returns the current sorting state.
func (g *Grid) Sort() SortState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sort
}

// Selection returns the current selection in normalized form.
func (g *Grid) Selection() (Range, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection.Normalized()
}

// SetSelection replaces the selection (controlled reset).
func (g *Grid) SetSelection(r Range) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selection.Set(r)
	g.dirty = true
}

// ClearSelection removes the selection.
func (g *Grid) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selection.Clear()
	g.dirty = true
}

// ScrollTo sets the absolute scroll offsets. Out-of-range values are
// clamped during the next frame's size computation.
func (g *Grid) ScrollTo(top, left float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollTop = max(top, 0)
	g.scrollLeft = max(left, 0)
	g.dirty = true
}

// ScrollBy adjusts the scroll offsets by a delta.
func (g *Grid) ScrollBy(dx, dy float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollByLocked(dx, dy)
}

// Scroll returns the current scroll offsets.
func (g *Grid) Scroll() (top, left float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scrollTop, g.scrollLeft
}

func (g *Grid) scrollByLocked(dx, dy float64) {
	g.scrollLeft = max(g.scrollLeft+dx, 0)
	g.scrollTop = max(g.scrollTop+dy, 0)
	g.refreshRegionTranslates()
	g.dirty = true
}

// refreshRegionTranslates keeps the cached scrollable pane translations in
// sync with the scroll offsets, so hit-testing between a scroll change and
// the next redraw resolves against up-to-date geometry.
func (g *Grid) refreshRegionTranslates() {
	for i := range g.colRegions {
		if g.colRegions[i].Name == RegionCenter {
			g.colRegions[i].Translate.X = -g.scrollLeft
		}
	}
	for i := range g.rowRegions {
		if g.rowRegions[i].Name == RegionRowCenter {
			g.rowRegions[i].Translate.Y = -g.scrollTop
		}
	}
}

// ---------------------------------------------------------------------------
// Frame pipeline.

// filteredIndexLocked returns the controlled filtered index, or identity
// order over the source.
func (g *Grid) filteredIndexLocked() []int {
	if g.filtered != nil {
		return g.filtered
	}
	if g.source == nil {
		return nil
	}
	n := g.source.RowCount()
	if cap(g.order) < n {
		g.order = make([]int, n)
	}
	idx := g.order[:n]
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (g *Grid) rowIdentity() func(int) string {
	src := g.source
	if src == nil {
		return nil
	}
	return src.RowID
}

// renderFrame runs the full pipeline for one dirty cycle. It reports
// whether the grid must stay dirty (zero columns, or a scroll clamp that
// needs a follow-up frame).
func (g *Grid) renderFrame() (reDirty bool) {
	s := g.surface
	w, h := s.Size()

	g.effective, g.leftPinned, g.rightPinned = effectiveColumns(g.columns, g.leftPinIDs, g.rightPinIDs)
	if len(g.effective) == 0 {
		// Zero columns: clear and retry next frame, skipping the
		// expensive path. Not an error.
		s.Clear(g.theme.Background)
		g.colRegions = g.colRegions[:0]
		g.rowRegions = g.rowRegions[:0]
		return true
	}

	filtered := g.filteredIndexLocked()
	g.pins = ResolvePins(filtered, g.rowIdentity(), g.pinReq)

	req := FrameRequest{
		Columns:        g.effective,
		Index:          g.pins.Order(),
		ViewportWidth:  w,
		ViewportHeight: h,
		RowHeight:      g.opts.rowHeight,
		HeaderHeight:   g.opts.headerHeight,
		ScrollTop:      g.scrollTop,
		Overscan:       g.opts.overscan,
		PinnedTop:      g.pins.TopCount(),
		PinnedBottom:   g.pins.BottomCount(),
	}

	if err := g.bridge.compute(&g.frame, req); err != nil {
		Logger().Warn("grid: layout engine failed", "err", err)
		return false
	}
	meta := g.frame.Meta

	// Clamp the scroll range against this frame's sizes; a clamp re-marks
	// dirty rather than erroring.
	reDirty = g.clampScroll(w, h, meta)

	g.colRegions = DecomposeColumns(&g.frame, g.leftPinned, g.rightPinned, g.scrollLeft, w, h)
	g.rowRegions = DecomposeRows(g.opts.headerHeight, g.pins.TopCount(), g.pins.BottomCount(),
		meta.RowHeight, g.scrollTop, w, h)

	s.Clear(g.theme.Background)

	res := resolver{overrides: g.overrides, strings: g.strings}
	if rds, ok := g.source.(RowDataSource); ok {
		res.rowData = rds.RowData
	}
	sel, hasSel := g.selection.Normalized()

	// Fixed draw order: header, then top, center and bottom row bands,
	// with left, center and right column panes inside each band. Up to
	// 9 body passes plus the header band.
	for _, rr := range g.rowRegions {
		for _, cr := range g.colRegions {
			clip, translate, ok := Intersect(cr, rr)
			if !ok {
				continue
			}
			g.drawPass(s, cr, rr, clip, translate, &res, sel, hasSel)
		}
	}
	g.drawPinShadows(s)

	Logger().Debug("grid: frame",
		"records", g.frame.RecordCount(),
		"visibleRows", g.frame.VisibleRows(),
		"passes", len(g.rowRegions)*len(g.colRegions))
	return reDirty
}

// drawPinShadows edges the frozen panes so pinned content reads as
// sitting above the scrolled panes. Drawn last, in canvas space, on the
// scrolled side of each pane boundary.
func (g *Grid) drawPinShadows(s Surface) {
	th := g.theme
	for _, cr := range g.colRegions {
		switch cr.Name {
		case RegionLeft:
			x := cr.Clip.MaxX()
			s.StrokeLine(x, cr.Clip.Y, x, cr.Clip.MaxY(), 2, th.PinnedShadow)
		case RegionRight:
			s.StrokeLine(cr.Clip.X, cr.Clip.Y, cr.Clip.X, cr.Clip.MaxY(), 2, th.PinnedShadow)
		}
	}
	for _, rr := range g.rowRegions {
		switch rr.Name {
		case RegionTop:
			y := rr.Clip.MaxY()
			s.StrokeLine(rr.Clip.X, y, rr.Clip.MaxX(), y, 2, th.PinnedShadow)
		case RegionBottom:
			s.StrokeLine(rr.Clip.X, rr.Clip.Y, rr.Clip.MaxX(), rr.Clip.Y, 2, th.PinnedShadow)
		}
	}
}

// clampScroll bounds both scroll offsets to the valid range for the
// current content size, reporting whether anything changed.
func (g *Grid) clampScroll(w, h float64, meta FrameMeta) bool {
	centerH := h - g.opts.headerHeight -
		float64(g.pins.TopCount()+g.pins.BottomCount())*meta.RowHeight
	maxTop := float64(g.pins.ScrollableCount())*meta.RowHeight - centerH
	if maxTop < 0 {
		maxTop = 0
	}

	var totalW float64
	for c := 0; c < g.frame.Columns; c++ {
		totalW += g.frame.Header(c).W
	}
	maxLeft := totalW - w
	if maxLeft < 0 {
		maxLeft = 0
	}

	changed := false
	if g.scrollTop > maxTop {
		g.scrollTop = maxTop
		changed = true
	}
	if g.scrollTop < 0 {
		g.scrollTop = 0
		changed = true
	}
	if g.scrollLeft > maxLeft {
		g.scrollLeft = maxLeft
		changed = true
	}
	if g.scrollLeft < 0 {
		g.scrollLeft = 0
		changed = true
	}
	return changed
}

// drawPass renders one column-pane × row-pane intersection. A failure
// inside a pass is caught and logged; the remaining passes still draw.
func (g *Grid) drawPass(s Surface, cr, rr Region, clip Rect, translate Vec,
	res *resolver, sel Range, hasSel bool) {
	defer func() {
		if p := recover(); p != nil {
			Logger().Warn("grid: draw pass failed",
				"colRegion", cr.Name.String(), "rowRegion", rr.Name.String(), "err", p)
		}
	}()

	beginRegion(s, clip, translate)
	defer s.Pop()

	if rr.Name == RegionHeader {
		g.drawHeaderPass(s, cr.Name)
		return
	}
	g.drawBodyPass(s, cr, rr, translate, res, sel, hasSel)
}

func (g *Grid) drawHeaderPass(s Surface, pane RegionName) {
	th := g.theme
	for c := range g.effective {
		if !g.colSegmentMatch(pane, c) {
			continue
		}
		rec := g.frame.Header(c)
		r := rec.Rect()
		s.FillRect(r.X, r.Y, r.W, r.H, th.HeaderBackground)
		s.StrokeLine(r.MaxX(), r.Y, r.MaxX(), r.MaxY(), 1, th.GridLine)
		s.StrokeLine(r.X, r.MaxY(), r.MaxX(), r.MaxY(), 1, th.GridLine)

		title := g.effective[c].Title
		if g.sort.ColumnID != "" && g.sort.ColumnID == g.effective[c].ID {
			if g.sort.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		g.registry.Draw(s, rec, Instruction{
			Kind:       KindText,
			Text:       title,
			Foreground: th.HeaderText,
		}, th)
	}
}

func (g *Grid) drawBodyPass(s Surface, cr, rr Region, translate Vec,
	res *resolver, sel Range, hasSel bool) {
	th := g.theme
	f := &g.frame

	if f.VisibleRows() == 0 {
		if cr.Name == RegionCenter && rr.Name == RegionRowCenter {
			// Empty-state message is viewport-space content: undo the
			// pane translation so it never scrolls.
			restore := viewportSpace(s, translate)
			w, h := s.Size()
			s.DrawStringAnchored("No rows", w/2, (h+g.opts.headerHeight)/2, 0.5, 0.5, th.MutedText)
			restore()
		}
		return
	}

	for i := 0; i < f.BodyCount(); i++ {
		rec := f.Body(i)
		if !g.colSegmentMatch(cr.Name, rec.Col) || !g.rowSegmentMatch(rr.Name, rec.Row) {
			continue
		}
		r := rec.Rect()

		if rec.Row%2 == 1 {
			s.FillRect(r.X, r.Y, r.W, r.H, th.RowStripe)
		}
		if hasSel && sel.Contains(rec.Row, rec.Col) {
			s.FillRect(r.X, r.Y, r.W, r.H, th.SelectionFill)
		}

		dataRow := f.DataRow(rec.Row)
		ins := res.resolve(g.effective[rec.Col], rec.Row, dataRow)
		g.registry.Draw(s, rec, ins, th)

		s.StrokeLine(r.X, r.MaxY(), r.MaxX(), r.MaxY(), 1, th.GridLine)
	}

	if hasSel {
		g.strokeSelection(s, cr, rr, sel)
	}
}

// strokeSelection outlines the part of the selection range that falls in
// this pass.
func (g *Grid) strokeSelection(s Surface, cr, rr Region, sel Range) {
	f := &g.frame
	var bounds Rect
	found := false
	for i := 0; i < f.BodyCount(); i++ {
		rec := f.Body(i)
		if !g.colSegmentMatch(cr.Name, rec.Col) || !g.rowSegmentMatch(rr.Name, rec.Row) {
			continue
		}
		if !sel.Contains(rec.Row, rec.Col) {
			continue
		}
		r := rec.Rect()
		if !found {
			bounds = r
			found = true
			continue
		}
		x0 := min(bounds.X, r.X)
		y0 := min(bounds.Y, r.Y)
		x1 := max(bounds.MaxX(), r.MaxX())
		y1 := max(bounds.MaxY(), r.MaxY())
		bounds = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	if found {
		s.StrokeRect(bounds.X, bounds.Y, bounds.W, bounds.H,
			g.theme.SelectionBorderWidth, g.theme.SelectionBorder)
	}
}

// effectiveColumns reorders the declarative column list so left-pinned
// columns come first (in pin order) and right-pinned columns last, and
// returns the pinned counts. An ID pinned on both sides resolves
// left-wins; unknown IDs are ignored.
func effectiveColumns(cols []Column, leftIDs, rightIDs []string) (effective []Column, left, right int) {
	if len(leftIDs) == 0 && len(rightIDs) == 0 {
		return cols, 0, 0
	}

	byID := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = i
		}
	}

	taken := make(map[int]bool, len(leftIDs)+len(rightIDs))
	pick := func(ids []string) []Column {
		var out []Column
		for _, id := range ids {
			i, ok := byID[id]
			if !ok || taken[i] {
				continue
			}
			taken[i] = true
			out = append(out, cols[i])
		}
		return out
	}

	leftCols := pick(leftIDs)
	rightCols := pick(rightIDs)

	effective = make([]Column, 0, len(cols))
	effective = append(effective, leftCols...)
	for i, c := range cols {
		if !taken[i] {
			effective = append(effective, c)
		}
	}
	effective = append(effective, rightCols...)
	return effective, len(leftCols), len(rightCols)
}
