package grid

import (
	"testing"
	"time"
)

func newTestGrid(rows int) *Grid {
	g := New()
	g.SetColumns([]Column{
		{ID: "id", Title: "ID", Width: 100, Sortable: true},
		{ID: "name", Title: "Name", Width: 300},
	})
	g.SetSource(&testSource{n: rows})
	g.Attach(&nopSurface{w: 400, h: 300})
	return g
}

func TestEffectiveColumns(t *testing.T) {
	cols := []Column{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("no pins", func(t *testing.T) {
		eff, l, r := effectiveColumns(cols, nil, nil)
		if l != 0 || r != 0 || len(eff) != 3 {
			t.Errorf("got %d cols, %d/%d pinned", len(eff), l, r)
		}
	})

	t.Run("reorders to edges", func(t *testing.T) {
		eff, l, r := effectiveColumns(cols, []string{"b"}, []string{"a"})
		if l != 1 || r != 1 {
			t.Fatalf("pinned counts = %d/%d, want 1/1", l, r)
		}
		ids := []string{eff[0].ID, eff[1].ID, eff[2].ID}
		if ids[0] != "b" || ids[1] != "c" || ids[2] != "a" {
			t.Errorf("effective order = %v, want [b c a]", ids)
		}
	})

	t.Run("left wins duplicates", func(t *testing.T) {
		eff, l, r := effectiveColumns(cols, []string{"a"}, []string{"a"})
		if l != 1 || r != 0 {
			t.Errorf("pinned counts = %d/%d, want 1/0", l, r)
		}
		if eff[0].ID != "a" {
			t.Errorf("effective[0] = %s, want a", eff[0].ID)
		}
	})

	t.Run("unknown ids ignored", func(t *testing.T) {
		eff, l, r := effectiveColumns(cols, []string{"zzz"}, nil)
		if l != 0 || r != 0 || len(eff) != 3 {
			t.Errorf("got %d cols, %d/%d pinned", len(eff), l, r)
		}
	})
}

func TestGridTickLifecycle(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()

	if !g.Tick() {
		t.Fatal("first Tick() = false, want a rendered frame")
	}
	if g.Tick() {
		t.Error("second Tick() = true, want clean no-op")
	}

	g.Invalidate()
	if !g.Tick() {
		t.Error("Tick() after Invalidate = false")
	}

	if err := g.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	g.Invalidate()
	if g.Tick() {
		t.Error("Tick() after Close = true")
	}
}

func TestGridZeroColumnsStaysDirty(t *testing.T) {
	g := New()
	defer g.Close()
	g.SetSource(&testSource{n: 5})
	g.Attach(&nopSurface{w: 400, h: 300})

	if !g.Tick() {
		t.Fatal("Tick() = false, want a clear pass")
	}
	// Zero columns keeps the grid dirty so it retries next frame.
	if !g.Dirty() {
		t.Error("Dirty() = false after zero-column frame, want true")
	}

	g.SetColumns([]Column{{ID: "a"}})
	g.Tick()
	if g.Dirty() {
		t.Error("Dirty() = true after columns arrived and rendered")
	}
}

func TestGridScrollClamp(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()

	g.ScrollTo(1e9, 1e9)
	if !g.Tick() {
		t.Fatal("Tick() = false")
	}

	top, left := g.Scroll()
	// 10 rows at 28px against a 264px center band.
	if want := 10*28.0 - (300.0 - 36); top != want {
		t.Errorf("scrollTop = %g, want clamped to %g", top, want)
	}
	// Content width 400 equals the viewport; no horizontal range.
	if left != 0 {
		t.Errorf("scrollLeft = %g, want 0", left)
	}

	// The clamp re-marks dirty for one follow-up frame, then settles.
	if !g.Dirty() {
		t.Fatal("Dirty() = false right after a clamping frame, want true")
	}
	g.Tick()
	if g.Dirty() {
		t.Error("Dirty() = true after the follow-up frame, want clean")
	}
}

func TestGridHitTest(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()

	if got := g.hitTest(50, 50); got.Kind != HitEmpty {
		t.Errorf("hitTest before first frame = %+v, want empty", got)
	}
	g.Tick()

	tests := []struct {
		name string
		x, y float64
		want HitTest
	}{
		{"header first column", 50, 20,
			HitTest{Kind: HitHeader, Row: -1, Col: 0, DataRow: -1, ColumnID: "id"}},
		{"resize handle at edge", 98, 20,
			HitTest{Kind: HitResizeHandle, Row: -1, Col: 0, DataRow: -1, ColumnID: "id"}},
		{"cell row one", 150, 70,
			HitTest{Kind: HitCell, Row: 1, Col: 1, DataRow: 1, ColumnID: "name"}},
		{"cell first column", 50, 70,
			HitTest{Kind: HitCell, Row: 1, Col: 0, DataRow: 1, ColumnID: "id"}},
		{"outside canvas", 500, 70, emptyHit()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.hitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("hitTest(%g, %g) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGridHitTestScrolled(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.ScrollTo(56, 0) // two rows down
	g.Tick()

	got := g.hitTest(150, 70)
	if got.Kind != HitCell || got.Row != 3 {
		t.Errorf("hitTest after scroll = %+v, want row 3", got)
	}
}

func TestGridSelectionDrag(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	var changes []Range
	g.Callbacks.OnSelectionChange = func(r Range) { changes = append(changes, r) }

	g.PointerDown(150, 70, Modifiers{})
	g.PointerMove(150, 126, Modifiers{})
	g.PointerUp(150, 126, Modifiers{})

	r, ok := g.Selection()
	if !ok {
		t.Fatal("no selection after drag")
	}
	want := Range{MinRow: 1, MaxRow: 3, MinCol: 1, MaxCol: 1}
	if r != want {
		t.Errorf("Selection() = %+v, want %+v", r, want)
	}
	if len(changes) < 2 {
		t.Errorf("OnSelectionChange fired %d times, want start plus extension", len(changes))
	}
	if changes[len(changes)-1] != want {
		t.Errorf("last change = %+v, want %+v", changes[len(changes)-1], want)
	}
}

func TestGridSelectionVeto(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.Callbacks.OnBeforeSelectionChange = func(Range) bool { return false }
	g.PointerDown(150, 70, Modifiers{})

	if _, ok := g.Selection(); ok {
		t.Error("selection started despite veto")
	}
}

func TestGridClickSynthesis(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	now := time.Unix(0, 0)
	g.now = func() time.Time { return now }

	var clicks, doubles int
	g.Callbacks.OnCellClick = func(*Envelope) { clicks++ }
	g.Callbacks.OnCellDoubleClick = func(*Envelope) { doubles++ }

	press := func() {
		g.PointerDown(50, 70, Modifiers{})
		g.PointerUp(50, 70, Modifiers{})
	}

	press()
	if clicks != 1 || doubles != 0 {
		t.Fatalf("after first click: clicks=%d doubles=%d", clicks, doubles)
	}

	now = now.Add(100 * time.Millisecond)
	press()
	if clicks != 2 || doubles != 1 {
		t.Fatalf("after quick second click: clicks=%d doubles=%d", clicks, doubles)
	}

	// A third click after the pair starts a fresh sequence.
	now = now.Add(100 * time.Millisecond)
	press()
	if doubles != 1 {
		t.Errorf("third click produced another double: doubles=%d", doubles)
	}

	// Slow clicks never pair up.
	now = now.Add(2 * time.Second)
	press()
	now = now.Add(time.Second)
	press()
	if doubles != 1 {
		t.Errorf("slow clicks paired: doubles=%d", doubles)
	}
}

func TestGridMovedPressIsNotClick(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	clicks := 0
	g.Callbacks.OnCellClick = func(*Envelope) { clicks++ }

	g.PointerDown(150, 70, Modifiers{})
	g.PointerMove(150, 126, Modifiers{})
	g.PointerUp(150, 126, Modifiers{})

	if clicks != 0 {
		t.Errorf("drag synthesized %d clicks, want 0", clicks)
	}
}

func TestGridHeaderClickTogglesSort(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	var states []SortState
	g.Callbacks.OnSortChange = func(s SortState) { states = append(states, s) }

	click := func(x float64) {
		g.PointerDown(x, 20, Modifiers{})
		g.PointerUp(x, 20, Modifiers{})
	}

	click(50)
	if got := g.Sort(); got != (SortState{ColumnID: "id"}) {
		t.Errorf("Sort() = %+v, want ascending id", got)
	}

	click(50)
	if got := g.Sort(); got != (SortState{ColumnID: "id", Descending: true}) {
		t.Errorf("Sort() = %+v, want descending id", got)
	}

	if len(states) != 2 {
		t.Errorf("OnSortChange fired %d times, want 2", len(states))
	}

	// The name column is not sortable.
	click(200)
	if got := g.Sort(); got.ColumnID != "id" {
		t.Errorf("unsortable header click changed sort to %+v", got)
	}
}

func TestGridSortVeto(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.Callbacks.OnBeforeSortChange = func(SortState) bool { return false }
	g.PointerDown(50, 20, Modifiers{})
	g.PointerUp(50, 20, Modifiers{})

	if got := g.Sort(); got != (SortState{}) {
		t.Errorf("Sort() = %+v after veto, want zero", got)
	}
}

func TestGridMiddlewareSwallowsHeaderClick(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.Use(func(e *Envelope, next func()) {
		if e.Channel == ChannelHeaderClick {
			return // swallow
		}
		next()
	})

	headerClicks := 0
	g.Callbacks.OnHeaderClick = func(*Envelope) { headerClicks++ }

	g.PointerDown(50, 20, Modifiers{})
	g.PointerUp(50, 20, Modifiers{})

	if headerClicks != 0 {
		t.Errorf("OnHeaderClick fired %d times, want 0", headerClicks)
	}
	if got := g.Sort(); got != (SortState{}) {
		t.Errorf("sort toggled to %+v despite swallowed event", got)
	}
}

func TestGridMiddlewareSwallowedPressDoesNotClick(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.Use(func(e *Envelope, next func()) {
		if e.Channel == ChannelPointerDown {
			return // swallow
		}
		next()
	})

	clicks := 0
	g.Callbacks.OnCellClick = func(*Envelope) { clicks++ }

	// A swallowed press never arms click synthesis; the matching release
	// on the same cell must not pair with it.
	g.PointerDown(150, 70, Modifiers{})
	g.PointerUp(150, 70, Modifiers{})

	if clicks != 0 {
		t.Errorf("OnCellClick fired %d times, want 0", clicks)
	}
	if _, ok := g.Selection(); ok {
		t.Error("selection started despite swallowed press")
	}
}

func TestGridPreventDefaultKeepsCallbacks(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.Use(func(e *Envelope, next func()) {
		if e.Channel == ChannelHeaderClick {
			e.PreventDefault()
		}
		next()
	})

	headerClicks := 0
	g.Callbacks.OnHeaderClick = func(*Envelope) { headerClicks++ }

	g.PointerDown(50, 20, Modifiers{})
	g.PointerUp(50, 20, Modifiers{})

	// PreventDefault suppresses the sort toggle but not the callback.
	if headerClicks != 1 {
		t.Errorf("OnHeaderClick fired %d times, want 1", headerClicks)
	}
	if got := g.Sort(); got != (SortState{}) {
		t.Errorf("sort toggled to %+v despite PreventDefault", got)
	}
}

func TestGridWheelScrolls(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.Tick()

	g.Wheel(0, 56, Modifiers{})
	top, _ := g.Scroll()
	if top != 56 {
		t.Errorf("scrollTop = %g after wheel, want 56", top)
	}
	if !g.Dirty() {
		t.Error("wheel did not mark the grid dirty")
	}

	// Scrolling above the top clamps immediately.
	g.Wheel(0, -500, Modifiers{})
	if top, _ := g.Scroll(); top != 0 {
		t.Errorf("scrollTop = %g, want 0", top)
	}
}

func TestGridKeyboard(t *testing.T) {
	g := newTestGrid(10)
	defer g.Close()
	g.Tick()

	g.SetSelection(Range{MinRow: 2, MaxRow: 2, MinCol: 0, MaxCol: 0})

	g.KeyDown("ArrowDown", Modifiers{})
	if r, _ := g.Selection(); r != (Range{MinRow: 3, MaxRow: 3, MinCol: 0, MaxCol: 0}) {
		t.Errorf("after ArrowDown Selection() = %+v", r)
	}

	g.KeyDown("ArrowDown", Modifiers{Shift: true})
	if r, _ := g.Selection(); r != (Range{MinRow: 3, MaxRow: 4, MinCol: 0, MaxCol: 0}) {
		t.Errorf("after shift ArrowDown Selection() = %+v", r)
	}

	g.KeyDown("ArrowRight", Modifiers{})
	if r, _ := g.Selection(); r != (Range{MinRow: 4, MaxRow: 4, MinCol: 1, MaxCol: 1}) {
		t.Errorf("after ArrowRight Selection() = %+v", r)
	}

	// Arrow keys clamp at the view edges.
	for i := 0; i < 5; i++ {
		g.KeyDown("ArrowRight", Modifiers{})
	}
	if r, _ := g.Selection(); r.MaxCol != 1 {
		t.Errorf("focus column = %d, want clamped to 1", r.MaxCol)
	}

	g.KeyDown("Escape", Modifiers{})
	if _, ok := g.Selection(); ok {
		t.Error("Escape did not clear the selection")
	}
}

func TestGridRowPinsRender(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.SetRowPins(PinRequest{Top: []string{"5"}, Bottom: []string{"80"}})
	g.Tick()

	// Display row 0 is the pinned row; its data row must resolve to 5.
	got := g.hitTest(150, 50) // first body row, directly under the header
	if got.Kind != HitCell || got.Row != 0 || got.DataRow != 5 {
		t.Errorf("pinned top hit = %+v, want display row 0 data row 5", got)
	}

	// Bottom pinned row hugs the viewport bottom edge.
	got = g.hitTest(150, 295)
	if got.Kind != HitCell || got.DataRow != 80 {
		t.Errorf("pinned bottom hit = %+v, want data row 80", got)
	}
}

func TestGridColumnPinsRender(t *testing.T) {
	g := New()
	defer g.Close()
	g.SetColumns([]Column{
		{ID: "a", Width: 80},
		{ID: "b", Width: 150},
		{ID: "c", Width: 150},
		{ID: "d", Width: 150},
		{ID: "e", Width: 100},
	})
	g.SetSource(&testSource{n: 50})
	g.SetColumnPins([]string{"a"}, []string{"e"})
	g.Attach(&nopSurface{w: 500, h: 300})
	g.ScrollTo(0, 100)
	g.Tick()

	// The left pane ignores horizontal scroll.
	got := g.hitTest(40, 50)
	if got.Kind != HitCell || got.ColumnID != "a" {
		t.Errorf("left pane hit = %+v, want column a", got)
	}

	// The right pane shows the last column regardless of scroll.
	got = g.hitTest(450, 50)
	if got.Kind != HitCell || got.ColumnID != "e" {
		t.Errorf("right pane hit = %+v, want column e", got)
	}

	// The center pane is shifted by the scroll offset: canvas x 150 is
	// content x 250, inside column c.
	got = g.hitTest(150, 50)
	if got.Kind != HitCell || got.ColumnID != "c" {
		t.Errorf("center pane hit = %+v, want column c", got)
	}
}
