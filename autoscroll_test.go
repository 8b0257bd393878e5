package grid

import "testing"

func (g *Grid) autoScrollRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.auto != nil
}

func TestAutoScrollDuringDrag(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.Tick()

	g.PointerDown(150, 70, Modifiers{})
	if g.autoScrollRunning() {
		t.Fatal("auto-scroll timer running before the pointer reached an edge")
	}

	// Park the pointer inside the bottom edge zone and step the timer by
	// hand instead of waiting for a tick.
	g.PointerMove(150, 295, Modifiers{})
	if !g.autoScrollRunning() {
		t.Fatal("auto-scroll timer not started inside the edge zone")
	}
	g.autoScrollStep()

	top, _ := g.Scroll()
	if top <= 0 {
		t.Errorf("scrollTop = %g after edge step, want > 0", top)
	}

	// The selection keeps extending at the parked pointer position as the
	// content shifts underneath it.
	r, ok := g.Selection()
	if !ok || r.MaxRow < 10 {
		t.Errorf("Selection() = %+v, %v, want focus at row 10 or beyond", r, ok)
	}

	g.PointerUp(150, 295, Modifiers{})
	if g.autoScrollRunning() {
		t.Error("auto-scroll timer still running after release")
	}
}

func TestAutoScrollTimerReleasedAtZeroDelta(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.Tick()

	g.PointerDown(150, 70, Modifiers{})

	g.PointerMove(150, 295, Modifiers{})
	if !g.autoScrollRunning() {
		t.Fatal("auto-scroll timer not started inside the edge zone")
	}

	// Leaving the edge zone mid-drag releases the timer immediately.
	g.PointerMove(200, 150, Modifiers{})
	if g.autoScrollRunning() {
		t.Error("auto-scroll timer still running with a zero edge delta")
	}

	// Re-entering the edge zone re-arms it.
	g.PointerMove(150, 295, Modifiers{})
	if !g.autoScrollRunning() {
		t.Error("auto-scroll timer not re-armed in the edge zone")
	}
	g.PointerUp(150, 295, Modifiers{})
}

func TestAutoScrollIdleInCenter(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.Tick()

	g.PointerDown(150, 70, Modifiers{})
	g.PointerMove(200, 150, Modifiers{}) // well inside the viewport
	if g.autoScrollRunning() {
		t.Error("auto-scroll timer armed with the pointer in the center")
	}
	g.autoScrollStep()

	if top, _ := g.Scroll(); top != 0 {
		t.Errorf("scrollTop = %g with pointer in the center, want 0", top)
	}
	g.PointerUp(200, 150, Modifiers{})
}

func TestAutoScrollStepWithoutDrag(t *testing.T) {
	g := newTestGrid(100)
	defer g.Close()
	g.Tick()

	// A stray step outside any drag is a no-op.
	g.autoScrollStep()
	if top, _ := g.Scroll(); top != 0 {
		t.Errorf("scrollTop = %g, want 0", top)
	}
}
