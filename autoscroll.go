package grid

import "time"

// autoScroller is the drag auto-scroll timer. It runs only while a
// selection drag holds the pointer inside an edge zone: pointer motion
// arms it when the edge delta becomes nonzero and releases it the moment
// the delta returns to zero or the drag ends. Each tick applies the
// delta computed at the last pointer position and re-extends the
// selection at that position.
type autoScroller struct {
	ticker *time.Ticker
	done   chan struct{}
}

func (g *Grid) startAutoScrollLocked() {
	if g.auto != nil || g.closed {
		return
	}
	a := &autoScroller{
		ticker: time.NewTicker(g.opts.autoScrollInterval),
		done:   make(chan struct{}),
	}
	g.auto = a

	go func() {
		for {
			select {
			case <-a.done:
				return
			case <-a.ticker.C:
				g.autoScrollStep()
			}
		}
	}()
}

func (g *Grid) stopAutoScrollLocked() {
	if g.auto == nil {
		return
	}
	g.auto.ticker.Stop()
	close(g.auto.done)
	g.auto = nil
	g.autoDX, g.autoDY = 0, 0
}

// autoScrollStep applies one timer tick. The zero-delta guard covers the
// window between a tick firing and the pointer-move that stops the timer.
func (g *Grid) autoScrollStep() {
	g.mu.Lock()
	if g.auto == nil || !g.selection.Dragging() || g.surface == nil {
		g.mu.Unlock()
		return
	}
	dx, dy := g.autoDX, g.autoDY
	if dx == 0 && dy == 0 {
		g.mu.Unlock()
		return
	}

	g.scrollByLocked(dx, dy)

	// Re-resolve the pointer against the shifted geometry so the
	// selection keeps growing while the pointer is parked at the edge.
	hit := g.hitTest(g.lastPointerX, g.lastPointerY)
	cb := g.Callbacks
	g.mu.Unlock()

	if hit.Kind == HitCell {
		g.extendSelection(hit.Row, hit.Col, cb)
	}
}
