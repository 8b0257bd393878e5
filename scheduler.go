package grid

import (
	"context"
	"time"
)

// The grid is a two-state machine: Clean or Dirty. Every state mutation
// marks it Dirty; a clean tick is free. One tick renders at most one
// frame regardless of how many changes accumulated since the last one.

// Attach binds the drawing surface and forces a redraw. Pass nil to
// detach.
func (g *Grid) Attach(s Surface) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface = s
	g.dirty = s != nil
}

// Detach unbinds the drawing surface. Ticks become no-ops until a surface
// is attached again.
func (g *Grid) Detach() {
	g.Attach(nil)
}

// Invalidate marks the grid dirty without changing any state, forcing a
// redraw on the next tick.
func (g *Grid) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty = true
}

// Dirty reports whether the next tick will render.
func (g *Grid) Dirty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dirty && g.surface != nil && !g.closed
}

// Tick renders one frame if the grid is dirty and a surface is attached.
// It reports whether a frame was rendered. Hosts with their own frame
// loop (a game engine update, a display-link callback) call Tick from it;
// hosts without one use [Grid.Run].
func (g *Grid) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tickLocked()
}

func (g *Grid) tickLocked() bool {
	if g.closed || g.surface == nil || !g.dirty {
		return false
	}
	g.dirty = false
	if g.renderFrame() {
		// The frame asked for a follow-up pass (zero columns, or a
		// scroll clamp changed the offsets after layout).
		g.dirty = true
	}
	return true
}

// Run drives the frame loop at the configured interval until ctx is
// canceled or the grid is closed. It blocks; run it on its own goroutine.
func (g *Grid) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.opts.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.mu.Lock()
			closed := g.closed
			if !closed {
				g.tickLocked()
			}
			g.mu.Unlock()
			if closed {
				return nil
			}
		}
	}
}
