package grid

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	g := New()
	defer g.Close()

	if g.opts.rowHeight != 28 || g.opts.headerHeight != 36 {
		t.Errorf("default heights = %g/%g, want 28/36", g.opts.rowHeight, g.opts.headerHeight)
	}
	if g.opts.overscan != 4 {
		t.Errorf("default overscan = %d, want 4", g.opts.overscan)
	}
	if _, ok := g.bridge.engine.(*SoftwareEngine); !ok {
		t.Errorf("default engine is %T, want *SoftwareEngine", g.bridge.engine)
	}
	if g.theme == nil || g.registry == nil {
		t.Error("default theme or registry missing")
	}
}

func TestNewWithEngine(t *testing.T) {
	eng := &fakeEngine{}
	g := New(WithEngine(eng))
	defer g.Close()

	if g.bridge.engine != eng {
		t.Error("WithEngine did not install the injected engine")
	}
}

func TestNewWithOptions(t *testing.T) {
	th := DefaultTheme()
	reg := NewRegistry()
	g := New(
		WithTheme(th),
		WithRegistry(reg),
		WithRowHeight(40),
		WithHeaderHeight(50),
		WithOverscan(2),
		WithFrameInterval(time.Second/30),
		WithAutoScroll(20*time.Millisecond, 16, 24),
	)
	defer g.Close()

	if g.theme != th {
		t.Error("WithTheme ignored")
	}
	if g.registry != reg {
		t.Error("WithRegistry ignored")
	}
	if g.opts.rowHeight != 40 || g.opts.headerHeight != 50 || g.opts.overscan != 2 {
		t.Errorf("opts = %+v", g.opts)
	}
	if g.opts.frameInterval != time.Second/30 {
		t.Errorf("frameInterval = %v", g.opts.frameInterval)
	}
	if g.opts.autoScrollZone != 16 || g.opts.autoScrollMaxStep != 24 {
		t.Errorf("auto-scroll opts = %+v", g.opts)
	}
}

func TestOptionsRejectInvalid(t *testing.T) {
	g := New(
		WithRowHeight(-1),
		WithHeaderHeight(0),
		WithOverscan(-5),
		WithFrameInterval(0),
		WithTheme(nil),
	)
	defer g.Close()

	if g.opts.rowHeight != 28 || g.opts.headerHeight != 36 || g.opts.overscan != 4 {
		t.Errorf("invalid option values overrode defaults: %+v", g.opts)
	}
	if g.theme == nil {
		t.Error("WithTheme(nil) removed the default theme")
	}
}
