// Package grid renders large tabular datasets onto an immediate-mode 2D
// drawing surface at interactive frame rates.
//
// # Overview
//
// grid is the rendering core of a virtualized data table: it consumes
// per-frame cell geometry from a layout engine, decomposes the canvas into
// frozen/scrollable panes, and issues clipped, translated draw calls for
// every visible cell. It is designed for 10^4 to 10^6 row datasets: only
// the visible window is ever laid out or drawn.
//
// # Quick Start
//
//	dc := gg.NewContext(800, 600)
//	g := grid.New()
//	g.SetColumns(cols)
//	g.SetSource(src)
//	g.Attach(ggsurface.New(dc, face))
//	g.Tick() // one frame; or g.Run(ctx) for a timed loop
//
// # Architecture
//
// The per-frame pipeline runs in a fixed order: the render scheduler gates
// on the dirty flag, the layout bridge calls the engine and snapshots its
// output, row pins and the view index are resolved, the canvas is
// decomposed into clipped panes, and cell instructions are resolved and
// dispatched through the renderer registry, with the selection overlay
// drawn last.
//
// The layout engine is a black box behind the [Engine] interface; a
// software reference engine is built in and used when none is injected.
// The drawing surface is abstracted behind [Surface]; the ggsurface
// subpackage adapts a gg drawing context, and the recording subpackage
// captures draw commands for tests.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Cell
// geometry in the layout buffer is in content space; pane translation
// (scroll offsets, right-pin shifts) is applied by the region decomposer
// at draw time.
//
// # Concurrency
//
// A Grid is driven by a single goroutine (the caller's frame loop or
// [Grid.Run]). Input entry points and the auto-scroll timer take the
// session lock, so they may be called from other goroutines.
package grid

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
