package grid

import "image/color"

// Surface is the immediate-mode 2D drawing target the grid renders into.
//
// Implementations are expected to maintain a state stack: Push saves the
// current clip region and transform, Pop restores them. ClipRect intersects
// with the existing clip; Translate composes with the current transform.
// DrawString's y coordinate is the text baseline.
//
// The ggsurface subpackage adapts a gg drawing context; the recording
// subpackage provides a command-capturing implementation for tests.
// A Surface is only ever used from the goroutine driving the frame loop.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (w, h float64)

	// Push saves the current clip and transform state.
	Push()

	// Pop restores the most recently pushed state.
	Pop()

	// ClipRect intersects the clip region with the given rectangle,
	// expressed in current (transformed) coordinates.
	ClipRect(x, y, w, h float64)

	// Translate composes a translation into the current transform.
	Translate(dx, dy float64)

	// Clear fills the whole surface with a color, ignoring clip and
	// transform state.
	Clear(c color.Color)

	// FillRect fills a rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// FillRoundedRect fills a rectangle with rounded corners of radius r.
	FillRoundedRect(x, y, w, h, r float64, c color.Color)

	// StrokeRect outlines a rectangle with the given line width.
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)

	// StrokeLine draws a line segment with the given line width.
	StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color)

	// DrawString draws text with its baseline at (x, y).
	DrawString(s string, x, y float64, c color.Color)

	// DrawStringAnchored draws text with the anchor point (ax, ay) in
	// [0,1]² placed at (x, y): (0,0) is top-left, (0.5,0.5) the center.
	DrawStringAnchored(s string, x, y, ax, ay float64, c color.Color)

	// MeasureString returns the advance width and line height of s.
	MeasureString(s string) (w, h float64)
}
