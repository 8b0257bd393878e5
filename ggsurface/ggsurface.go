// Package ggsurface adapts a gg drawing context to the grid's Surface
// interface, so a grid renders into any gg.Context target (a window
// backbuffer, an offscreen pixmap, a PNG).
package ggsurface

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/grid"
)

// Surface wraps a *gg.Context as a grid.Surface.
// Not safe for concurrent use; neither is the underlying context.
type Surface struct {
	dc *gg.Context
}

var _ grid.Surface = (*Surface)(nil)

// New wraps dc and installs face as its font. The caller keeps ownership
// of the context and may draw to it directly between grid frames.
func New(dc *gg.Context, face text.Face) *Surface {
	dc.SetFont(face)
	return &Surface{dc: dc}
}

// Context returns the wrapped drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

func (s *Surface) Size() (w, h float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *Surface) Push() { s.dc.Push() }
func (s *Surface) Pop()  { s.dc.Pop() }

func (s *Surface) ClipRect(x, y, w, h float64) {
	s.dc.ClipRect(x, y, w, h)
}

func (s *Surface) Translate(dx, dy float64) {
	s.dc.Translate(dx, dy)
}

func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *Surface) FillRoundedRect(x, y, w, h, r float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *Surface) DrawString(str string, x, y float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawString(str, x, y)
}

func (s *Surface) DrawStringAnchored(str string, x, y, ax, ay float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, ay)
}

func (s *Surface) MeasureString(str string) (w, h float64) {
	return s.dc.MeasureString(str)
}
