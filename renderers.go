package grid

import "image/color"

// Built-in drawing routines, one per instruction kind. All of them draw
// into the cell record's geometry, which is already in the coordinate
// space of the active region pass.

func fgColor(ins Instruction, fallback color.Color) color.Color {
	if ins.Foreground != nil {
		return ins.Foreground
	}
	return fallback
}

// anchorForAlign maps a content alignment to a horizontal text anchor and
// the x position inside the content rectangle.
func anchorForAlign(content Rect, align Align, padX float64) (x, ax float64) {
	switch align {
	case AlignCenter:
		return content.X + content.W/2, 0.5
	case AlignRight:
		return content.MaxX() - padX, 1
	default:
		return content.X + padX, 0
	}
}

func drawText(_ *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	if ins.Text == "" {
		return
	}
	content := rec.ContentRect()
	padX := 0.0
	if rec.Padding == ([4]float64{}) {
		padX = th.CellPaddingX
	}
	x, ax := anchorForAlign(content, rec.ContentAlign, padX)
	s.DrawStringAnchored(ins.Text, x, content.Y+content.H/2, ax, 0.5, fgColor(ins, th.Text))
}

func drawBadge(_ *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	tw, lh := s.MeasureString(ins.Text)
	w := tw + 2*badgePadX
	h := lh + 2*badgePadY
	content := rec.ContentRect()
	if w > content.W {
		w = content.W
	}
	if h > content.H {
		h = content.H
	}

	var x float64
	switch rec.ContentAlign {
	case AlignCenter:
		x = content.X + (content.W-w)/2
	case AlignRight:
		x = content.MaxX() - w - th.CellPaddingX
	default:
		x = content.X + th.CellPaddingX
	}
	if x < content.X {
		x = content.X
	}
	y := content.Y + (content.H-h)/2

	radius := ins.CornerRadius
	if radius == 0 {
		radius = h / 2
	}
	bg := ins.Background
	if bg == nil {
		bg = th.BadgeBackground
	}
	s.FillRoundedRect(x, y, w, h, radius, bg)
	if ins.BorderWidth > 0 && ins.BorderColor != nil {
		s.StrokeRect(x, y, w, h, ins.BorderWidth, ins.BorderColor)
	}
	s.DrawStringAnchored(ins.Text, x+w/2, y+h/2, 0.5, 0.5, fgColor(ins, th.BadgeText))
}

func drawSparkline(_ *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	if len(ins.Values) < 2 {
		return
	}
	content := rec.ContentRect().Inset(3, th.CellPaddingX, 3, th.CellPaddingX)
	if content.Empty() {
		return
	}

	lo, hi := ins.Values[0], ins.Values[0]
	for _, v := range ins.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	stroke := fgColor(ins, th.SparklineStroke)
	step := content.W / float64(len(ins.Values)-1)
	px := content.X
	py := content.MaxY() - (ins.Values[0]-lo)/span*content.H
	for i := 1; i < len(ins.Values); i++ {
		x := content.X + float64(i)*step
		y := content.MaxY() - (ins.Values[i]-lo)/span*content.H
		s.StrokeLine(px, py, x, y, 1, stroke)
		px, py = x, y
	}
}

func drawStub(_ *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	content := rec.ContentRect().Inset(3, 3, 3, 3)
	if content.Empty() {
		return
	}
	bg := ins.Background
	if bg == nil {
		bg = th.StubBackground
	}
	s.FillRect(content.X, content.Y, content.W, content.H, bg)
	if ins.Text != "" {
		s.DrawStringAnchored(ins.Text, content.X+content.W/2, content.Y+content.H/2,
			0.5, 0.5, fgColor(ins, th.MutedText))
	}
}

// drawBox fills background and border, then stacks its children in a
// single vertical column with no gap, border-box: children get the full
// inner width and their measured height.
func drawBox(reg *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	r := rec.Rect()
	if ins.Background != nil {
		if ins.CornerRadius > 0 {
			s.FillRoundedRect(r.X, r.Y, r.W, r.H, ins.CornerRadius, ins.Background)
		} else {
			s.FillRect(r.X, r.Y, r.W, r.H, ins.Background)
		}
	}
	if ins.BorderWidth > 0 {
		bc := ins.BorderColor
		if bc == nil {
			bc = th.GridLine
		}
		s.StrokeRect(r.X, r.Y, r.W, r.H, ins.BorderWidth, bc)
	}

	inner := r.Inset(
		ins.BorderWidth+ins.Padding.Top,
		ins.BorderWidth+ins.Padding.Right,
		ins.BorderWidth+ins.Padding.Bottom,
		ins.BorderWidth+ins.Padding.Left,
	)
	y := inner.Y
	for _, child := range ins.Children {
		_, h := measureChild(s, child)
		if y+h > inner.MaxY() {
			h = inner.MaxY() - y
		}
		if h <= 0 {
			break
		}
		reg.Draw(s, childRecord(rec, childQuad{X: inner.X, Y: y, W: inner.W, H: h}), child, th)
		y += h
	}
}

func drawFlex(reg *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	r := rec.Rect()
	if ins.Background != nil {
		s.FillRect(r.X, r.Y, r.W, r.H, ins.Background)
	}
	content := r.Inset(ins.Padding.Top, ins.Padding.Right, ins.Padding.Bottom, ins.Padding.Left)
	for i, q := range layoutFlex(s, content, ins) {
		reg.Draw(s, childRecord(rec, q), ins.Children[i], th)
	}
}

// drawStack overlays children in order, each given the full content box.
func drawStack(reg *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme) {
	content := rec.Rect().Inset(ins.Padding.Top, ins.Padding.Right, ins.Padding.Bottom, ins.Padding.Left)
	q := childQuad{X: content.X, Y: content.Y, W: content.W, H: content.H}
	for _, child := range ins.Children {
		reg.Draw(s, childRecord(rec, q), child, th)
	}
}
