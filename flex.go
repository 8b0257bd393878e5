package grid

// Secondary layout pass for composite instructions. This is a small,
// single-level flex computation: children are measured up front, then
// placed along the main axis by justification and on the cross axis by
// alignment. Recursion happens through the registry, not here; each
// composite child is re-dispatched with its own synthesized geometry.

// Fallback size for composite children, which cannot be measured without
// laying them out.
const (
	fallbackChildW = 80.0
	fallbackChildH = 24.0
)

// Default chrome sizes used during measurement.
const (
	badgePadX     = 8.0
	badgePadY     = 3.0
	sparklineW    = 64.0
	sparklineH    = 16.0
	resizeHandleW = 5.0
)

// childQuad is the resolved position and size of one composite child.
type childQuad struct {
	X, Y, W, H float64
}

// measureChild returns the approximate size of an instruction. Text-bearing
// kinds measure against the surface's font; composites use a fixed
// fallback. Explicit Width/Height hints win over measurement.
func measureChild(s Surface, ins Instruction) (w, h float64) {
	switch ins.Kind {
	case KindText, KindStub:
		w, h = s.MeasureString(ins.Text)
	case KindBadge:
		tw, th := s.MeasureString(ins.Text)
		w = tw + 2*badgePadX
		h = th + 2*badgePadY
	case KindSparkline:
		w, h = sparklineW, sparklineH
	default:
		w, h = fallbackChildW, fallbackChildH
	}
	if ins.Width > 0 {
		w = ins.Width
	}
	if ins.Height > 0 {
		h = ins.Height
	}
	return w, h
}

// layoutFlex places ins.Children inside the content rectangle and returns
// one quad per child, in the original child order.
func layoutFlex(s Surface, content Rect, ins Instruction) []childQuad {
	n := len(ins.Children)
	if n == 0 {
		return nil
	}

	quads := make([]childQuad, n)
	mains := make([]float64, n)
	crosses := make([]float64, n)

	horizontal := ins.Direction.Horizontal()
	mainLen := content.W
	crossLen := content.H
	if !horizontal {
		mainLen = content.H
		crossLen = content.W
	}

	var totalMain float64
	for i, child := range ins.Children {
		w, h := measureChild(s, child)
		if horizontal {
			mains[i], crosses[i] = w, h
		} else {
			mains[i], crosses[i] = h, w
		}
		totalMain += mains[i]
	}
	totalMain += ins.Gap * float64(n-1)

	// Main-axis distribution.
	offset := 0.0
	between := ins.Gap
	free := mainLen - totalMain
	switch ins.Justify {
	case JustifyCenter:
		offset = free / 2
	case JustifyEnd:
		offset = free
	case JustifySpaceBetween:
		if n > 1 && free > 0 {
			between += free / float64(n-1)
		}
	case JustifySpaceEvenly:
		if free > 0 {
			extra := free / float64(n+1)
			offset = extra
			between += extra
		}
	}

	// Placement order reverses for *-reverse directions; quads stay in
	// child order.
	order := make([]int, n)
	for i := range order {
		if ins.Direction.Reversed() {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}

	pos := offset
	for _, i := range order {
		main := mains[i]
		cross := crosses[i]

		crossPos := 0.0
		switch ins.Align {
		case CrossCenter:
			crossPos = (crossLen - cross) / 2
		case CrossEnd:
			crossPos = crossLen - cross
		case CrossStretch:
			cross = crossLen
		}

		if horizontal {
			quads[i] = childQuad{
				X: content.X + pos,
				Y: content.Y + crossPos,
				W: main,
				H: cross,
			}
		} else {
			quads[i] = childQuad{
				X: content.X + crossPos,
				Y: content.Y + pos,
				W: cross,
				H: main,
			}
		}
		pos += main + between
	}

	return quads
}

// childRecord synthesizes a single-cell geometry record for re-dispatching
// a composite child through the registry.
func childRecord(parent CellRecord, q childQuad) CellRecord {
	return CellRecord{
		Row: parent.Row,
		Col: parent.Col,
		X:   q.X,
		Y:   q.Y,
		W:   q.W,
		H:   q.H,
	}
}
