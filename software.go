package grid

import "math"

// SoftwareEngine is the built-in reference layout engine. It resolves
// column widths with a single-level flexbox pass, computes the visible row
// window from the scroll state, and writes the layout buffer in the shared
// stride format.
//
// It is used when no engine is injected via [WithEngine]. ComputeFrame is
// a pure function of its request: identical inputs produce byte-identical
// buffers. Not safe for concurrent use.
type SoftwareEngine struct {
	buf   []float32
	index []int
}

// NewSoftwareEngine creates a new software layout engine.
func NewSoftwareEngine() *SoftwareEngine {
	return &SoftwareEngine{}
}

// LayoutBuffer returns the engine-owned layout buffer. Valid for
// synchronous reads only, until the next ComputeFrame call.
func (e *SoftwareEngine) LayoutBuffer() []float32 { return e.buf }

// ViewIndex returns the engine-owned view index array, under the same
// validity rule as LayoutBuffer.
func (e *SoftwareEngine) ViewIndex() []int { return e.index }

// ComputeFrame lays out the header and the visible row window.
func (e *SoftwareEngine) ComputeFrame(req FrameRequest) (FrameMeta, error) {
	nCols := len(req.Columns)
	if nCols == 0 {
		e.buf = e.buf[:0]
		e.index = e.index[:0]
		return FrameMeta{}, nil
	}

	rowH := req.RowHeight
	if rowH <= 0 {
		rowH = 28
	}
	headerH := req.HeaderHeight
	if headerH <= 0 {
		headerH = rowH
	}

	total := len(req.Index)
	pt := min(max(req.PinnedTop, 0), total)
	pb := min(max(req.PinnedBottom, 0), total-pt)
	scrollable := total - pt - pb

	centerH := req.ViewportHeight - headerH - float64(pt+pb)*rowH
	if centerH < 0 {
		centerH = 0
	}
	visible := int(math.Ceil(centerH/rowH)) + 1

	firstMiddle := int(math.Floor(req.ScrollTop / rowH))
	if firstMiddle < 0 {
		firstMiddle = 0
	}

	start, end := pt, pt
	if scrollable > 0 {
		start = pt + min(max(firstMiddle-req.Overscan, 0), scrollable-1)
		end = min(pt+firstMiddle+visible+req.Overscan, total-pb)
		if end < start {
			end = start
		}
	}

	widths := solveColumns(req.Columns, req.ViewportWidth)
	xs := make([]float64, nCols)
	for c := 1; c < nCols; c++ {
		xs[c] = xs[c-1] + widths[c-1]
	}

	bodyRows := pt + (end - start) + pb
	cellCount := nCols + bodyRows*nCols
	need := cellCount * Stride
	if cap(e.buf) < need {
		e.buf = make([]float32, need)
	}
	e.buf = e.buf[:need]

	for c, col := range req.Columns {
		writeRecord(e.buf, c, CellRecord{
			Row: headerRowSentinel, Col: c,
			X: xs[c], Y: 0, W: widths[c], H: headerH,
			ContentAlign: col.Align,
		})
	}

	i := nCols
	emit := func(displayRow int, y float64) {
		for c, col := range req.Columns {
			writeRecord(e.buf, i, CellRecord{
				Row: displayRow, Col: c,
				X: xs[c], Y: y, W: widths[c], H: rowH,
				ContentAlign: col.Align,
			})
			i++
		}
	}

	// Pinned top rows sit statically below the header; middle rows are in
	// content space, shifted at draw time by the center pane's -scrollTop;
	// pinned bottom rows hug the viewport's bottom edge.
	for d := 0; d < pt; d++ {
		emit(d, headerH+float64(d)*rowH)
	}
	for d := start; d < end; d++ {
		emit(d, headerH+float64(d)*rowH)
	}
	for k := 0; k < pb; k++ {
		d := total - pb + k
		emit(d, req.ViewportHeight-float64(pb-k)*rowH)
	}

	e.index = append(e.index[:0], req.Index...)

	return FrameMeta{
		CellCount:   cellCount,
		FirstRow:    start,
		RowHeight:   rowH,
		TotalHeight: headerH + float64(total)*rowH,
		VisibleRows: bodyRows,
	}, nil
}

// solveColumns resolves column widths against the viewport with a
// single-level flexbox pass: fixed widths first, then leftover space
// distributed by FlexGrow (overflow reclaimed by FlexShrink), with min/max
// clamping via a freeze-and-redistribute loop.
//
// An auto column (Width 0) with no explicit FlexGrow defaults to grow 1,
// so unconfigured columns share the viewport evenly.
func solveColumns(cols []Column, viewport float64) []float64 {
	n := len(cols)
	widths := make([]float64, n)
	grow := make([]float64, n)
	shrink := make([]float64, n)

	var total float64
	for i, c := range cols {
		widths[i] = clampWidth(c, c.Width)
		grow[i] = c.FlexGrow
		if c.Width == 0 && c.FlexGrow == 0 {
			grow[i] = 1
		}
		shrink[i] = c.FlexShrink
		total += widths[i]
	}

	free := viewport - total
	switch {
	case free > 0:
		distribute(cols, widths, grow, free, true)
	case free < 0:
		// Shrink weight is factor × basis, flexbox style.
		weights := make([]float64, n)
		for i := range cols {
			weights[i] = shrink[i] * widths[i]
		}
		distribute(cols, widths, weights, free, false)
	}

	return widths
}

// distribute hands out delta (positive when growing) proportionally to
// weights, freezing columns that hit their min/max clamp and
// redistributing the remainder until stable.
func distribute(cols []Column, widths, weights []float64, delta float64, growing bool) {
	frozen := make([]bool, len(cols))
	for {
		var totalWeight float64
		for i := range cols {
			if !frozen[i] {
				totalWeight += weights[i]
			}
		}
		if totalWeight == 0 || delta == 0 {
			return
		}

		clamped := false
		unit := delta / totalWeight
		for i, c := range cols {
			if frozen[i] || weights[i] == 0 {
				continue
			}
			target := widths[i] + unit*weights[i]
			limited := clampWidth(c, target)
			if limited != target {
				delta -= limited - widths[i]
				widths[i] = limited
				frozen[i] = true
				clamped = true
			}
		}
		if clamped {
			continue
		}

		for i := range cols {
			if frozen[i] || weights[i] == 0 {
				continue
			}
			widths[i] += unit * weights[i]
		}
		return
	}
}

func clampWidth(c Column, w float64) float64 {
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}
