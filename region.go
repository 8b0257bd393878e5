package grid

// RegionName tags one visual pane of the decomposed canvas.
type RegionName uint8

const (
	// Column panes.
	RegionLeft RegionName = iota
	RegionCenter
	RegionRight

	// Row panes. RegionRowCenter is the scrollable middle band; it shares
	// the "center" label with the column pane but is a distinct tag.
	RegionHeader
	RegionTop
	RegionRowCenter
	RegionBottom
)

// regionNames maps RegionName values to their string representation.
var regionNames = [...]string{
	RegionLeft:      "left",
	RegionCenter:    "center",
	RegionRight:     "right",
	RegionHeader:    "header",
	RegionTop:       "top",
	RegionRowCenter: "center",
	RegionBottom:    "bottom",
}

// String returns the string representation of a RegionName.
func (n RegionName) String() string {
	if int(n) < len(regionNames) {
		return regionNames[n]
	}
	return "unknown"
}

// Region scopes drawing and hit-testing to one frozen or scrollable pane:
// a clip rectangle in canvas space plus a translate offset applied to
// content-space geometry before drawing.
type Region struct {
	Name      RegionName
	Clip      Rect
	Translate Vec
}

// DecomposeColumns splits the canvas horizontally into up to three column
// panes from the header records of the current frame.
//
// With zero pinned counts the result collapses to a single center region
// spanning the full canvas, identical to a system with no pinning at all.
// The clip rectangles of the returned regions tile the canvas width
// exactly, with no overlap and no gap.
func DecomposeColumns(f *Frame, leftPinned, rightPinned int, scrollLeft, canvasW, canvasH float64) []Region {
	cols := f.Columns

	if leftPinned < 0 {
		leftPinned = 0
	}
	if rightPinned < 0 {
		rightPinned = 0
	}
	if leftPinned+rightPinned > cols {
		rightPinned = cols - leftPinned
	}

	if leftPinned == 0 && rightPinned == 0 {
		return []Region{{
			Name:      RegionCenter,
			Clip:      Rect{X: 0, Y: 0, W: canvasW, H: canvasH},
			Translate: Vec{X: -scrollLeft},
		}}
	}

	var leftWidth, rightWidth, totalWidth float64
	for c := 0; c < cols; c++ {
		w := f.Header(c).W
		totalWidth += w
		if c < leftPinned {
			leftWidth += w
		}
		if c >= cols-rightPinned {
			rightWidth += w
		}
	}

	regions := make([]Region, 0, 3)
	if leftPinned > 0 {
		regions = append(regions, Region{
			Name: RegionLeft,
			Clip: Rect{X: 0, Y: 0, W: leftWidth, H: canvasH},
		})
	}
	regions = append(regions, Region{
		Name:      RegionCenter,
		Clip:      Rect{X: leftWidth, Y: 0, W: canvasW - leftWidth - rightWidth, H: canvasH},
		Translate: Vec{X: -scrollLeft},
	})
	if rightPinned > 0 {
		regions = append(regions, Region{
			Name:      RegionRight,
			Clip:      Rect{X: canvasW - rightWidth, Y: 0, W: rightWidth, H: canvasH},
			Translate: Vec{X: canvasW - totalWidth},
		})
	}
	return regions
}

// DecomposeRows splits the canvas vertically: a header pane that is always
// present, static top/bottom panes for pinned rows, and the sole
// scrollable middle pane carrying the -scrollTop translate.
//
// rowHeight is the effective row height reported by the engine. The clip
// rectangles tile the canvas height exactly.
func DecomposeRows(headerHeight float64, pinnedTop, pinnedBottom int, rowHeight, scrollTop, canvasW, canvasH float64) []Region {
	topH := float64(pinnedTop) * rowHeight
	bottomH := float64(pinnedBottom) * rowHeight

	// Degenerate viewports: pinned segments may not consume the header or
	// each other.
	if headerHeight > canvasH {
		headerHeight = canvasH
	}
	avail := canvasH - headerHeight
	if topH > avail {
		topH = avail
	}
	if bottomH > avail-topH {
		bottomH = avail - topH
	}

	regions := make([]Region, 0, 4)
	regions = append(regions, Region{
		Name: RegionHeader,
		Clip: Rect{X: 0, Y: 0, W: canvasW, H: headerHeight},
	})
	if topH > 0 {
		regions = append(regions, Region{
			Name: RegionTop,
			Clip: Rect{X: 0, Y: headerHeight, W: canvasW, H: topH},
		})
	}
	regions = append(regions, Region{
		Name:      RegionRowCenter,
		Clip:      Rect{X: 0, Y: headerHeight + topH, W: canvasW, H: canvasH - headerHeight - topH - bottomH},
		Translate: Vec{Y: -scrollTop},
	})
	if bottomH > 0 {
		regions = append(regions, Region{
			Name: RegionBottom,
			Clip: Rect{X: 0, Y: canvasH - bottomH, W: canvasW, H: bottomH},
		})
	}
	return regions
}

// Intersect combines a column pane with a row pane into one draw pass:
// the clip is the rectangle intersection, the translate offsets compose.
// ok is false when the intersection has no area and the pass is skipped.
func Intersect(col, row Region) (clip Rect, translate Vec, ok bool) {
	clip = col.Clip.Intersect(row.Clip)
	if clip.Empty() {
		return Rect{}, Vec{}, false
	}
	return clip, col.Translate.Add(row.Translate), true
}

// beginRegion pushes surface state for one draw pass: clip first (in
// canvas space), then the composed translate. Callers must Pop after.
func beginRegion(s Surface, clip Rect, translate Vec) {
	s.Push()
	s.ClipRect(clip.X, clip.Y, clip.W, clip.H)
	s.Translate(translate.X, translate.Y)
}

// viewportSpace undoes a pass's translate so viewport-space content (e.g.
// a full-canvas overlay) is never shifted by pane translation. The
// returned function restores the pass transform.
func viewportSpace(s Surface, translate Vec) func() {
	inv := translate.Neg()
	s.Translate(inv.X, inv.Y)
	return func() { s.Translate(translate.X, translate.Y) }
}
