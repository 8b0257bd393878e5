package grid

// HitKind classifies what a canvas point maps to.
type HitKind uint8

const (
	HitEmpty HitKind = iota
	HitCell
	HitHeader
	HitResizeHandle
)

// hitKindNames maps HitKind values to their string representation.
var hitKindNames = [...]string{
	HitEmpty:        "empty",
	HitCell:         "cell",
	HitHeader:       "header",
	HitResizeHandle: "resize-handle",
}

// String returns the string representation of a HitKind.
func (k HitKind) String() string {
	if int(k) < len(hitKindNames) {
		return hitKindNames[k]
	}
	return "unknown"
}

// HitTest is the result of resolving a pointer position against the most
// recently rendered frame's geometry.
type HitTest struct {
	Kind HitKind

	// Row is the display-row index for cell hits; -1 otherwise.
	Row int
	// Col is the effective column index for cell and header hits; -1
	// otherwise.
	Col int
	// DataRow is the underlying data-row index for cell hits; -1 otherwise.
	DataRow int
	// ColumnID is the column identity for cell and header hits.
	ColumnID string
}

func emptyHit() HitTest {
	return HitTest{Kind: HitEmpty, Row: -1, Col: -1, DataRow: -1}
}

// hitTest resolves (x, y) against the cached geometry of the last drawn
// frame; it never recomputes layout. Pane translations are undone per
// region before record scanning, so hits land correctly inside frozen and
// scrolled panes alike.
func (g *Grid) hitTest(x, y float64) HitTest {
	f := &g.frame
	if f.Columns == 0 || len(g.colRegions) == 0 || len(g.rowRegions) == 0 {
		return emptyHit()
	}

	colRegion, ok := regionAt(g.colRegions, x, y)
	if !ok {
		return emptyHit()
	}
	rowRegion, ok := regionAt(g.rowRegions, x, y)
	if !ok {
		return emptyHit()
	}

	// Composed pane translation, and the pointer mapped back to content
	// space for the header scan.
	shift := colRegion.Translate.Add(rowRegion.Translate)
	cx := x - shift.X
	cy := y - shift.Y

	if rowRegion.Name == RegionHeader {
		for c := 0; c < f.Columns; c++ {
			rec := f.Header(c)
			if !g.colSegmentMatch(colRegion.Name, c) {
				continue
			}
			r := rec.Rect()
			if cy < r.Y || cy >= r.MaxY() {
				continue
			}
			if cx >= r.MaxX()-resizeHandleW && cx < r.MaxX()+resizeHandleW {
				return HitTest{Kind: HitResizeHandle, Row: -1, Col: c, DataRow: -1, ColumnID: g.effective[c].ID}
			}
			if cx >= r.X && cx < r.MaxX() {
				return HitTest{Kind: HitHeader, Row: -1, Col: c, DataRow: -1, ColumnID: g.effective[c].ID}
			}
		}
		return emptyHit()
	}

	for i := 0; i < f.BodyCount(); i++ {
		rec := f.Body(i)
		if !g.colSegmentMatch(colRegion.Name, rec.Col) {
			continue
		}
		if !g.rowSegmentMatch(rowRegion.Name, rec.Row) {
			continue
		}
		if rec.Rect().Translate(shift).Contains(x, y) {
			return HitTest{
				Kind:     HitCell,
				Row:      rec.Row,
				Col:      rec.Col,
				DataRow:  f.DataRow(rec.Row),
				ColumnID: g.effective[rec.Col].ID,
			}
		}
	}
	return emptyHit()
}

// regionAt finds the region whose clip rect contains the point.
func regionAt(regions []Region, x, y float64) (Region, bool) {
	for _, r := range regions {
		if r.Clip.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// colSegmentMatch reports whether column index c is drawn in the named
// column pane.
func (g *Grid) colSegmentMatch(name RegionName, c int) bool {
	switch name {
	case RegionLeft:
		return c < g.leftPinned
	case RegionRight:
		return c >= len(g.effective)-g.rightPinned
	default:
		return c >= g.leftPinned && c < len(g.effective)-g.rightPinned
	}
}

// rowSegmentMatch reports whether display row d is drawn in the named row
// pane.
func (g *Grid) rowSegmentMatch(name RegionName, d int) bool {
	total := g.pins.Total()
	switch name {
	case RegionTop:
		return d < g.pins.TopCount()
	case RegionBottom:
		return d >= total-g.pins.BottomCount()
	case RegionRowCenter:
		return d >= g.pins.TopCount() && d < total-g.pins.BottomCount()
	default:
		return false
	}
}
