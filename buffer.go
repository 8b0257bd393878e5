package grid

// The layout buffer is a flat array of float32 cell records with a fixed
// compile-time stride, shared verbatim with the layout engine. The first
// columnCount records describe header cells; the rest are one record per
// visible body cell, row-major.

// Stride is the number of float32 fields per cell record.
const Stride = 16

// Field offsets within each record.
const (
	fieldRow = iota
	fieldCol
	fieldX
	fieldY
	fieldWidth
	fieldHeight
	fieldAlign
	fieldPaddingTop
	fieldPaddingRight
	fieldPaddingBottom
	fieldPaddingLeft
	fieldBorderTop
	fieldBorderRight
	fieldBorderBottom
	fieldBorderLeft
	fieldReserved
)

// headerRowSentinel marks header records, whose row field carries no
// display-row meaning.
const headerRowSentinel = -1

// Align is the horizontal content alignment encoded in a cell record.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the string representation of an Align.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// CellRecord is one decoded entry of the layout buffer.
type CellRecord struct {
	// Row is the display-row index, or -1 for header records.
	Row int
	// Col is the column index within the effective (pin-ordered) columns.
	Col int

	X, Y, W, H float64

	ContentAlign Align

	// Padding and Border are in CSS order: top, right, bottom, left.
	Padding [4]float64
	Border  [4]float64
}

// Rect returns the record's geometry as a rectangle.
func (c CellRecord) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// ContentRect returns the record's geometry inset by its padding.
func (c CellRecord) ContentRect() Rect {
	return c.Rect().Inset(c.Padding[0], c.Padding[1], c.Padding[2], c.Padding[3])
}

// writeRecord encodes a record into buf at cell index i.
// Exercised by engines writing the buffer; readers use decodeRecord.
func writeRecord(buf []float32, i int, c CellRecord) {
	base := i * Stride
	buf[base+fieldRow] = float32(c.Row)
	buf[base+fieldCol] = float32(c.Col)
	buf[base+fieldX] = float32(c.X)
	buf[base+fieldY] = float32(c.Y)
	buf[base+fieldWidth] = float32(c.W)
	buf[base+fieldHeight] = float32(c.H)
	buf[base+fieldAlign] = float32(c.ContentAlign)
	for k := 0; k < 4; k++ {
		buf[base+fieldPaddingTop+k] = float32(c.Padding[k])
		buf[base+fieldBorderTop+k] = float32(c.Border[k])
	}
	buf[base+fieldReserved] = 0
}

// decodeRecord decodes the record at cell index i.
func decodeRecord(buf []float32, i int) CellRecord {
	base := i * Stride
	c := CellRecord{
		Row:          int(buf[base+fieldRow]),
		Col:          int(buf[base+fieldCol]),
		X:            float64(buf[base+fieldX]),
		Y:            float64(buf[base+fieldY]),
		W:            float64(buf[base+fieldWidth]),
		H:            float64(buf[base+fieldHeight]),
		ContentAlign: Align(buf[base+fieldAlign]),
	}
	for k := 0; k < 4; k++ {
		c.Padding[k] = float64(buf[base+fieldPaddingTop+k])
		c.Border[k] = float64(buf[base+fieldBorderTop+k])
	}
	return c
}

// Frame is the frame-local copy of one engine output: the layout buffer,
// the view index array, and the scalar metadata. The engine's own storage
// is only valid until its next compute call, so the bridge copies both
// arrays here once per dirty cycle.
type Frame struct {
	Meta    FrameMeta
	Columns int

	buf   []float32
	index []int
}

// copyFrom replaces the frame contents, reusing storage when possible.
func (f *Frame) copyFrom(meta FrameMeta, columns int, buf []float32, index []int) {
	f.Meta = meta
	f.Columns = columns
	f.buf = append(f.buf[:0], buf...)
	f.index = append(f.index[:0], index...)
}

// RecordCount returns the total number of records, header included.
func (f *Frame) RecordCount() int {
	return len(f.buf) / Stride
}

// Record decodes the record at index i.
func (f *Frame) Record(i int) CellRecord {
	return decodeRecord(f.buf, i)
}

// Header decodes the header record for column col.
func (f *Frame) Header(col int) CellRecord {
	return decodeRecord(f.buf, col)
}

// BodyCount returns the number of body (non-header) records.
func (f *Frame) BodyCount() int {
	n := f.RecordCount() - f.Columns
	if n < 0 {
		return 0
	}
	return n
}

// Body decodes the i-th body record.
func (f *Frame) Body(i int) CellRecord {
	return decodeRecord(f.buf, f.Columns+i)
}

// VisibleRows returns the number of distinct body rows in the frame.
func (f *Frame) VisibleRows() int {
	if f.Columns == 0 {
		return 0
	}
	return f.BodyCount() / f.Columns
}

// ViewIndex returns the display-row to data-row mapping for this frame.
// The returned slice is owned by the frame and valid until the next copy.
func (f *Frame) ViewIndex() []int {
	return f.index
}

// DataRow maps a display-row index to its underlying data row, or -1 when
// the display row is out of range.
func (f *Frame) DataRow(displayRow int) int {
	if displayRow < 0 || displayRow >= len(f.index) {
		return -1
	}
	return f.index[displayRow]
}

// Raw returns the underlying buffer. Test hook for byte-level comparisons.
func (f *Frame) Raw() []float32 {
	return f.buf
}
