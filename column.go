package grid

// Column describes one column of the table: identity, header label, layout
// constraints handed to the layout engine, and optional cell content.
//
// Columns are passed by value as an immutable ordered list; the grid never
// mutates them and only observes replacement at the next dirty cycle.
type Column struct {
	// ID identifies the column for pinning, overrides, and the string
	// table. Must be unique within one column list.
	ID string

	// Title is the header label.
	Title string

	// Width is the fixed width in pixels; 0 means auto (flex-sized).
	Width float64

	// FlexGrow and FlexShrink distribute leftover or overflow viewport
	// width among auto columns, flexbox style.
	FlexGrow   float64
	FlexShrink float64

	// MinWidth and MaxWidth clamp the resolved width; 0 means unbounded.
	MinWidth float64
	MaxWidth float64

	// Align is the horizontal content alignment for the column's cells.
	Align Align

	// Sortable enables the default header-click sort toggle.
	Sortable bool

	// Producer, when set, resolves the cell instruction for this column.
	// It is invoked per visible cell per frame and must not retain ctx.
	Producer func(ctx CellContext) Instruction
}

// CellContext is passed to a column's content producer.
type CellContext struct {
	// Value is the string-table value for the cell.
	Value string
	// RowIndex is the display-row index in the current view order.
	RowIndex int
	// DataRow is the underlying data-row index.
	DataRow int
	// RowData is the source's row payload, when the source provides one.
	RowData any
}

// DataSource supplies cell values and row identity to the grid.
// Implementations must be cheap per call; results for the string-table
// path are memoized until SetSource or Invalidate-with-data-change.
type DataSource interface {
	// RowCount returns the total number of data rows.
	RowCount() int

	// Cell returns the display string for a data row and column ID.
	Cell(dataRow int, columnID string) string

	// RowID returns a stable identity for a data row, used by row pinning.
	RowID(dataRow int) string
}

// RowDataSource is an optional extension giving producers access to the
// full row payload.
type RowDataSource interface {
	DataSource
	RowData(dataRow int) any
}

// CellKey addresses a single cell for content overrides.
type CellKey struct {
	ColumnID string
	DataRow  int
}

// SortState is the controlled sorting state. The grid only stores it and
// toggles it on header clicks; comparison logic lives with the host, which
// feeds the resulting order back via SetFilteredIndex.
type SortState struct {
	ColumnID   string
	Descending bool
}

// PinRequest names the rows to freeze at the top and bottom edges, by row
// identity. IDs absent from the filtered set are ignored.
type PinRequest struct {
	Top    []string
	Bottom []string
}

// stringTable memoizes DataSource.Cell lookups keyed by (columnID, dataRow).
// It is dropped wholesale whenever the source changes.
type stringTable struct {
	source DataSource
	cells  map[CellKey]string
}

func newStringTable(source DataSource) *stringTable {
	return &stringTable{source: source, cells: make(map[CellKey]string)}
}

func (t *stringTable) lookup(columnID string, dataRow int) string {
	if t == nil || t.source == nil {
		return ""
	}
	key := CellKey{ColumnID: columnID, DataRow: dataRow}
	if v, ok := t.cells[key]; ok {
		return v
	}
	v := t.source.Cell(dataRow, columnID)
	t.cells[key] = v
	return v
}
