package grid

// resolver turns (row, column) into a render instruction. Resolution
// priority, first match wins:
//
//  1. an externally supplied per-cell override,
//  2. the column's content producer,
//  3. the plain string-table value, rendered as text.
type resolver struct {
	overrides map[CellKey]Instruction
	strings   *stringTable
	rowData   func(dataRow int) any
}

func (r *resolver) resolve(col Column, displayRow, dataRow int) Instruction {
	if ins, ok := r.overrides[CellKey{ColumnID: col.ID, DataRow: dataRow}]; ok {
		return ins
	}

	value := r.strings.lookup(col.ID, dataRow)

	if col.Producer != nil {
		ctx := CellContext{
			Value:    value,
			RowIndex: displayRow,
			DataRow:  dataRow,
		}
		if r.rowData != nil {
			ctx.RowData = r.rowData(dataRow)
		}
		return col.Producer(ctx)
	}

	if value == "" {
		return Instruction{}
	}
	return Text(value)
}
