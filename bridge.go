package grid

import "errors"

// FrameRequest carries the column and container constraints plus viewport
// geometry for one layout pass.
type FrameRequest struct {
	// Columns are the effective (pin-ordered) column constraints.
	Columns []Column

	// Index maps display row to data row for the full
	// filtered set, already partitioned as [pinned top, middle, bottom].
	Index []int

	ViewportWidth  float64
	ViewportHeight float64

	RowHeight    float64
	HeaderHeight float64

	ScrollTop float64

	// Overscan is the number of extra rows laid out above and below the
	// visible window.
	Overscan int

	PinnedTop    int
	PinnedBottom int
}

// FrameMeta is the scalar metadata an engine returns for one frame.
type FrameMeta struct {
	// CellCount is the total number of records written, header included.
	CellCount int

	// FirstRow is the display index of the first scrollable row laid out
	// (overscan included).
	FirstRow int

	// RowHeight is the effective row height. Engines may report a height
	// different from the requested one (dynamic content); it is
	// authoritative and never recomputed locally.
	RowHeight float64

	// TotalHeight is the full content height including the header.
	TotalHeight float64

	// VisibleRows is the number of body rows laid out this frame.
	VisibleRows int
}

// Engine is the external layout engine: it receives column/container
// constraints and viewport state, and populates a flat layout buffer plus
// a view index array as a side channel.
//
// LayoutBuffer and ViewIndex are valid for synchronous reads only, until
// the next ComputeFrame call; the bridge copies them immediately. The grid
// never interprets how layout is computed, only its output shape.
type Engine interface {
	ComputeFrame(req FrameRequest) (FrameMeta, error)
	LayoutBuffer() []float32
	ViewIndex() []int
}

// ErrBufferShape is returned when an engine's buffer violates the
// recordCount == columns + visibleRows×columns invariant.
var ErrBufferShape = errors.New("grid: layout buffer shape mismatch")

// bridge issues one engine call per dirty frame and snapshots the
// engine's output into a caller-owned frame.
type bridge struct {
	engine Engine
}

// compute runs one layout pass and copies the engine-owned buffer and view
// index into dst. The engine's storage is aliased only for the duration of
// this call.
func (b *bridge) compute(dst *Frame, req FrameRequest) error {
	meta, err := b.engine.ComputeFrame(req)
	if err != nil {
		return err
	}

	buf := b.engine.LayoutBuffer()
	cols := len(req.Columns)

	// A well-formed frame carries at least the header row; a count below
	// the column count can still satisfy the modulus check, so it is
	// rejected explicitly.
	if meta.CellCount < cols {
		return ErrBufferShape
	}
	want := meta.CellCount * Stride
	if len(buf) < want {
		return ErrBufferShape
	}
	if cols > 0 && (meta.CellCount-cols)%cols != 0 {
		return ErrBufferShape
	}

	dst.copyFrom(meta, cols, buf[:want], b.engine.ViewIndex())
	return nil
}
