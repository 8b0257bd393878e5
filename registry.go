package grid

// RendererFunc draws one instruction into the geometry of a cell record.
// Composite renderers re-dispatch their children through the registry.
type RendererFunc func(reg *Registry, s Surface, rec CellRecord, ins Instruction, th *Theme)

// Registry maps instruction kinds to drawing routines.
//
// A lookup miss is a silent no-op: an unknown or future instruction kind
// never blanks the cell, it just draws nothing. A panic inside a renderer
// is recovered at the dispatch site and logged, so one failing instruction
// cannot corrupt the rest of the frame.
type Registry struct {
	renderers map[Kind]RendererFunc
}

// NewRegistry returns a registry populated with the built-in renderers.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[Kind]RendererFunc, 8)}
	r.Register(KindText, drawText)
	r.Register(KindBadge, drawBadge)
	r.Register(KindSparkline, drawSparkline)
	r.Register(KindStub, drawStub)
	r.Register(KindBox, drawBox)
	r.Register(KindFlex, drawFlex)
	r.Register(KindStack, drawStack)
	return r
}

// Register installs fn for kind, replacing any existing renderer.
// Passing nil removes the kind.
func (r *Registry) Register(kind Kind, fn RendererFunc) {
	if fn == nil {
		delete(r.renderers, kind)
		return
	}
	r.renderers[kind] = fn
}

// Draw dispatches one instruction. KindNone and unregistered kinds draw
// nothing.
func (r *Registry) Draw(s Surface, rec CellRecord, ins Instruction, th *Theme) {
	if ins.Kind == KindNone {
		return
	}
	fn, ok := r.renderers[ins.Kind]
	if !ok {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			Logger().Warn("grid: renderer panicked",
				"kind", ins.Kind.String(), "err", p)
		}
	}()
	fn(r, s, rec, ins, th)
}
