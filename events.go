package grid

// Channel identifies the logical event stream an envelope belongs to.
type Channel uint8

const (
	ChannelPointerDown Channel = iota
	ChannelPointerMove
	ChannelPointerUp
	ChannelCellClick
	ChannelCellDoubleClick
	ChannelHeaderClick
	ChannelWheel
	ChannelKeyDown
)

// channelNames maps Channel values to their string representation.
var channelNames = [...]string{
	ChannelPointerDown:     "pointerDown",
	ChannelPointerMove:     "pointerMove",
	ChannelPointerUp:       "pointerUp",
	ChannelCellClick:       "cellClick",
	ChannelCellDoubleClick: "cellDoubleClick",
	ChannelHeaderClick:     "headerClick",
	ChannelWheel:           "wheel",
	ChannelKeyDown:         "keyDown",
}

// String returns the string representation of a Channel.
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// Modifiers are the keyboard modifiers active during an input event.
type Modifiers struct {
	Shift, Ctrl, Alt, Meta bool
}

// Envelope wraps one input event on its way through the middleware chain
// and into consumer callbacks. It is passed by reference; defaultPrevented
// is the only field middleware and handlers may set.
type Envelope struct {
	Channel   Channel
	Hit       HitTest
	Modifiers Modifiers

	// X, Y is the pointer position in canvas coordinates, when relevant.
	X, Y float64

	// Key is the key name for keyboard channels.
	Key string

	defaultPrevented bool
}

// PreventDefault suppresses the built-in default behavior for this event
// (sort toggling, selection drag start). The middleware chain and consumer
// callbacks still run.
func (e *Envelope) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *Envelope) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Middleware intercepts an event. Calling next passes the event on; not
// calling it swallows the event entirely: no later middleware, no
// consumer callback, no default behavior.
type Middleware func(e *Envelope, next func())

// Callbacks are the consumer-facing event hooks. All fields are optional.
//
// The OnBefore* hooks receive the proposed next state and may return false
// to veto the change before it is committed; a veto is normal control
// flow, not an error.
type Callbacks struct {
	OnCellClick       func(e *Envelope)
	OnCellDoubleClick func(e *Envelope)
	OnHeaderClick     func(e *Envelope)

	OnSelectionChange       func(r Range)
	OnBeforeSelectionChange func(proposed Range) bool

	OnSortChange       func(s SortState)
	OnBeforeSortChange func(proposed SortState) bool
}

// dispatcher runs the ordered middleware chain around an event.
type dispatcher struct {
	chain []Middleware
}

// use appends a middleware. Middleware executes strictly in registration
// order.
func (d *dispatcher) use(m Middleware) {
	d.chain = append(d.chain, m)
}

// dispatch runs the chain. completed is false when some middleware halted
// the event by not calling next. A middleware panic is caught, logged, and
// treated as a pass-through: execution continues with the next middleware.
func (d *dispatcher) dispatch(e *Envelope) (completed bool) {
	return d.run(0, e)
}

func (d *dispatcher) run(i int, e *Envelope) (completed bool) {
	if i >= len(d.chain) {
		return true
	}

	calledNext := false
	panicked := false
	next := func() {
		if calledNext {
			return
		}
		calledNext = true
		completed = d.run(i+1, e)
	}

	func() {
		defer func() {
			if p := recover(); p != nil {
				panicked = true
				Logger().Warn("grid: middleware panicked",
					"channel", e.Channel.String(), "index", i, "err", p)
			}
		}()
		d.chain[i](e, next)
	}()

	if !calledNext {
		if panicked {
			// A crashed middleware neither passed nor deliberately
			// blocked; keep the event flowing.
			return d.run(i+1, e)
		}
		return false
	}
	return completed
}
