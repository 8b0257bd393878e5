package grid

import "time"

// Option configures a Grid during creation.
// Use functional options to customize Grid behavior.
//
// Example:
//
//	// Default software layout engine
//	g := grid.New()
//
//	// Custom layout engine (dependency injection)
//	g := grid.New(grid.WithEngine(wasmEngine))
type Option func(*options)

// options holds optional configuration for Grid creation.
type options struct {
	engine   Engine
	theme    *Theme
	registry *Registry

	rowHeight    float64
	headerHeight float64
	overscan     int

	frameInterval time.Duration

	autoScrollInterval time.Duration
	autoScrollZone     float64
	autoScrollMaxStep  float64
}

// defaultOptions returns the default grid options.
func defaultOptions() options {
	return options{
		rowHeight:    28,
		headerHeight: 36,
		overscan:     4,

		frameInterval: time.Second / 60,

		autoScrollInterval: 50 * time.Millisecond,
		autoScrollZone:     24,
		autoScrollMaxStep:  32,
	}
}

// WithEngine sets a custom layout engine for the Grid.
// Use this for dependency injection of an external engine; when omitted,
// the built-in [SoftwareEngine] is used.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithTheme sets the theme used by the built-in renderers.
func WithTheme(t *Theme) Option {
	return func(o *options) {
		if t != nil {
			o.theme = t
		}
	}
}

// WithRegistry sets a custom renderer registry. When omitted, a registry
// with the built-in renderers is used.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithRowHeight sets the requested row height in pixels. The engine may
// report a different effective height, which then wins.
func WithRowHeight(h float64) Option {
	return func(o *options) {
		if h > 0 {
			o.rowHeight = h
		}
	}
}

// WithHeaderHeight sets the header height in pixels.
func WithHeaderHeight(h float64) Option {
	return func(o *options) {
		if h > 0 {
			o.headerHeight = h
		}
	}
}

// WithOverscan sets how many extra rows are laid out above and below the
// visible window.
func WithOverscan(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.overscan = n
		}
	}
}

// WithFrameInterval sets the tick interval of [Grid.Run].
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithAutoScroll tunes the drag auto-scroll behavior: the timer interval,
// the size of the edge zone in pixels, and the maximum per-tick scroll
// step.
func WithAutoScroll(interval time.Duration, zone, maxStep float64) Option {
	return func(o *options) {
		if interval > 0 {
			o.autoScrollInterval = interval
		}
		if zone > 0 {
			o.autoScrollZone = zone
		}
		if maxStep > 0 {
			o.autoScrollMaxStep = maxStep
		}
	}
}
