// Package recording provides a command-capturing surface for tests.
//
// The recording surface implements grid.Surface but stores every drawing
// operation as a typed command instead of rasterizing pixels, so tests can
// assert on exact draw sequences: clip/translate nesting, per-pane draw
// order, cell geometry, colors.
//
// Text metrics are deterministic (a fixed-width pseudo font), making
// measured layouts reproducible across platforms.
//
// Example:
//
//	s := recording.New(800, 600)
//	g := grid.New()
//	g.Attach(s)
//	g.Tick()
//	for _, c := range s.Commands() {
//	    fmt.Println(c.Op)
//	}
package recording

import (
	"image/color"

	"github.com/gogpu/grid"
)

// Op identifies the type of a recorded command.
type Op uint8

const (
	// State ops
	OpPush Op = iota
	OpPop
	OpClipRect
	OpTranslate

	// Drawing ops
	OpClear
	OpFillRect
	OpFillRoundedRect
	OpStrokeRect
	OpStrokeLine
	OpDrawString
	OpDrawStringAnchored
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpPush:               "Push",
	OpPop:                "Pop",
	OpClipRect:           "ClipRect",
	OpTranslate:          "Translate",
	OpClear:              "Clear",
	OpFillRect:           "FillRect",
	OpFillRoundedRect:    "FillRoundedRect",
	OpStrokeRect:         "StrokeRect",
	OpStrokeLine:         "StrokeLine",
	OpDrawString:         "DrawString",
	OpDrawStringAnchored: "DrawStringAnchored",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded drawing operation. Fields not used by an op are
// zero.
type Command struct {
	Op Op

	// X, Y, W, H carry rectangle geometry; for lines (X, Y) is the start
	// and (W, H) the end point; for text (X, Y) is the anchor position.
	X, Y, W, H float64

	// Radius is the corner radius for OpFillRoundedRect, the line width
	// for stroke ops.
	Radius float64

	// AX, AY are the anchor fractions for OpDrawStringAnchored.
	AX, AY float64

	Text  string
	Color color.Color
}

// Deterministic pseudo-font metrics.
const (
	charWidth  = 7
	lineHeight = 13
)

// Surface is an in-memory grid.Surface that records commands.
// Not safe for concurrent use.
type Surface struct {
	width, height float64
	commands      []Command
}

var _ grid.Surface = (*Surface)(nil)

// New creates a recording surface with the given logical size.
func New(width, height float64) *Surface {
	return &Surface{width: width, height: height}
}

// Commands returns the recorded commands in draw order. The slice aliases
// internal storage; it is valid until the next Reset.
func (s *Surface) Commands() []Command {
	return s.commands
}

// CommandsOf returns the recorded commands of one op, in draw order.
func (s *Surface) CommandsOf(op Op) []Command {
	var out []Command
	for _, c := range s.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded commands, keeping the size.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
}

func (s *Surface) record(c Command) {
	s.commands = append(s.commands, c)
}

// Size returns the surface dimensions.
func (s *Surface) Size() (w, h float64) {
	return s.width, s.height
}

// Push records a state save.
func (s *Surface) Push() {
	s.record(Command{Op: OpPush})
}

// Pop records a state restore.
func (s *Surface) Pop() {
	s.record(Command{Op: OpPop})
}

// ClipRect records a clip intersection.
func (s *Surface) ClipRect(x, y, w, h float64) {
	s.record(Command{Op: OpClipRect, X: x, Y: y, W: w, H: h})
}

// Translate records a translation.
func (s *Surface) Translate(dx, dy float64) {
	s.record(Command{Op: OpTranslate, X: dx, Y: dy})
}

// Clear records a full-surface clear.
func (s *Surface) Clear(c color.Color) {
	s.record(Command{Op: OpClear, Color: c})
}

// FillRect records a filled rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.record(Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// FillRoundedRect records a filled rounded rectangle.
func (s *Surface) FillRoundedRect(x, y, w, h, r float64, c color.Color) {
	s.record(Command{Op: OpFillRoundedRect, X: x, Y: y, W: w, H: h, Radius: r, Color: c})
}

// StrokeRect records a stroked rectangle outline.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.record(Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Radius: lineWidth, Color: c})
}

// StrokeLine records a line segment.
func (s *Surface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	s.record(Command{Op: OpStrokeLine, X: x1, Y: y1, W: x2, H: y2, Radius: lineWidth, Color: c})
}

// DrawString records baseline-anchored text.
func (s *Surface) DrawString(str string, x, y float64, c color.Color) {
	s.record(Command{Op: OpDrawString, X: x, Y: y, Text: str, Color: c})
}

// DrawStringAnchored records anchored text.
func (s *Surface) DrawStringAnchored(str string, x, y, ax, ay float64, c color.Color) {
	s.record(Command{Op: OpDrawStringAnchored, X: x, Y: y, AX: ax, AY: ay, Text: str, Color: c})
}

// MeasureString returns deterministic pseudo-font metrics: every rune is
// charWidth pixels wide and lines are lineHeight pixels tall.
func (s *Surface) MeasureString(str string) (w, h float64) {
	n := 0
	for range str {
		n++
	}
	return float64(n * charWidth), lineHeight
}
