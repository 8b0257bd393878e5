package grid

import "image/color"

// Kind identifies the type of a render instruction.
type Kind uint8

const (
	// KindNone draws nothing; it is the zero value.
	KindNone Kind = iota

	// Leaf instructions.
	KindText
	KindBadge
	KindSparkline
	KindStub

	// Composite instructions carrying children.
	KindBox
	KindFlex
	KindStack
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindNone:      "None",
	KindText:      "Text",
	KindBadge:     "Badge",
	KindSparkline: "Sparkline",
	KindStub:      "Stub",
	KindBox:       "Box",
	KindFlex:      "Flex",
	KindStack:     "Stack",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Composite reports whether instructions of this kind lay out children.
func (k Kind) Composite() bool {
	return k == KindBox || k == KindFlex || k == KindStack
}

// Direction is the main-axis direction of a flex container.
type Direction uint8

const (
	DirRow Direction = iota
	DirRowReverse
	DirColumn
	DirColumnReverse
)

// Horizontal reports whether the main axis runs along x.
func (d Direction) Horizontal() bool {
	return d == DirRow || d == DirRowReverse
}

// Reversed reports whether children are placed in reverse order.
func (d Direction) Reversed() bool {
	return d == DirRowReverse || d == DirColumnReverse
}

// Justify distributes children along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceEvenly
)

// CrossAlign positions children on the cross axis.
type CrossAlign uint8

const (
	CrossStart CrossAlign = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// Insets are edge distances in CSS order semantics.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns equal insets on all four edges.
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Instruction is a tagged description of what to draw in a cell. Leaf
// kinds carry text or values; composite kinds carry an ordered child list
// plus layout hints. Instructions are constructed fresh per cell per frame
// and never retained across frames.
type Instruction struct {
	Kind Kind

	// Text is the label of Text, Badge, and Stub instructions.
	Text string

	// Values are the data points of a Sparkline instruction.
	Values []float64

	// Foreground and Background override the theme colors when non-nil.
	Foreground color.Color
	Background color.Color

	// BorderColor and BorderWidth draw an outline (Box, Badge).
	BorderColor color.Color
	BorderWidth float64

	// CornerRadius rounds a Badge or Box background fill.
	CornerRadius float64

	// Layout hints for composite kinds.
	Direction Direction
	Justify   Justify
	Align     CrossAlign
	Gap       float64
	Padding   Insets

	// Width and Height are explicit size hints; 0 means measure content.
	Width  float64
	Height float64

	Children []Instruction
}

// Text creates a text instruction.
func Text(s string) Instruction {
	return Instruction{Kind: KindText, Text: s}
}

// Badge creates a pill-shaped label instruction.
func Badge(s string) Instruction {
	return Instruction{Kind: KindBadge, Text: s}
}

// Sparkline creates a miniature line-chart instruction over values.
func Sparkline(values []float64) Instruction {
	return Instruction{Kind: KindSparkline, Values: values}
}

// Stub creates a placeholder instruction with a muted label.
func Stub(s string) Instruction {
	return Instruction{Kind: KindStub, Text: s}
}

// Box creates a container that fills its background, strokes its border,
// and stacks its children vertically with no gap (border-box sizing).
func Box(children ...Instruction) Instruction {
	return Instruction{Kind: KindBox, Direction: DirColumn, Children: children}
}

// Flex creates a container that lays out children along dir. Children are
// centered on the cross axis by default; set Align to override.
func Flex(dir Direction, children ...Instruction) Instruction {
	return Instruction{Kind: KindFlex, Direction: dir, Align: CrossCenter, Children: children}
}

// Stack creates a container that overlays children in order, each given
// the full content box.
func Stack(children ...Instruction) Instruction {
	return Instruction{Kind: KindStack, Children: children}
}
