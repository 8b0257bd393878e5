package grid

import "image/color"

// Theme holds the colors and metrics used by the built-in renderers.
// A Theme is treated as an immutable snapshot for the duration of a frame.
type Theme struct {
	Background       color.Color
	HeaderBackground color.Color
	HeaderText       color.Color
	Text             color.Color
	MutedText        color.Color
	GridLine         color.Color
	RowStripe        color.Color
	PinnedShadow     color.Color
	SelectionFill    color.Color
	SelectionBorder  color.Color
	BadgeBackground  color.Color
	BadgeText        color.Color
	StubBackground   color.Color
	SparklineStroke  color.Color

	// CellPaddingX is the default horizontal text inset for cells whose
	// layout record carries no padding of its own.
	CellPaddingX float64

	// SelectionBorderWidth is the outline width of the selection overlay.
	SelectionBorderWidth float64
}

// DefaultTheme returns the stock light theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		HeaderBackground: color.RGBA{R: 0xf4, G: 0xf5, B: 0xf7, A: 0xff},
		HeaderText:       color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		Text:             color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		MutedText:        color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		GridLine:         color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		RowStripe:        color.RGBA{R: 0xfa, G: 0xfa, B: 0xfb, A: 0xff},
		PinnedShadow:     color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		SelectionFill:    color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0x2e},
		SelectionBorder:  color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		BadgeBackground:  color.RGBA{R: 0xe0, G: 0xe7, B: 0xff, A: 0xff},
		BadgeText:        color.RGBA{R: 0x37, G: 0x30, B: 0xa3, A: 0xff},
		StubBackground:   color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff},
		SparklineStroke:  color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},

		CellPaddingX:         8,
		SelectionBorderWidth: 2,
	}
}
