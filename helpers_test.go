package grid

import (
	"image/color"
	"strconv"
)

// nopSurface is a minimal Surface for pipeline tests that only need
// geometry, not draw output. Text metrics are fixed-width for
// reproducible measured layouts.
type nopSurface struct {
	w, h float64
}

func (s *nopSurface) Size() (float64, float64)                               { return s.w, s.h }
func (s *nopSurface) Push()                                                  {}
func (s *nopSurface) Pop()                                                   {}
func (s *nopSurface) ClipRect(x, y, w, h float64)                            {}
func (s *nopSurface) Translate(dx, dy float64)                               {}
func (s *nopSurface) Clear(c color.Color)                                    {}
func (s *nopSurface) FillRect(x, y, w, h float64, c color.Color)             {}
func (s *nopSurface) FillRoundedRect(x, y, w, h, r float64, c color.Color)   {}
func (s *nopSurface) StrokeRect(x, y, w, h, lw float64, c color.Color)       {}
func (s *nopSurface) StrokeLine(x1, y1, x2, y2, lw float64, c color.Color)   {}
func (s *nopSurface) DrawString(str string, x, y float64, c color.Color)     {}
func (s *nopSurface) DrawStringAnchored(string, float64, float64, float64, float64, color.Color) {
}

func (s *nopSurface) MeasureString(str string) (float64, float64) {
	n := 0
	for range str {
		n++
	}
	return float64(n * 7), 13
}

// testSource is an in-memory DataSource with numeric row identities.
type testSource struct {
	n int
}

func (s *testSource) RowCount() int { return s.n }

func (s *testSource) Cell(dataRow int, columnID string) string {
	return columnID + "-" + strconv.Itoa(dataRow)
}

func (s *testSource) RowID(dataRow int) string {
	return strconv.Itoa(dataRow)
}

func identityIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
