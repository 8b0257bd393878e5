// Command griddemo shows the grid rendering a large synthetic dataset in
// an ebiten window: pinned rows and columns, badge and sparkline cells,
// drag selection, wheel scrolling, and header-click sorting.
package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/ggsurface"
)

const (
	windowW  = 1100
	windowH  = 700
	rowCount = 100_000
)

type employee struct {
	id     int
	name   string
	dept   string
	status string
	score  float64
	trend  []float64
}

// employees implements grid.RowDataSource over a slice.
type employees struct {
	rows []employee
}

func (e *employees) RowCount() int { return len(e.rows) }

func (e *employees) Cell(dataRow int, columnID string) string {
	r := e.rows[dataRow]
	switch columnID {
	case "id":
		return strconv.Itoa(r.id)
	case "name":
		return r.name
	case "dept":
		return r.dept
	case "status":
		return r.status
	case "score":
		return fmt.Sprintf("%.1f", r.score)
	}
	return ""
}

func (e *employees) RowID(dataRow int) string {
	return strconv.Itoa(e.rows[dataRow].id)
}

func (e *employees) RowData(dataRow int) any {
	return e.rows[dataRow]
}

func makeEmployees(n int) *employees {
	rng := rand.New(rand.NewSource(42))
	firsts := []string{"Alice", "Bo", "Chen", "Dana", "Emil", "Fatima", "Goro", "Hana", "Ines", "Jun"}
	lasts := []string{"Ito", "Novak", "Okafor", "Park", "Quinn", "Rossi", "Sato", "Tran", "Umar", "Vega"}
	depts := []string{"Engineering", "Design", "Sales", "Support", "Research"}
	statuses := []string{"active", "away", "offline"}

	rows := make([]employee, n)
	for i := range rows {
		trend := make([]float64, 12)
		for j := range trend {
			trend[j] = rng.Float64() * 100
		}
		rows[i] = employee{
			id:     i + 1,
			name:   firsts[rng.Intn(len(firsts))] + " " + lasts[rng.Intn(len(lasts))],
			dept:   depts[rng.Intn(len(depts))],
			status: statuses[rng.Intn(len(statuses))],
			score:  rng.Float64() * 100,
			trend:  trend,
		}
	}
	return &employees{rows: rows}
}

func makeColumns() []grid.Column {
	return []grid.Column{
		{ID: "id", Title: "ID", Width: 70, Align: grid.AlignRight, Sortable: true},
		{ID: "name", Title: "Name", MinWidth: 140, FlexGrow: 2, Sortable: true},
		{ID: "dept", Title: "Department", MinWidth: 110, FlexGrow: 1, Sortable: true},
		{
			ID: "status", Title: "Status", Width: 110,
			Producer: func(ctx grid.CellContext) grid.Instruction {
				return grid.Badge(ctx.Value)
			},
		},
		{
			ID: "trend", Title: "Trend", Width: 120,
			Producer: func(ctx grid.CellContext) grid.Instruction {
				emp, ok := ctx.RowData.(employee)
				if !ok {
					return grid.Stub("trend")
				}
				return grid.Sparkline(emp.trend)
			},
		},
		{ID: "score", Title: "Score", Width: 90, Align: grid.AlignRight, Sortable: true},
	}
}

type game struct {
	grid  *grid.Grid
	dc    *gg.Context
	src   *employees
	frame *ebiten.Image
	keys  []ebiten.Key
}

func newGame() (*game, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	dc := gg.NewContext(windowW, windowH)
	src := makeEmployees(rowCount)

	g := grid.New(
		grid.WithRowHeight(28),
		grid.WithHeaderHeight(36),
	)
	g.SetColumns(makeColumns())
	g.SetSource(src)
	g.SetColumnPins([]string{"id"}, []string{"score"})
	g.SetRowPins(grid.PinRequest{Top: []string{"1"}, Bottom: []string{"100000"}})
	g.Attach(ggsurface.New(dc, source.Face(13)))

	// Sorting: the grid stores the state and fires the callback; the host
	// computes the order and feeds it back.
	g.Callbacks.OnSortChange = func(s grid.SortState) {
		g.SetFilteredIndex(sortedIndex(src, s))
	}
	g.Callbacks.OnCellDoubleClick = func(e *grid.Envelope) {
		log.Printf("double click: row=%d col=%s", e.Hit.DataRow, e.Hit.ColumnID)
	}

	return &game{
		grid:  g,
		dc:    dc,
		src:   src,
		frame: ebiten.NewImage(windowW, windowH),
	}, nil
}

func sortedIndex(src *employees, s grid.SortState) []int {
	idx := make([]int, len(src.rows))
	for i := range idx {
		idx[i] = i
	}
	if s.ColumnID == "" {
		return idx
	}
	less := func(a, b int) bool {
		ra, rb := src.rows[a], src.rows[b]
		switch s.ColumnID {
		case "id":
			return ra.id < rb.id
		case "name":
			return ra.name < rb.name
		case "dept":
			return ra.dept < rb.dept
		case "score":
			return ra.score < rb.score
		}
		return a < b
	}
	sort.Slice(idx, func(i, j int) bool {
		if s.Descending {
			return less(idx[j], idx[i])
		}
		return less(idx[i], idx[j])
	})
	return idx
}

func modifiers() grid.Modifiers {
	return grid.Modifiers{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

var keyNames = map[ebiten.Key]string{
	ebiten.KeyEscape:     "Escape",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
}

func (a *game) Update() error {
	mods := modifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	a.grid.PointerMove(x, y, mods)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.grid.PointerDown(x, y, mods)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.grid.PointerUp(x, y, mods)
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		// Wheel delta is in lines; scale to pixels, natural direction.
		a.grid.Wheel(-wx*40, -wy*40, mods)
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		if name, ok := keyNames[k]; ok {
			a.grid.KeyDown(name, mods)
		}
	}
	return nil
}

func (a *game) Draw(screen *ebiten.Image) {
	if a.grid.Tick() {
		if img, ok := a.dc.Image().(*image.RGBA); ok {
			a.frame.WritePixels(img.Pix)
		}
	}
	screen.DrawImage(a.frame, nil)
	ebiten.SetWindowTitle(fmt.Sprintf("griddemo: %d rows (%.0f fps)", rowCount, ebiten.ActualFPS()))
}

func (a *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowW, windowH
}

func main() {
	a, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	defer a.grid.Close()

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("griddemo")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
