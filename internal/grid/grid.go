// Package grid provides an in-memory table implementing the types.Table
// contract. It backs the CLI's compose command and the test suites; it models
// view state and change notifications, not rendering.
package grid

import (
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// Column describes one grid column.
type Column struct {
	Title    string
	Sortable bool
}

// Config selects the capabilities of a grid instance. Zero value means a
// featureless table; enable what the scenario needs.
type Config struct {
	Columns      []Column
	Searchable   bool
	Paging       bool
	PageLength   int // defaults to 10 when Paging is set
	DefaultOrder types.Order
	Reorderable  bool
	Scrolling    bool
	SelectMode   string // defaults to SelectNone
	// StableRowIDs assigns a UUID to every row; otherwise rows are addressed
	// by decimal index.
	StableRowIDs bool
}

// Row is one data row. ID is a UUID when the grid uses stable row ids, the
// decimal row index otherwise.
type Row struct {
	ID    string
	Cells []string
}

// Grid is an in-memory types.Table.
type Grid struct {
	id     string
	cfg    Config
	rows   []Row
	events *emitter

	search     string
	order      types.Order
	page       int
	pageLength int
	visible    []bool
	colOrder   []int
	scroll     float64
	selected   []string

	draws int
}

// New creates a grid. An empty table id gets a generated UUID.
func New(id string, cfg Config) *Grid {
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	if cfg.Paging && cfg.PageLength == 0 {
		cfg.PageLength = 10
	}
	if cfg.SelectMode == "" {
		cfg.SelectMode = types.SelectNone
	}
	if cfg.DefaultOrder.Dir == "" {
		cfg.DefaultOrder = types.Order{Column: 0, Dir: types.DirAsc}
	}

	g := &Grid{
		id:         id,
		cfg:        cfg,
		events:     newEmitter(),
		order:      cfg.DefaultOrder,
		pageLength: cfg.PageLength,
		visible:    make([]bool, len(cfg.Columns)),
		colOrder:   make([]int, len(cfg.Columns)),
	}
	for i := range g.visible {
		g.visible[i] = true
		g.colOrder[i] = i
	}
	return g
}

// AddRow appends a row and returns its id.
func (g *Grid) AddRow(cells ...string) string {
	var id string
	if g.cfg.StableRowIDs {
		id = uuid.Must(uuid.NewV7()).String()
	} else {
		id = strconv.Itoa(len(g.rows))
	}
	g.rows = append(g.rows, Row{ID: id, Cells: cells})
	return id
}

// Rows returns the backing rows.
func (g *Grid) Rows() []Row { return g.rows }

// Draws returns how many redraws were issued, for assertions.
func (g *Grid) Draws() int { return g.draws }

func (g *Grid) ID() string { return g.id }

func (g *Grid) Search() string { return g.search }

func (g *Grid) SetSearch(query string) {
	g.search = query
	g.events.emit(types.EventSearch)
}

func (g *Grid) Searchable() bool { return g.cfg.Searchable }

func (g *Grid) Order() types.Order { return g.order }

func (g *Grid) SetOrder(o types.Order) {
	g.order = o
	g.events.emit(types.EventOrder)
}

func (g *Grid) DefaultOrder() types.Order { return g.cfg.DefaultOrder }

func (g *Grid) Sortable() bool {
	for _, c := range g.cfg.Columns {
		if c.Sortable {
			return true
		}
	}
	return false
}

func (g *Grid) Page() int { return g.page }

func (g *Grid) SetPage(n int) {
	g.page = n
	g.events.emit(types.EventPage)
}

func (g *Grid) PageLength() int { return g.pageLength }

func (g *Grid) SetPageLength(n int) {
	g.pageLength = n
	g.events.emit(types.EventLength)
}

func (g *Grid) DefaultPageLength() int { return g.cfg.PageLength }

func (g *Grid) Paging() bool { return g.cfg.Paging }

func (g *Grid) ColumnCount() int { return len(g.cfg.Columns) }

func (g *Grid) ColumnVisible(idx int) bool {
	if idx < 0 || idx >= len(g.visible) {
		return false
	}
	return g.visible[idx]
}

func (g *Grid) SetColumnVisible(idx int, visible bool) {
	if idx < 0 || idx >= len(g.visible) {
		return
	}
	if g.visible[idx] == visible {
		return
	}
	g.visible[idx] = visible
	g.events.emit(types.EventColVis)
}

func (g *Grid) ColumnOrder() []int {
	return slices.Clone(g.colOrder)
}

func (g *Grid) SetColumnOrder(order []int) error {
	if !isPermutation(order, len(g.cfg.Columns)) {
		return types.ErrInvalidColumnOrder
	}
	g.colOrder = slices.Clone(order)
	g.events.emit(types.EventColReorder)
	return nil
}

func (g *Grid) Reorderable() bool { return g.cfg.Reorderable }

func (g *Grid) ScrollOffset() float64 { return g.scroll }

func (g *Grid) SetScrollOffset(offset float64) {
	g.scroll = offset
	g.events.emit(types.EventScroll)
}

func (g *Grid) Scrolling() bool { return g.cfg.Scrolling }

func (g *Grid) Selected() []string {
	return slices.Clone(g.selected)
}

// SelectRows replaces the selection with the known rows among the given ids.
// Single-select grids keep only the first. An empty id list clears the
// selection and emits a deselect instead of a select event.
func (g *Grid) SelectRows(ids []string) {
	var next []string
	for _, id := range ids {
		if g.rowIndex(id) < 0 {
			continue
		}
		next = append(next, id)
		if g.cfg.SelectMode == types.SelectSingle {
			break
		}
	}

	g.selected = next
	if len(next) == 0 {
		g.events.emit(types.EventDeselect)
		return
	}
	g.events.emit(types.EventSelect)
}

func (g *Grid) SelectMode() string { return g.cfg.SelectMode }

func (g *Grid) On(event string, fn func()) types.Subscription {
	return g.events.on(event, fn)
}

func (g *Grid) Draw() {
	g.draws++
}

func (g *Grid) rowIndex(id string) int {
	for i, r := range g.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
