package types

// Sort directions.
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// Order describes a sort: which column and in which direction.
type Order struct {
	Column int
	Dir    string
}

// Selection modes. A table that does not support row selection reports
// SelectNone.
const (
	SelectNone   = "none"
	SelectSingle = "single"
	SelectMulti  = "multi"
)

// Change-event names emitted by a Table. Conditions declare which of these
// trigger re-serialization of the table's token.
const (
	EventSearch     = "search"
	EventOrder      = "order"
	EventPage       = "page"
	EventLength     = "length"
	EventColVis     = "column-visibility"
	EventColReorder = "column-reorder"
	EventScroll     = "scroll"
	EventSelect     = "select"
	EventDeselect   = "deselect"
)

// Subscription is the handle returned by Table.On. Detaching a listener goes
// through the handle; listener identity is never matched by function value.
type Subscription interface {
	// Unsubscribe removes the listener. Calling it more than once is a no-op.
	Unsubscribe()
}

// Table is the host grid handle the keeper operates on. It is assumed to be a
// capability-rich external component; tablekeep only reads and writes view
// state through it and never touches rendering.
//
// Setters do not redraw. The keeper batches application of decoded state and
// issues a single Draw at the end of the initial load pass.
type Table interface {
	// ID returns the table identifier used to key this table's token in the
	// fragment. Stable for the lifetime of the instance.
	ID() string

	// Search returns the current global search text; empty when unfiltered.
	Search() string
	SetSearch(query string)
	// Searchable reports whether global filtering is configured for this table.
	Searchable() bool

	// Order returns the current primary sort.
	Order() Order
	SetOrder(o Order)
	// DefaultOrder returns the sort the table was configured with.
	DefaultOrder() Order
	// Sortable reports whether at least one column is sortable.
	Sortable() bool

	// Page returns the zero-based current page.
	Page() int
	SetPage(n int)
	PageLength() int
	SetPageLength(n int)
	// DefaultPageLength returns the configured page size.
	DefaultPageLength() int
	// Paging reports whether pagination is configured for this table.
	Paging() bool

	// ColumnCount returns the number of columns, hidden ones included.
	ColumnCount() int
	// ColumnVisible reports visibility of the column at the given original
	// index.
	ColumnVisible(idx int) bool
	SetColumnVisible(idx int, visible bool)

	// ColumnOrder returns the current display order as original column
	// indices. Without the reorder capability this is the natural order.
	ColumnOrder() []int
	// SetColumnOrder applies a display order. The slice must be a permutation
	// of 0..ColumnCount()-1.
	SetColumnOrder(order []int) error
	// Reorderable reports whether the column-reorder capability is attached.
	Reorderable() bool

	// ScrollOffset returns the virtualized scroll offset (top row position).
	ScrollOffset() float64
	SetScrollOffset(offset float64)
	// Scrolling reports whether the scroll-virtualization capability is
	// attached.
	Scrolling() bool

	// Selected returns the stable ids of the selected rows, in selection
	// order. Tables without stable row ids return decimal row indices.
	Selected() []string
	// SelectRows selects the rows with the given ids, replacing the current
	// selection. Unknown ids are ignored.
	SelectRows(ids []string)
	SelectMode() string

	// On registers a listener for the named change event and returns its
	// subscription handle.
	On(event string, fn func()) Subscription

	// Draw redraws the table with its current state.
	Draw()
}

// Defaults holds the baseline values a table was configured with, resolved
// once at keeper construction. Conditions compare live state against these
// rather than re-deriving fallbacks on every change.
type Defaults struct {
	Order      Order
	PageLength int
}

// ResolveDefaults reads a table's configured baselines.
func ResolveDefaults(t Table) Defaults {
	return Defaults{
		Order:      t.DefaultOrder(),
		PageLength: t.DefaultPageLength(),
	}
}
