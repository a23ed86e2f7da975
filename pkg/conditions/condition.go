// Package conditions defines the catalog of table-state conditions and the
// registry that drives token encoding and decoding. Each condition knows how
// to detect whether its feature is active, whether its live value departs
// from the baseline, and how to serialize that value into (and apply it back
// out of) a token entry.
package conditions

import "github.com/mesh-intelligence/tablekeep/pkg/types"

// Condition names.
const (
	NameSearch   = "search"
	NameOrder    = "order"
	NamePage     = "page"
	NameLength   = "length"
	NameColVis   = "colvis"
	NameColOrder = "colorder"
	NameScroller = "scroller"
	NameSelect   = "select"
)

// Single-character token keys, one per condition. These are wire format and
// must never collide; a new condition picks an unused character.
const (
	KeySearch   byte = 'f'
	KeyOrder    byte = 'o'
	KeyPage     byte = 'p'
	KeyLength   byte = 'l'
	KeyColVis   byte = 'v'
	KeyColOrder byte = 'c'
	KeyScroller byte = 's'
	KeySelect   byte = 'e'
)

// Condition is one named, independently toggleable piece of table view state.
// Implementations are stateless; per-table baselines arrive through the
// resolved Defaults.
type Condition interface {
	// Name returns the stable condition identifier.
	Name() string

	// Key returns the single character prefixing this condition's token entry.
	Key() byte

	// Events returns the change-event names that should trigger
	// re-serialization of the owning table's token.
	Events() []string

	// Applicable reports whether the table feature this condition tracks is
	// active for the given table. Checked once when the enabled set is
	// collected, not on every change.
	Applicable(t types.Table) bool

	// NonDefault reports whether the live value departs from the baseline and
	// is therefore worth persisting.
	NonDefault(t types.Table, d types.Defaults) bool

	// Serialize produces the value portion of the token entry. A false return
	// omits the condition from the token entirely.
	Serialize(t types.Table, d types.Defaults) (string, bool)

	// Deserialize applies a decoded value onto the table and reports whether
	// the table needs a redraw afterwards.
	Deserialize(t types.Table, d types.Defaults, raw string) (redraw bool, err error)
}

// All returns the stock catalog in registry order. The order fixes the layout
// of serialized tokens; decoding is keyed by prefix and does not depend on it.
func All() []Condition {
	return []Condition{
		searchCondition{},
		orderCondition{},
		pageCondition{},
		lengthCondition{},
		colVisCondition{},
		colOrderCondition{},
		scrollerCondition{},
		selectCondition{},
	}
}
