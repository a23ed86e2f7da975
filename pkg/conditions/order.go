package conditions

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// orderCondition tracks the primary sort. Wire value is the first letter of
// the direction followed by the column index: ascending on column 3 is "a3".
type orderCondition struct{}

func (orderCondition) Name() string     { return NameOrder }
func (orderCondition) Key() byte        { return KeyOrder }
func (orderCondition) Events() []string { return []string{types.EventOrder} }

func (orderCondition) Applicable(t types.Table) bool {
	return t.Sortable()
}

func (orderCondition) NonDefault(t types.Table, d types.Defaults) bool {
	return t.Order() != d.Order
}

func (orderCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	o := t.Order()
	if o.Dir == "" {
		return "", false
	}
	return o.Dir[:1] + strconv.Itoa(o.Column), true
}

func (orderCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	if len(raw) < 2 {
		return false, fmt.Errorf("order value %q too short", raw)
	}

	var dir string
	switch raw[0] {
	case 'a':
		dir = types.DirAsc
	case 'd':
		dir = types.DirDesc
	default:
		return false, fmt.Errorf("order direction %q not recognized", string(raw[0]))
	}

	col, err := strconv.Atoi(raw[1:])
	if err != nil {
		return false, fmt.Errorf("order column %q: %w", raw[1:], err)
	}

	t.SetOrder(types.Order{Column: col, Dir: dir})
	return true, nil
}
