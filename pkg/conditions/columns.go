package conditions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// colVisCondition tracks column visibility. Wire value is 't' or 'f' followed
// by a dot-separated index list: 't' lists the visible columns, 'f' the
// hidden ones. Whichever list is shorter is encoded.
type colVisCondition struct{}

func (colVisCondition) Name() string     { return NameColVis }
func (colVisCondition) Key() byte        { return KeyColVis }
func (colVisCondition) Events() []string { return []string{types.EventColVis} }

func (colVisCondition) Applicable(t types.Table) bool {
	return t.ColumnCount() > 0
}

func (colVisCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	for i := 0; i < t.ColumnCount(); i++ {
		if !t.ColumnVisible(i) {
			return true
		}
	}
	return false
}

func (colVisCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	var visible, hidden []int
	for i := 0; i < t.ColumnCount(); i++ {
		if t.ColumnVisible(i) {
			visible = append(visible, i)
		} else {
			hidden = append(hidden, i)
		}
	}
	if len(hidden) == 0 {
		return "", false
	}
	if len(hidden) <= len(visible) {
		return "f" + joinIndices(hidden), true
	}
	return "t" + joinIndices(visible), true
}

func (colVisCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	if raw == "" {
		return false, fmt.Errorf("colvis value is empty")
	}

	var listed bool
	switch raw[0] {
	case 't':
		listed = true
	case 'f':
		listed = false
	default:
		return false, fmt.Errorf("colvis prefix %q not recognized", string(raw[0]))
	}

	indices, err := splitIndices(raw[1:])
	if err != nil {
		return false, err
	}
	inList := make(map[int]bool, len(indices))
	for _, idx := range indices {
		inList[idx] = true
	}

	// 't' lists the visible columns, 'f' the hidden ones; everything not
	// listed gets the opposite state.
	for i := 0; i < t.ColumnCount(); i++ {
		t.SetColumnVisible(i, inList[i] == listed)
	}
	return true, nil
}

// colOrderCondition tracks the column display order, run-length compressed.
type colOrderCondition struct{}

func (colOrderCondition) Name() string     { return NameColOrder }
func (colOrderCondition) Key() byte        { return KeyColOrder }
func (colOrderCondition) Events() []string { return []string{types.EventColReorder} }

func (colOrderCondition) Applicable(t types.Table) bool {
	return t.Reorderable()
}

func (colOrderCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	for i, idx := range t.ColumnOrder() {
		if idx != i {
			return true
		}
	}
	return false
}

func (colOrderCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	order := t.ColumnOrder()
	if len(order) == 0 {
		return "", false
	}
	return compressIndices(order), true
}

func (colOrderCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	order, err := expandIndices(raw)
	if err != nil {
		return false, err
	}
	if err := t.SetColumnOrder(order); err != nil {
		return false, err
	}
	return true, nil
}

func joinIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

func splitIndices(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var out []int
	for part := range strings.SplitSeq(raw, ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("column index %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
