package conditions

import (
	"strings"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// selectCondition tracks row selection as a dot-separated list of stable row
// ids (row indices when the table defines no id scheme). Single-select tables
// apply only the first id on load.
type selectCondition struct{}

func (selectCondition) Name() string { return NameSelect }
func (selectCondition) Key() byte    { return KeySelect }

func (selectCondition) Events() []string {
	return []string{types.EventSelect, types.EventDeselect}
}

func (selectCondition) Applicable(t types.Table) bool {
	return t.SelectMode() != types.SelectNone
}

func (selectCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	return len(t.Selected()) > 0
}

func (selectCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	ids := t.Selected()
	if len(ids) == 0 {
		return "", false
	}
	return strings.Join(ids, "."), true
}

func (selectCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	ids := strings.Split(raw, ".")
	if t.SelectMode() == types.SelectSingle {
		ids = ids[:1]
	}
	t.SelectRows(ids)
	return true, nil
}
