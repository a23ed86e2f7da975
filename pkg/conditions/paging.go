package conditions

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// pageCondition tracks the zero-based current page.
type pageCondition struct{}

func (pageCondition) Name() string     { return NamePage }
func (pageCondition) Key() byte        { return KeyPage }
func (pageCondition) Events() []string { return []string{types.EventPage} }

func (pageCondition) Applicable(t types.Table) bool {
	return t.Paging()
}

func (pageCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	return t.Page() != 0
}

func (pageCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	return strconv.Itoa(t.Page()), true
}

func (pageCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("page value %q: %w", raw, err)
	}
	if n < 0 {
		return false, fmt.Errorf("page value %d is negative", n)
	}
	t.SetPage(n)
	return true, nil
}

// lengthCondition tracks the page size against the configured default.
type lengthCondition struct{}

func (lengthCondition) Name() string     { return NameLength }
func (lengthCondition) Key() byte        { return KeyLength }
func (lengthCondition) Events() []string { return []string{types.EventLength} }

func (lengthCondition) Applicable(t types.Table) bool {
	return t.Paging()
}

func (lengthCondition) NonDefault(t types.Table, d types.Defaults) bool {
	return t.PageLength() != d.PageLength
}

func (lengthCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	return strconv.Itoa(t.PageLength()), true
}

func (lengthCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("length value %q: %w", raw, err)
	}
	if n <= 0 {
		return false, fmt.Errorf("length value %d must be positive", n)
	}
	t.SetPageLength(n)
	return true, nil
}
