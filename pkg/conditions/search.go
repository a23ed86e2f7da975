package conditions

import (
	"net/url"
	"strings"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// searchCondition tracks the global filter text. The value is percent-encoded
// so delimiter characters (':', '&', '=') never leak into the token grammar.
type searchCondition struct{}

func (searchCondition) Name() string     { return NameSearch }
func (searchCondition) Key() byte        { return KeySearch }
func (searchCondition) Events() []string { return []string{types.EventSearch} }

func (searchCondition) Applicable(t types.Table) bool {
	return t.Searchable()
}

func (searchCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	return len(t.Search()) > 0
}

func (searchCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	q := t.Search()
	if q == "" {
		return "", false
	}
	return escapeSearch(q), true
}

func (searchCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	q, err := url.QueryUnescape(raw)
	if err != nil {
		return false, err
	}
	t.SetSearch(q)
	return true, nil
}

// escapeSearch percent-encodes with %20 for spaces rather than '+', matching
// fragment-style encoding.
func escapeSearch(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
