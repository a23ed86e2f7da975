package conditions

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// scrollerCondition tracks the virtualized scroll offset, truncated to an
// integer. Applying it only repositions the viewport, so it is the one
// condition that never requests a redraw.
type scrollerCondition struct{}

func (scrollerCondition) Name() string     { return NameScroller }
func (scrollerCondition) Key() byte        { return KeyScroller }
func (scrollerCondition) Events() []string { return []string{types.EventScroll} }

func (scrollerCondition) Applicable(t types.Table) bool {
	return t.Scrolling()
}

func (scrollerCondition) NonDefault(t types.Table, _ types.Defaults) bool {
	return int(t.ScrollOffset()) != 0
}

func (scrollerCondition) Serialize(t types.Table, _ types.Defaults) (string, bool) {
	return strconv.Itoa(int(t.ScrollOffset())), true
}

func (scrollerCondition) Deserialize(t types.Table, _ types.Defaults, raw string) (bool, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("scroll offset %q: %w", raw, err)
	}
	t.SetScrollOffset(float64(n))
	return false, nil
}
