// Round-trip tests: encoding a table's non-default state and applying the
// resulting fragment to a freshly configured equivalent table must reproduce
// the same observable state.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

func TestRoundTripReproducesState(t *testing.T) {
	source := newFullGrid(t, "report", 10)
	sourceGW := fragment.NewGateway(fragment.NewMemoryLocation(""))
	attach(t, source, sourceGW)

	source.SetSearch("foo bar")
	source.SetOrder(types.Order{Column: 3, Dir: types.DirDesc})
	source.SetPage(2)
	source.SetPageLength(25)
	source.SetColumnVisible(1, false)
	require.NoError(t, source.SetColumnOrder([]int{9, 1, 2, 3, 4, 8, 7, 6, 5, 0}))
	source.SetScrollOffset(147.8)
	source.SelectRows([]string{"2", "5", "11"})

	shared := sourceGW.Raw()

	// A fresh, identically configured table picks the state up on init.
	clone := newFullGrid(t, "report", 10)
	cloneGW := fragment.NewGateway(fragment.NewMemoryLocation(shared))
	attach(t, clone, cloneGW)

	assert.Equal(t, "foo bar", clone.Search())
	assert.Equal(t, types.Order{Column: 3, Dir: types.DirDesc}, clone.Order())
	assert.Equal(t, 2, clone.Page())
	assert.Equal(t, 25, clone.PageLength())
	assert.False(t, clone.ColumnVisible(1))
	assert.True(t, clone.ColumnVisible(0))
	assert.Equal(t, []int{9, 1, 2, 3, 4, 8, 7, 6, 5, 0}, clone.ColumnOrder())
	assert.Equal(t, 147.0, clone.ScrollOffset())
	assert.Equal(t, []string{"2", "5", "11"}, clone.Selected())

	// The restored table serializes to the identical token.
	assert.Equal(t, sourceGW.Raw(), cloneGW.Raw())
}

func TestRoundTripDefaultStateLeavesNoToken(t *testing.T) {
	g := newFullGrid(t, "report", 5)
	gw := fragment.NewGateway(fragment.NewMemoryLocation(""))
	k := attach(t, g, gw)

	// Nothing departs from the baseline, so there is nothing to persist.
	assert.Equal(t, "", k.Token())
	assert.Equal(t, "", gw.Raw())

	// Leaving and returning to the default page clears the entry again.
	g.SetPage(3)
	g.SetPage(0)
	assert.Equal(t, fragment.Placeholder, gw.Raw())
}

func TestRoundTripTokenShape(t *testing.T) {
	g := newFullGrid(t, "report", 5)
	gw := fragment.NewGateway(fragment.NewMemoryLocation(""))
	k := attach(t, g, gw)

	g.SetOrder(types.Order{Column: 3, Dir: types.DirAsc})
	g.SetPage(2)
	g.SetPageLength(25)

	assert.Equal(t, "oa3:p2:l25", k.Token())
	assert.Equal(t, "report=oa3:p2:l25", gw.Raw())
}
