package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

func TestNewAppliesConfigDefaults(t *testing.T) {
	g := New("", Config{
		Columns: []Column{{Title: "a"}, {Title: "b"}},
		Paging:  true,
	})

	assert.NotEmpty(t, g.ID())
	assert.Equal(t, 10, g.PageLength())
	assert.Equal(t, types.SelectNone, g.SelectMode())
	assert.Equal(t, types.Order{Column: 0, Dir: types.DirAsc}, g.DefaultOrder())
	assert.Equal(t, []int{0, 1}, g.ColumnOrder())
	assert.True(t, g.ColumnVisible(0))
	assert.False(t, g.ColumnVisible(7))
}

func TestAddRowIDs(t *testing.T) {
	t.Run("indexed rows", func(t *testing.T) {
		g := New("t1", Config{Columns: []Column{{Title: "a"}}})
		assert.Equal(t, "0", g.AddRow("x"))
		assert.Equal(t, "1", g.AddRow("y"))
	})

	t.Run("stable ids", func(t *testing.T) {
		g := New("t1", Config{
			Columns:      []Column{{Title: "a"}},
			StableRowIDs: true,
		})
		a := g.AddRow("x")
		b := g.AddRow("y")
		assert.NotEmpty(t, a)
		assert.NotEqual(t, a, b)
	})
}

func TestSetColumnOrderValidation(t *testing.T) {
	g := New("t1", Config{
		Columns:     []Column{{Title: "a"}, {Title: "b"}, {Title: "c"}},
		Reorderable: true,
	})

	require.NoError(t, g.SetColumnOrder([]int{2, 0, 1}))
	assert.Equal(t, []int{2, 0, 1}, g.ColumnOrder())

	for _, bad := range [][]int{
		{0, 1},       // too short
		{0, 1, 2, 3}, // too long
		{0, 0, 1},    // repeated index
		{0, 1, 5},    // out of range
		{-1, 1, 2},   // negative
	} {
		assert.ErrorIs(t, g.SetColumnOrder(bad), types.ErrInvalidColumnOrder)
	}
}

func TestSelectRows(t *testing.T) {
	g := New("t1", Config{
		Columns:    []Column{{Title: "a"}},
		SelectMode: types.SelectMulti,
	})
	for i := 0; i < 5; i++ {
		g.AddRow("x")
	}

	g.SelectRows([]string{"1", "3", "99"})
	assert.Equal(t, []string{"1", "3"}, g.Selected())

	g.SelectRows(nil)
	assert.Empty(t, g.Selected())
}

func TestSelectRowsSingleMode(t *testing.T) {
	g := New("t1", Config{
		Columns:    []Column{{Title: "a"}},
		SelectMode: types.SelectSingle,
	})
	for i := 0; i < 5; i++ {
		g.AddRow("x")
	}

	g.SelectRows([]string{"2", "4"})
	assert.Equal(t, []string{"2"}, g.Selected())
}

func TestEventsFireOnChange(t *testing.T) {
	g := New("t1", Config{
		Columns:    []Column{{Title: "a", Sortable: true}},
		Searchable: true,
		Paging:     true,
		SelectMode: types.SelectMulti,
	})
	g.AddRow("x")

	fired := map[string]int{}
	for _, event := range []string{
		types.EventSearch, types.EventOrder, types.EventPage,
		types.EventLength, types.EventColVis, types.EventScroll,
		types.EventSelect, types.EventDeselect,
	} {
		g.On(event, func() { fired[event]++ })
	}

	g.SetSearch("q")
	g.SetOrder(types.Order{Column: 0, Dir: types.DirDesc})
	g.SetPage(1)
	g.SetPageLength(25)
	g.SetColumnVisible(0, false)
	g.SetScrollOffset(10)
	g.SelectRows([]string{"0"})
	g.SelectRows(nil)

	for event, n := range fired {
		assert.Equal(t, 1, n, event)
	}
	assert.Len(t, fired, 8)
}

func TestSetColumnVisibleNoopDoesNotFire(t *testing.T) {
	g := New("t1", Config{Columns: []Column{{Title: "a"}}})

	fired := 0
	g.On(types.EventColVis, func() { fired++ })

	g.SetColumnVisible(0, true) // already visible
	assert.Equal(t, 0, fired)

	g.SetColumnVisible(0, false)
	assert.Equal(t, 1, fired)
}

func TestSubscriptionUnsubscribe(t *testing.T) {
	g := New("t1", Config{Searchable: true})

	fired := 0
	sub := g.On(types.EventSearch, func() { fired++ })
	g.SetSearch("a")
	assert.Equal(t, 1, fired)

	sub.Unsubscribe()
	sub.Unsubscribe() // idempotent
	g.SetSearch("b")
	assert.Equal(t, 1, fired)
}

func TestIndependentSubscriptionsDetachIndependently(t *testing.T) {
	g := New("t1", Config{Searchable: true})

	var first, second int
	subA := g.On(types.EventSearch, func() { first++ })
	g.On(types.EventSearch, func() { second++ })

	subA.Unsubscribe()
	g.SetSearch("a")

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}
