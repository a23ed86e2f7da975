// Package integration provides black-box tests for tablekeep: full
// keeper/gateway/registry stacks wired against in-memory grids, exercising
// the same paths a host integration would.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/tablekeep/internal/grid"
	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
	"github.com/mesh-intelligence/tablekeep/pkg/keeper"
	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// newFullGrid builds a grid with every capability active: n sortable columns,
// paging with a default length of 10, search, column reorder, scroll
// virtualization, and multi-select over thirty index-addressed rows.
func newFullGrid(t *testing.T, id string, n int) *grid.Grid {
	t.Helper()
	cols := make([]grid.Column, n)
	for i := range cols {
		cols[i] = grid.Column{Title: "col", Sortable: true}
	}
	g := grid.New(id, grid.Config{
		Columns:     cols,
		Searchable:  true,
		Paging:      true,
		PageLength:  10,
		Reorderable: true,
		Scrolling:   true,
		SelectMode:  types.SelectMulti,
	})
	for i := 0; i < 30; i++ {
		g.AddRow("x")
	}
	return g
}

// attach wires a keeper with default settings to a grid over the gateway.
func attach(t *testing.T, g *grid.Grid, gw *fragment.Gateway) *keeper.Keeper {
	t.Helper()
	k, err := keeper.New(g, gw, types.DefaultSettings())
	if err != nil {
		t.Fatalf("attach keeper to %s: %v", g.ID(), err)
	}
	return k
}
