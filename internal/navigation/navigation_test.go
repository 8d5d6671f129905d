// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/framegrace/badgemenu/internal/input"
)

// grid simulates a paged catalog of n apps, pageSize per page.
type grid struct {
	n, pageSize int
	reloads     []int
	// shown overrides the visible count of a page (skipped icons).
	shown map[int]int
}

func (g *grid) pages() int {
	if g.n == 0 {
		return 1
	}
	return (g.n + g.pageSize - 1) / g.pageSize
}

func (g *grid) visible(page int) int {
	if v, ok := g.shown[page]; ok {
		return v
	}
	rest := g.n - page*g.pageSize
	return max(0, min(rest, g.pageSize))
}

func (g *grid) reload(page int) int {
	g.reloads = append(g.reloads, page)
	return g.visible(page)
}

func (g *grid) controller() Controller {
	return Controller{Cols: 3, TotalPages: g.pages(), Reload: g.reload}
}

func TestPrevFromOriginWrapsToLastIcon(t *testing.T) {
	g := &grid{n: 7, pageSize: 6}
	sel, visible := g.controller().Move(Selection{}, g.visible(0), input.Prev)

	assert.Equal(t, Selection{Page: 1, Slot: 0}, sel)
	assert.Equal(t, 1, visible)
	assert.Equal(t, []int{1}, g.reloads)

	g = &grid{n: 11, pageSize: 6}
	sel, _ = g.controller().Move(Selection{}, g.visible(0), input.Prev)
	assert.Equal(t, Selection{Page: 1, Slot: 4}, sel)
}

func TestNextFromLastIconWrapsToOrigin(t *testing.T) {
	g := &grid{n: 7, pageSize: 6}
	sel, visible := g.controller().Move(Selection{Page: 1, Slot: 0}, 1, input.Next)

	assert.Equal(t, Selection{Page: 0, Slot: 0}, sel)
	assert.Equal(t, 6, visible)
}

func TestPrevAcrossPageBoundary(t *testing.T) {
	g := &grid{n: 7, pageSize: 6}
	sel, _ := g.controller().Move(Selection{Page: 1, Slot: 0}, 1, input.Prev)

	assert.Equal(t, Selection{Page: 0, Slot: 5}, sel)
}

func TestNextWithinPageDoesNotReload(t *testing.T) {
	g := &grid{n: 7, pageSize: 6}
	sel, visible := g.controller().Move(Selection{Page: 0, Slot: 2}, 6, input.Next)

	assert.Equal(t, Selection{Page: 0, Slot: 3}, sel)
	assert.Equal(t, 6, visible)
	assert.Empty(t, g.reloads)
}

func TestUpDownMoveByRow(t *testing.T) {
	g := &grid{n: 6, pageSize: 6}
	c := g.controller()

	sel, _ := c.Move(Selection{Slot: 1}, 6, input.Down)
	assert.Equal(t, Selection{Slot: 4}, sel)

	sel, _ = c.Move(sel, 6, input.Up)
	assert.Equal(t, Selection{Slot: 1}, sel)
}

func TestDownOvershootCrossesSinglePage(t *testing.T) {
	// Three pages; page 1 holds a single icon. DOWN from slot 0 of page 1
	// overshoots by more than a row but only advances one page.
	g := &grid{n: 13, pageSize: 6, shown: map[int]int{1: 1}}
	sel, _ := g.controller().Move(Selection{Page: 1, Slot: 0}, 1, input.Down)

	assert.Equal(t, Selection{Page: 2, Slot: 0}, sel)
	assert.Equal(t, []int{2}, g.reloads)
}

func TestUpFromTopRowLandsOnLastIconOfPreviousPage(t *testing.T) {
	g := &grid{n: 12, pageSize: 6}
	sel, _ := g.controller().Move(Selection{Page: 1, Slot: 1}, 6, input.Up)

	assert.Equal(t, Selection{Page: 0, Slot: 5}, sel)
}

func TestSinglePageWrapsOntoItself(t *testing.T) {
	g := &grid{n: 4, pageSize: 6}
	c := g.controller()

	sel, _ := c.Move(Selection{Slot: 3}, 4, input.Next)
	assert.Equal(t, Selection{Slot: 0}, sel)

	sel, _ = c.Move(Selection{Slot: 0}, 4, input.Prev)
	assert.Equal(t, Selection{Slot: 3}, sel)
	assert.Equal(t, []int{0, 0}, g.reloads)
}

func TestEmptyCatalogPinsSlotZero(t *testing.T) {
	g := &grid{n: 0, pageSize: 6}
	c := g.controller()

	for _, sig := range []input.Signal{input.Next, input.Prev, input.Up, input.Down} {
		sel, visible := c.Move(Selection{}, 0, sig)
		assert.Equal(t, Selection{}, sel, sig.String())
		assert.Zero(t, visible)
	}
}

func TestConfirmIsNotNavigation(t *testing.T) {
	g := &grid{n: 7, pageSize: 6}
	sel, visible := g.controller().Move(Selection{Slot: 2}, 6, input.Confirm)

	assert.Equal(t, Selection{Slot: 2}, sel)
	assert.Equal(t, 6, visible)
	assert.Empty(t, g.reloads)
}

func TestSelectionInvariantHoldsUnderRandomWalk(t *testing.T) {
	g := &grid{n: 17, pageSize: 6}
	c := g.controller()
	sel, visible := Selection{}, g.visible(0)
	signals := []input.Signal{input.Next, input.Down, input.Down, input.Prev, input.Up, input.Up, input.Next, input.Down}

	for i := 0; i < 200; i++ {
		sel, visible = c.Move(sel, visible, signals[i%len(signals)])
		assert.GreaterOrEqual(t, sel.Page, 0)
		assert.Less(t, sel.Page, c.TotalPages)
		assert.GreaterOrEqual(t, sel.Slot, 0)
		assert.Less(t, sel.Slot, visible)
		assert.Equal(t, g.visible(sel.Page), visible)
	}
}
