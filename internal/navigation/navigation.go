// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/navigation/navigation.go
// Summary: Grid selection state machine with page wraparound.
// Usage: The launcher feeds every pressed direction through Controller.Move.
// Notes: One event crosses at most one page boundary, whatever its delta.

package navigation

import "github.com/framegrace/badgemenu/internal/input"

// Selection is the current page and the index of the active visible icon.
type Selection struct {
	Page int
	Slot int
}

// Reloader loads page and returns how many icons it shows.
type Reloader func(page int) int

// Controller resolves directional input against the paged grid.
type Controller struct {
	Cols       int
	TotalPages int
	Reload     Reloader
}

// Move applies one directional signal. visible is the icon count of the
// current page; the returned count is that of the page selected afterwards.
func (c Controller) Move(sel Selection, visible int, sig input.Signal) (Selection, int) {
	delta := input.Delta(sig, c.Cols)
	if delta == 0 {
		return sel, visible
	}

	sel.Slot += delta
	switch {
	case sel.Slot >= visible:
		if sel.Page < c.TotalPages-1 {
			sel.Page++
		} else {
			sel.Page = 0
		}
		visible = c.Reload(sel.Page)
		sel.Slot = 0

	case sel.Slot < 0:
		if sel.Page > 0 {
			sel.Page--
		} else {
			sel.Page = c.TotalPages - 1
		}
		visible = c.Reload(sel.Page)
		sel.Slot = visible - 1
	}

	if visible == 0 {
		sel.Slot = 0
	}
	return sel, visible
}
