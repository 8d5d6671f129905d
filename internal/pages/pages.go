// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/pages/pages.go
// Summary: Pagination of the app catalog into a fixed icon grid.
// Usage: The launcher rebuilds the icon list whenever the current page changes.

package pages

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/internal/effects"
	"github.com/framegrace/badgemenu/internal/sprites"
	"github.com/framegrace/badgemenu/internal/theming"
	"github.com/framegrace/badgemenu/registry"
)

// Layout is the icon grid geometry. Positions are icon centres in pixels.
type Layout struct {
	PageSize   int
	Cols       int
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
}

// Validate checks the grid against the slot palette.
func (l Layout) Validate(palette theming.Palette) error {
	switch {
	case l.PageSize < 1:
		return fmt.Errorf("page size must be >= 1, got %d", l.PageSize)
	case l.Cols < 1:
		return fmt.Errorf("columns must be >= 1, got %d", l.Cols)
	case l.PageSize > palette.Len():
		return fmt.Errorf("page size %d exceeds palette of %d colors", l.PageSize, palette.Len())
	}
	return nil
}

// Position returns the centre of slot.
func (l Layout) Position(slot int) (x, y float64) {
	col := slot % l.Cols
	row := slot / l.Cols
	return l.OriginX + float64(col)*l.CellWidth, l.OriginY + float64(row)*l.CellHeight
}

// TotalPages returns max(1, ceil(n/pageSize)).
func TotalPages(n, pageSize int) int {
	if pageSize < 1 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Icon is one visible entry of the current page.
type Icon struct {
	// Slot is the grid position on the page, also the palette index.
	Slot   int
	X, Y   float64
	Label  string
	App    registry.AppEntry
	Sprite *sprites.Sprite
	Tint   theming.Tint
	Anim   effects.IconAnimation
}

// SpriteResolver finds the icon image of an app directory.
type SpriteResolver interface {
	Resolve(appDir string) (*sprites.Sprite, error)
}

// Builder turns catalog pages into icons.
type Builder struct {
	Layout  Layout
	Palette theming.Palette
	Sprites SpriteResolver
	Log     *zap.Logger
}

// Load builds the icons of page. Apps whose icon cannot be resolved are
// skipped, so the result can hold fewer icons than occupied slots. A page
// index outside the catalog yields no icons.
func (b *Builder) Load(catalog registry.Catalog, page int) ([]*Icon, error) {
	if err := b.Layout.Validate(b.Palette); err != nil {
		return nil, err
	}
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}

	start := page * b.Layout.PageSize
	if page < 0 || start >= len(catalog) {
		return []*Icon{}, nil
	}
	end := min(start+b.Layout.PageSize, len(catalog))

	icons := make([]*Icon, 0, end-start)
	for i := start; i < end; i++ {
		app := catalog[i]
		slot := i - start

		sprite, err := b.Sprites.Resolve(app.Dir)
		if err != nil {
			log.Warn("skipping icon slot", zap.Int("page", page), zap.Int("slot", slot), zap.Error(err))
			continue
		}

		tint, err := b.Palette.Slot(slot)
		if err != nil {
			return nil, err
		}
		x, y := b.Layout.Position(slot)
		icons = append(icons, &Icon{
			Slot:   slot,
			X:      x,
			Y:      y,
			Label:  app.DisplayName,
			App:    app,
			Sprite: sprite,
			Tint:   tint,
		})
	}
	log.Debug("page loaded", zap.Int("page", page), zap.Int("icons", len(icons)))
	return icons, nil
}
