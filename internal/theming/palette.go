// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/palette.go
// Summary: Slot palette and launcher UI colors.
// Usage: Page building resolves each icon slot to a Tint; the view uses the UI colors.

package theming

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSlotColors is the cloud-themed icon palette, one entry per grid slot.
var DefaultSlotColors = []string{
	"#0070d2", // blue
	"#5fed83", // green
	"#ffba58", // orange
	"#badaff", // light blue
	"#ff80d2", // pink
	"#6e44ff", // purple
}

// UI colors used by the launcher chrome.
var (
	Black     = colorful.Color{}
	White     = colorful.Color{R: 1, G: 1, B: 1}
	Blue      = mustHex("#0070d2")
	HeaderBg  = mustHex("#005fb2")
	LightBlue = mustHex("#badaff")
	Green     = mustHex("#5fed83")
	Yellow    = mustHex("#ffdc64")
	Red       = mustHex("#ff6464")
)

// Tint is the pair of body colors for one icon slot.
type Tint struct {
	Bold  color.NRGBA
	Faded color.NRGBA
}

// Palette maps slot indexes to tints.
type Palette struct {
	colors  []colorful.Color
	divisor float64
}

// NewPalette parses hex colors; inactive tints are each channel divided by divisor.
func NewPalette(divisor float64, hexColors ...string) (Palette, error) {
	if divisor < 1 {
		return Palette{}, fmt.Errorf("dim divisor must be >= 1, got %v", divisor)
	}
	colors := make([]colorful.Color, 0, len(hexColors))
	for _, h := range hexColors {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette color %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return Palette{colors: colors, divisor: divisor}, nil
}

// Len returns the number of slots the palette covers.
func (p Palette) Len() int {
	return len(p.colors)
}

// Slot returns the tint for a grid slot.
func (p Palette) Slot(slot int) (Tint, error) {
	if slot < 0 || slot >= len(p.colors) {
		return Tint{}, fmt.Errorf("slot %d outside palette of %d colors", slot, len(p.colors))
	}
	c := p.colors[slot]
	return Tint{
		Bold:  RGBA(c, 255),
		Faded: RGBA(Dim(c, p.divisor), 255),
	}, nil
}

// Dim divides every channel by divisor.
func Dim(c colorful.Color, divisor float64) colorful.Color {
	return colorful.Color{R: c.R / divisor, G: c.G / divisor, B: c.B / divisor}
}

// Gradient blends from→to in RGB space at t in [0,1].
func Gradient(from, to colorful.Color, t float64) colorful.Color {
	return from.BlendRgb(to, t).Clamped()
}

// RGBA converts c to a non-premultiplied color with the given alpha.
func RGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}
