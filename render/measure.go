// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/measure.go
// Summary: Text measurement for the fixed-pitch device font.

package render

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/basicfont"
)

// Measurer reports the pixel size of a string.
type Measurer interface {
	Measure(text string) (w, h int)
}

// Font is the face every Text command is drawn with.
var Font = basicfont.Face7x13

// BasicMeasurer measures text set in Font. Wide runes take two cells.
type BasicMeasurer struct{}

func (BasicMeasurer) Measure(text string) (int, int) {
	return runewidth.StringWidth(text) * Font.Advance, Font.Height
}

// Fit truncates text so it measures at most maxWidth pixels, marking the cut with "...".
func Fit(m Measurer, text string, maxWidth int) string {
	if w, _ := m.Measure(text); w <= maxWidth {
		return text
	}
	cell, _ := m.Measure("m")
	if cell <= 0 {
		return text
	}
	return runewidth.Truncate(text, maxWidth/cell, "...")
}
