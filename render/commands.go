// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/commands.go
// Summary: Render command list produced by one launcher frame.
// Usage: The launcher appends primitives; a host rasterizes or forwards them.

package render

import (
	"image"
	"image/color"
)

// Op identifies a drawing primitive.
type Op uint8

const (
	OpClear Op = iota
	OpRect
	OpRoundedRect
	OpCircle
	OpLine
	OpText
	OpBlit
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpRoundedRect:
		return "rounded-rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpBlit:
		return "blit"
	}
	return "unknown"
}

// Command is a single primitive. Fields unused by an Op are zero.
//
// Rect, RoundedRect and Blit use X, Y as the top-left corner and W, H as size;
// a negative W on Blit mirrors the image horizontally. Circle uses X, Y as
// centre and R as radius. Line runs from X, Y to X2, Y2 with thickness R.
// Text draws at X, Y (top-left of the text box).
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	R      float64
	X2, Y2 float64
	Color  color.NRGBA
	Text   string
	Image  image.Image
	// Alpha scales the blitted image's opacity.
	Alpha uint8
}

// List is an ordered set of commands; later commands draw over earlier ones.
type List []Command

func (l *List) Clear(c color.NRGBA) {
	*l = append(*l, Command{Op: OpClear, Color: c})
}

func (l *List) Rect(x, y, w, h float64, c color.NRGBA) {
	*l = append(*l, Command{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (l *List) RoundedRect(x, y, w, h, r float64, c color.NRGBA) {
	*l = append(*l, Command{Op: OpRoundedRect, X: x, Y: y, W: w, H: h, R: r, Color: c})
}

func (l *List) Circle(x, y, r float64, c color.NRGBA) {
	*l = append(*l, Command{Op: OpCircle, X: x, Y: y, R: r, Color: c})
}

func (l *List) Line(x1, y1, x2, y2, thickness float64, c color.NRGBA) {
	*l = append(*l, Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, R: thickness, Color: c})
}

func (l *List) Text(s string, x, y float64, c color.NRGBA) {
	*l = append(*l, Command{Op: OpText, Text: s, X: x, Y: y, Color: c})
}

func (l *List) Blit(img image.Image, x, y, w, h float64, alpha uint8) {
	*l = append(*l, Command{Op: OpBlit, Image: img, X: x, Y: y, W: w, H: h, Alpha: alpha})
}

// Ops returns the op sequence, handy for asserting draw order.
func (l List) Ops() []Op {
	ops := make([]Op, len(l))
	for i, c := range l {
		ops[i] = c.Op
	}
	return ops
}
