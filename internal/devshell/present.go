// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/present.go
// Summary: Shows a pixel canvas on a terminal using half-block cells.
// Notes: Each cell carries two vertical pixels; the canvas is shrunk to fit, never enlarged.

package devshell

import (
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

const upperHalf = '▀'

// Fit scales src down with ApproxBiLinear so that it fits cols x rows*2
// pixels, preserving aspect. src is returned as is when it already fits.
func Fit(src *image.NRGBA, cols, rows int) *image.NRGBA {
	b := src.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	scale := min(1, float64(cols)/float64(b.Dx()), float64(rows*2)/float64(b.Dy()))
	if scale >= 1 {
		return src
	}
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Present draws img centred on the driver and shows it.
func Present(d ScreenDriver, img *image.NRGBA) {
	cols, rows := d.Size()
	fitted := Fit(img, cols, rows)
	b := fitted.Bounds()

	d.Clear()
	offX := (cols - b.Dx()) / 2
	offY := (rows - (b.Dy()+1)/2) / 2
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := cellColor(fitted, b.Min.X+x, b.Min.Y+y)
			bottom := tcell.ColorBlack
			if y+1 < b.Dy() {
				bottom = cellColor(fitted, b.Min.X+x, b.Min.Y+y+1)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			d.SetContent(offX+x, offY+y/2, upperHalf, nil, style)
		}
	}
	d.Show()
}

// cellColor flattens a possibly translucent pixel onto black.
func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	a := uint32(c.A)
	return tcell.NewRGBColor(
		int32(uint32(c.R)*a/255),
		int32(uint32(c.G)*a/255),
		int32(uint32(c.B)*a/255),
	)
}
