// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/raster.go
// Summary: Software rasterizer for render command lists.
// Usage: Hosts without a native display draw frames into an image.NRGBA.

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// Rasterize draws every command of list onto dst in order.
func Rasterize(dst *image.NRGBA, list List) {
	for _, cmd := range list {
		rasterizeOne(dst, cmd)
	}
}

func rasterizeOne(dst *image.NRGBA, c Command) {
	switch c.Op {
	case OpClear:
		draw.Draw(dst, dst.Bounds(), image.NewUniform(c.Color), image.Point{}, draw.Over)

	case OpRect:
		x, y, w, h := normalize(c.X, c.Y, c.W, c.H)
		r := image.Rect(round(x), round(y), round(x+w), round(y+h)).Intersect(dst.Bounds())
		if !r.Empty() {
			draw.Draw(dst, r, image.NewUniform(c.Color), image.Point{}, draw.Over)
		}

	case OpRoundedRect:
		x, y, w, h := normalize(c.X, c.Y, c.W, c.H)
		radius := math.Min(c.R, math.Min(w, h)/2)
		fill(dst, bounds(x, y, x+w, y+h), c.Color, func(px, py float64) bool {
			if px < x || px >= x+w || py < y || py >= y+h {
				return false
			}
			cx := clamp(px, x+radius, x+w-radius)
			cy := clamp(py, y+radius, y+h-radius)
			return (px-cx)*(px-cx)+(py-cy)*(py-cy) <= radius*radius
		})

	case OpCircle:
		fill(dst, bounds(c.X-c.R, c.Y-c.R, c.X+c.R, c.Y+c.R), c.Color, func(px, py float64) bool {
			return (px-c.X)*(px-c.X)+(py-c.Y)*(py-c.Y) <= c.R*c.R
		})

	case OpLine:
		half := math.Max(c.R, 1) / 2
		b := bounds(math.Min(c.X, c.X2)-half, math.Min(c.Y, c.Y2)-half, math.Max(c.X, c.X2)+half, math.Max(c.Y, c.Y2)+half)
		fill(dst, b, c.Color, func(px, py float64) bool {
			return segmentDistance(px, py, c.X, c.Y, c.X2, c.Y2) <= half
		})

	case OpText:
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(c.Color),
			Face: Font,
			Dot:  fixed.P(round(c.X), round(c.Y)+Font.Ascent),
		}
		d.DrawString(c.Text)

	case OpBlit:
		blit(dst, c)
	}
}

func blit(dst *image.NRGBA, c Command) {
	if c.Image == nil {
		return
	}
	w, h := round(math.Abs(c.W)), round(math.Abs(c.H))
	if w == 0 || h == 0 {
		return
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), c.Image, c.Image.Bounds(), draw.Src, nil)
	if c.W < 0 {
		mirror(scaled)
	}
	r := image.Rect(round(c.X), round(c.Y), round(c.X)+w, round(c.Y)+h)
	mask := image.NewUniform(color.Alpha{A: c.Alpha})
	draw.DrawMask(dst, r, scaled, image.Point{}, mask, image.Point{}, draw.Over)
}

func mirror(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for l, r := b.Min.X, b.Max.X-1; l < r; l, r = l+1, r-1 {
			a, z := img.NRGBAAt(l, y), img.NRGBAAt(r, y)
			img.SetNRGBA(l, y, z)
			img.SetNRGBA(r, y, a)
		}
	}
}

// shapeMask is an alpha mask defined by a point-inside test on pixel centres.
type shapeMask struct {
	rect   image.Rectangle
	inside func(px, py float64) bool
}

func (m shapeMask) ColorModel() color.Model { return color.AlphaModel }
func (m shapeMask) Bounds() image.Rectangle { return m.rect }

func (m shapeMask) At(x, y int) color.Color {
	if m.inside(float64(x)+0.5, float64(y)+0.5) {
		return color.Opaque
	}
	return color.Transparent
}

func fill(dst *image.NRGBA, b image.Rectangle, c color.NRGBA, inside func(px, py float64) bool) {
	r := b.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, shapeMask{rect: r, inside: inside}, r.Min, draw.Over)
}

func bounds(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

func normalize(x, y, w, h float64) (float64, float64, float64, float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = clamp(((px-x1)*dx+(py-y1)*dy)/lenSq, 0, 1)
	}
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64) int {
	return int(math.Round(v))
}
