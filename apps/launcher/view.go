// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/view.go
// Summary: Draw commands for one launcher frame.
// Usage: Advance calls compose after input and animation have been applied.

package launcher

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/framegrace/badgemenu/internal/effects"
	"github.com/framegrace/badgemenu/internal/pages"
	"github.com/framegrace/badgemenu/internal/theming"
	"github.com/framegrace/badgemenu/render"
)

const (
	cornerSize   = 10
	overlayR     = 8
	headerHeight = 16

	iconRadius   = 20
	iconRounding = 12
	shadowScale  = 1.1

	spriteActive   = 32
	spriteInactive = 30

	batteryW = 16
	batteryH = 8
)

var (
	headerShadow = color.NRGBA{A: 80}
	batteryGlow  = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	iconShadow   = color.NRGBA{A: 40}
)

func (l *Launcher) compose(st *State, params []effects.Params, now int64) render.List {
	var list render.List
	l.drawBackground(&list)
	l.drawHeader(&list, now)
	for i, icon := range st.Icons {
		drawIcon(&list, icon, params[i])
	}
	l.drawLabel(&list, st)
	l.drawPageIndicator(&list, st)
	if overlay, ok := st.Fade.Next(); ok {
		list.Clear(color.NRGBA{A: overlay})
	}
	return list
}

func (l *Launcher) drawBackground(list *render.List) {
	w, h := float64(l.opts.Width), float64(l.opts.Height)
	black := theming.RGBA(theming.Black, 255)
	list.Rect(0, 0, cornerSize, cornerSize, black)
	list.Rect(w-cornerSize, 0, cornerSize, cornerSize, black)
	list.Rect(0, h-cornerSize, cornerSize, cornerSize, black)
	list.Rect(w-cornerSize, h-cornerSize, cornerSize, cornerSize, black)

	for y := 0; y < l.opts.Height; y++ {
		c := theming.Gradient(theming.Blue, theming.LightBlue, float64(y)/h)
		list.Rect(0, float64(y), w, 1, theming.RGBA(c, 255))
	}
	list.RoundedRect(0, 0, w, h, overlayR, theming.RGBA(theming.HeaderBg, 50))
}

func (l *Launcher) drawHeader(list *render.List, now int64) {
	w := float64(l.opts.Width)
	for y := 0; y < headerHeight; y++ {
		list.Rect(0, float64(y), w, 1, theming.RGBA(theming.HeaderBg, uint8(255-3*y)))
	}

	dots := int(math.Sin(float64(now)/250)*2 + 2)
	title := l.opts.Title + strings.Repeat(".", dots)
	list.Text(title, 6, 3, headerShadow)
	list.Text(title, 5, 2, theming.RGBA(theming.White, 255))

	l.drawBattery(list, now)
}

func (l *Launcher) drawBattery(list *render.List, now int64) {
	r := l.battery.At(now)
	level := float64(r.Level)
	if r.Charging {
		level = math.Mod(float64(now)/20, 100)
	}

	x, y := float64(l.opts.Width-23), 4.0
	white := theming.RGBA(theming.White, 255)
	list.Rect(x-1, y-1, batteryW+2, batteryH+2, batteryGlow)
	list.Rect(x, y, batteryW, batteryH, white)
	list.Rect(x+batteryW, y+2, 1, 4, white)

	fill := (float64(batteryW-4) / 100) * level
	if fill <= 0 {
		return
	}
	bar := theming.Red
	switch {
	case level > 50:
		bar = theming.Green
	case level > 20:
		bar = theming.Yellow
	}
	list.Rect(x+2, y+2, fill, batteryH-4, theming.RGBA(bar, 255))
}

// drawIcon draws shadow, body, highlight and sprite. A negative scale mirrors
// the body and hides the sprite.
func drawIcon(list *render.List, icon *pages.Icon, p effects.Params) {
	cx, cy := icon.X, icon.Y+p.Bounce
	shape := func(scale, dx, dy float64, c color.NRGBA) {
		r := iconRadius * scale
		w := 2 * r * p.Scale
		list.RoundedRect(cx+dx*p.Scale-w/2, cy+dy-r, w, 2*r, iconRounding*scale, c)
	}

	shape(shadowScale, 0, 0, iconShadow)
	body := icon.Tint.Faded
	highlight := theming.RGBA(theming.White, 10)
	if p.Active {
		body = icon.Tint.Bold
		highlight = theming.RGBA(theming.White, 30)
	}
	shape(1, -1, -1, body)
	shape(1, 1, 1, highlight)

	if p.Scale <= 0 || icon.Sprite == nil {
		return
	}
	size, alpha := float64(spriteInactive), uint8(120)
	if p.Active {
		size, alpha = spriteActive, 255
	}
	w := size * p.Scale
	list.Blit(icon.Sprite.Image, cx-w/2, cy-size/2, w, size, alpha)
}

func (l *Launcher) drawLabel(list *render.List, st *State) {
	if st.Selection.Slot >= len(st.Icons) {
		return
	}
	label := render.Fit(l.deps.Measurer, st.Icons[st.Selection.Slot].Label, l.opts.Width-16)
	tw, _ := l.deps.Measurer.Measure(label)
	w := float64(tw)
	cx := float64(l.opts.Width) / 2
	y := float64(l.opts.Height - 20)

	list.RoundedRect(cx-w/2-4, y, w+8, 15, 4, theming.RGBA(theming.Blue, 255))
	list.Text(label, cx-w/2, y+1, theming.RGBA(theming.White, 255))
}

func (l *Launcher) drawPageIndicator(list *render.List, st *State) {
	if st.TotalPages <= 1 {
		return
	}
	label := fmt.Sprintf("%d/%d", st.Selection.Page+1, st.TotalPages)
	w, _ := l.deps.Measurer.Measure(label)
	list.Text(label, float64(l.opts.Width-w-5), float64(l.opts.Height-12), theming.RGBA(theming.Blue, 200))
}
