// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/snapshot.go
// Summary: Headless rendering of scripted launcher frames.

package devshell

import (
	"image"

	"github.com/framegrace/badgemenu/apps/launcher"
	"github.com/framegrace/badgemenu/internal/input"
	"github.com/framegrace/badgemenu/render"
)

// Snapshot runs frames steps at the given FPS, pressing script[i] on frame i,
// and returns the last drawn canvas with the last frame. It stops early on a
// launch.
func Snapshot(menu Menu, opts Options, frames int, script map[int]input.Set) (*image.NRGBA, launcher.Frame) {
	if opts.FPS < 1 {
		opts.FPS = 30
	}
	canvas := render.NewCanvas(opts.Width, opts.Height)
	st := menu.Start()
	var last launcher.Frame
	for i := 0; i < frames; i++ {
		now := int64(i) * 1000 / int64(opts.FPS)
		last = menu.Advance(st, script[i], now)
		if len(last.Commands) > 0 {
			canvas = render.NewCanvas(opts.Width, opts.Height)
			render.Rasterize(canvas, last.Commands)
		}
		if last.Launched() {
			break
		}
	}
	return canvas, last
}
