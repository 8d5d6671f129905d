// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/fade.go
// Summary: One-shot screen fade-in.

package effects

// FadeIn raises Alpha by Step every frame until it passes Max. Until then a
// dark overlay of opacity Max-Alpha covers the screen. Once finished it never
// restarts.
type FadeIn struct {
	Alpha int
	Step  int
	Max   int
	done  bool
}

// NewFadeIn creates a fade starting at alpha start.
func NewFadeIn(start, step, max int) FadeIn {
	if step <= 0 {
		step = max + 1
	}
	return FadeIn{Alpha: start, Step: step, Max: max}
}

// Next returns the overlay opacity for the current frame and advances the
// fade. ok is false once the fade has completed.
func (f *FadeIn) Next() (overlay uint8, ok bool) {
	if f.done || f.Alpha > f.Max {
		f.done = true
		return 0, false
	}
	o := f.Max - f.Alpha
	switch {
	case o < 0:
		o = 0
	case o > 255:
		o = 255
	}
	f.Alpha += f.Step
	return uint8(o), true
}

// Done reports whether the fade has completed.
func (f *FadeIn) Done() bool {
	return f.done || f.Alpha > f.Max
}
