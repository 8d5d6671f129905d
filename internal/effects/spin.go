// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/spin.go
// Summary: Per-icon spin-in and bounce animation driven by host ticks.
// Usage: The launcher calls Animator.Frame for every visible icon once per frame.
// Notes: SpinScale and Bounce are pure so the math is testable without a display.

package effects

import "math"

// MinSpinScale keeps the spinning icon from collapsing to zero width.
const MinSpinScale = 0.1

// SpinConfig shapes the spin-in animation.
type SpinConfig struct {
	// Period is the tick length of one animation cycle.
	Period int64
	// Cycles is how many periods the spin lasts.
	Cycles int64
	// Steps quantises the scale to 1/Steps increments; 0 keeps it continuous.
	Steps int
}

// Duration returns the spin window in ticks.
func (c SpinConfig) Duration() int64 {
	return c.Period * c.Cycles
}

// BounceConfig shapes the vertical bob of the active icon.
type BounceConfig struct {
	Period    float64
	Amplitude float64
}

// SpinScale maps elapsed ticks to the horizontal scale factor. Its magnitude
// never drops below MinSpinScale; zero resolves to the negative side.
func SpinScale(elapsed int64, cfg SpinConfig) float64 {
	period := cfg.Period
	if period <= 0 {
		period = 1
	}
	w := math.Cos(float64(elapsed) / float64(period))
	if cfg.Steps > 0 {
		steps := float64(cfg.Steps)
		w = math.Round(w*steps) / steps
	}
	if w > 0 {
		return math.Max(MinSpinScale, w)
	}
	return math.Min(-MinSpinScale, w)
}

// Bounce returns the vertical offset at tick now.
func Bounce(now int64, cfg BounceConfig) float64 {
	if cfg.Period == 0 {
		return 0
	}
	return math.Sin(float64(now)/cfg.Period) * cfg.Amplitude
}

// IconAnimation is the animation state of one icon. The zero value is an
// inactive, still icon; a new value is created with every page load.
type IconAnimation struct {
	spinning  bool
	spinStart int64
	wasActive bool
}

// Activate records the icon's active flag and starts a spin on the
// inactive→active edge only. It reports whether a spin started.
func (a *IconAnimation) Activate(active bool, now int64) bool {
	started := active && !a.wasActive
	if started {
		a.spinning = true
		a.spinStart = now
	}
	a.wasActive = active
	return started
}

// Spinning reports whether a spin is in progress and when it started.
func (a *IconAnimation) Spinning() (bool, int64) {
	return a.spinning, a.spinStart
}

// Params is what the renderer needs to draw one icon on one frame.
type Params struct {
	Active bool
	// Scale is the horizontal scale, negative while the icon shows its back.
	Scale  float64
	Bounce float64
}

// Animator advances icon animations.
type Animator struct {
	Spin   SpinConfig
	Bounce BounceConfig
}

// Frame applies the activation edge for this frame and returns the draw
// parameters, clearing the spin once its window has passed.
func (an Animator) Frame(a *IconAnimation, active bool, now int64) Params {
	a.Activate(active, now)

	p := Params{Active: a.wasActive, Scale: 1}
	if a.spinning {
		elapsed := now - a.spinStart
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > an.Spin.Duration() {
			a.spinning = false
		} else {
			p.Scale = SpinScale(elapsed, an.Spin)
		}
	}
	if a.wasActive {
		p.Bounce = Bounce(now, an.Bounce)
	}
	return p
}
