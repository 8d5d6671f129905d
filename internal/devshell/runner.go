// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Terminal host that drives the launcher frame by frame.
// Usage: NewHost(driver, menu, opts, logger).Run(ctx) from cmd/badgemenu.
// Notes: The host owns the only goroutines: a tcell event pump and the frame loop.

package devshell

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/apps/launcher"
	"github.com/framegrace/badgemenu/internal/input"
	"github.com/framegrace/badgemenu/render"
)

// Menu is the launcher as seen by the host.
type Menu interface {
	Start() *launcher.State
	Rediscover(st *launcher.State)
	Advance(st *launcher.State, pressed input.Set, now int64) launcher.Frame
}

// Options configures the host surface.
type Options struct {
	Width, Height int
	FPS           int
}

// Host runs a Menu on a ScreenDriver.
type Host struct {
	driver ScreenDriver
	menu   Menu
	opts   Options
	log    *zap.Logger

	start time.Time
	state *launcher.State
	// target is the app handed off to; empty while the menu is showing.
	target  string
	pressed input.Set
}

// NewHost creates a host. FPS below 1 falls back to 30.
func NewHost(driver ScreenDriver, menu Menu, opts Options, logger *zap.Logger) *Host {
	if opts.FPS < 1 {
		opts.FPS = 30
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{driver: driver, menu: menu, opts: opts, log: logger.Named("host")}
}

// Action is what a key asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionSignal
	ActionBack
	ActionRescan
	ActionQuit
)

// MapKey translates a key event into a host action and, for ActionSignal, the signal.
func MapKey(ev *tcell.EventKey) (Action, input.Signal) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyEscape:
		return ActionBack, 0
	case tcell.KeyUp:
		return ActionSignal, input.Up
	case tcell.KeyDown:
		return ActionSignal, input.Down
	case tcell.KeyLeft:
		return ActionSignal, input.Prev
	case tcell.KeyRight:
		return ActionSignal, input.Next
	case tcell.KeyEnter:
		return ActionSignal, input.Confirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return ActionSignal, input.Up
		case 'j':
			return ActionSignal, input.Down
		case 'h':
			return ActionSignal, input.Prev
		case 'l':
			return ActionSignal, input.Next
		case ' ':
			return ActionSignal, input.Confirm
		case 'r':
			return ActionRescan, 0
		case 'q':
			return ActionQuit, 0
		}
	}
	return ActionNone, 0
}

// Run initialises the driver and loops until quit or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if err := h.driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer h.driver.Fini()
	h.driver.HideCursor()
	h.driver.Clear()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.driver.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.start = time.Now()
	h.state = h.menu.Start()
	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("context cancelled, exiting")
			return nil
		case ev := <-events:
			if quit := h.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

func (h *Host) handle(ev tcell.Event) (quit bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		h.driver.Clear()
		if h.target != "" {
			h.showTarget()
		}
	case *tcell.EventKey:
		act, sig := MapKey(tev)
		switch act {
		case ActionQuit:
			return true
		case ActionBack:
			if h.target != "" {
				h.log.Info("returned from app", zap.String("target", h.target))
				h.target = ""
				h.pressed = 0
				h.state = h.menu.Start()
			}
		case ActionRescan:
			if h.target == "" {
				h.menu.Rediscover(h.state)
			}
		case ActionSignal:
			if h.target == "" {
				h.pressed = h.pressed.With(sig)
			}
		}
	}
	return false
}

func (h *Host) frame() {
	if h.target != "" {
		return
	}
	now := time.Since(h.start).Milliseconds()
	f := h.menu.Advance(h.state, h.pressed, now)
	h.pressed = 0
	if len(f.Commands) > 0 {
		canvas := render.NewCanvas(h.opts.Width, h.opts.Height)
		render.Rasterize(canvas, f.Commands)
		Present(h.driver, canvas)
	}
	if f.Launched() {
		h.target = f.Target
		h.log.Info("handing off", zap.String("target", f.Target), zap.String("session", h.state.Session))
		h.showTarget()
	}
}

// showTarget draws the placeholder shown while a launched app runs.
func (h *Host) showTarget() {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	var list render.List
	list.Clear(color.NRGBA{A: 255})
	m := render.BasicMeasurer{}
	maxW := h.opts.Width - 8
	list.Text(render.Fit(m, "Running", maxW), 4, 20, white)
	list.Text(render.Fit(m, h.target, maxW), 4, 40, white)
	list.Text(render.Fit(m, "Esc: menu", maxW), 4, float64(h.opts.Height-20), color.NRGBA{R: 186, G: 218, B: 255, A: 255})

	canvas := render.NewCanvas(h.opts.Width, h.opts.Height)
	render.Rasterize(canvas, list)
	Present(h.driver, canvas)
}
