// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/launcher.go
// Summary: Paged icon launcher for the badge display.
// Usage: Start a session, then call Advance once per frame with the pressed
//   signals; a Frame with a Target hands control to that app.

package launcher

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/internal/effects"
	"github.com/framegrace/badgemenu/internal/input"
	"github.com/framegrace/badgemenu/internal/navigation"
	"github.com/framegrace/badgemenu/internal/pages"
	"github.com/framegrace/badgemenu/internal/power"
	"github.com/framegrace/badgemenu/internal/storage"
	"github.com/framegrace/badgemenu/registry"
	"github.com/framegrace/badgemenu/render"
)

// Options is the static presentation of a launcher.
type Options struct {
	Width, Height int
	Title         string
	Animator      effects.Animator
	FadeStart     int
	FadeStep      int
	FadeMax       int
	// BatteryPoll is the tick interval between battery reads; zero reads
	// only on Start and Rediscover.
	BatteryPoll   int64
}

// Deps are the collaborators a launcher works through.
type Deps struct {
	Storage  storage.FS
	Registry *registry.Registry
	Pages    *pages.Builder
	Power    power.Source
	Measurer render.Measurer
	Logger   *zap.Logger
}

// State is one launcher session. The host owns it and passes it to every
// Advance; nothing else mutates it.
type State struct {
	Catalog    registry.Catalog
	Selection  navigation.Selection
	Icons      []*pages.Icon
	TotalPages int
	Fade       effects.FadeIn
	Session    string
}

// Frame is the outcome of one step.
type Frame struct {
	Commands render.List
	// Target is the absolute directory of the app to hand off to, or empty.
	Target string
}

// Launched reports whether the frame hands control to an app.
func (f Frame) Launched() bool {
	return f.Target != ""
}

// Launcher runs the menu.
type Launcher struct {
	deps     Deps
	opts     Options
	dispatch *Dispatcher
	battery  *power.Sampler
	log      *zap.Logger
}

// New validates the page layout against the palette and returns a launcher.
func New(deps Deps, opts Options) (*Launcher, error) {
	if deps.Storage == nil || deps.Registry == nil || deps.Pages == nil {
		return nil, fmt.Errorf("launcher: storage, registry and page builder are required")
	}
	if err := deps.Pages.Layout.Validate(deps.Pages.Palette); err != nil {
		return nil, fmt.Errorf("launcher: %w", err)
	}
	if deps.Power == nil {
		deps.Power = power.Static{Level: 100}
	}
	if deps.Measurer == nil {
		deps.Measurer = render.BasicMeasurer{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	log := deps.Logger.Named("launcher")
	return &Launcher{
		deps:     deps,
		opts:     opts,
		dispatch: NewDispatcher(deps.Storage, deps.Registry, deps.Pages.Layout.PageSize, log),
		battery:  power.NewSampler(deps.Power, opts.BatteryPoll),
		log:      log,
	}, nil
}

// Start discovers apps and opens a fresh session on page 0, slot 0.
func (l *Launcher) Start() *State {
	st := &State{
		Session: uuid.NewString(),
		Fade:    effects.NewFadeIn(l.opts.FadeStart, l.opts.FadeStep, l.opts.FadeMax),
	}
	l.Rediscover(st)
	l.log.Info("session started",
		zap.String("session", st.Session),
		zap.Int("apps", len(st.Catalog)),
		zap.Int("pages", st.TotalPages))
	return st
}

// Rediscover rescans the apps root, rereads the battery and resets the
// selection.
func (l *Launcher) Rediscover(st *State) {
	l.battery.Refresh()
	catalog, err := l.deps.Registry.Discover()
	if err != nil {
		l.log.Warn("discovery failed, showing empty menu", zap.String("session", st.Session), zap.Error(err))
	}
	st.Catalog = catalog
	st.TotalPages = pages.TotalPages(len(catalog), l.deps.Pages.Layout.PageSize)
	st.Selection = navigation.Selection{}
	l.loadPage(st, 0)
}

func (l *Launcher) loadPage(st *State, page int) int {
	icons, err := l.deps.Pages.Load(st.Catalog, page)
	if err != nil {
		l.log.Error("page build failed", zap.String("session", st.Session), zap.Int("page", page), zap.Error(err))
		icons = []*pages.Icon{}
	}
	st.Icons = icons
	return len(icons)
}

// Advance runs one frame: navigation, launch, then drawing. It never fails;
// a panic or a nil state yields an empty frame and leaves the menu where it was.
func (l *Launcher) Advance(st *State, pressed input.Set, now int64) (frame Frame) {
	if st == nil {
		l.log.Error("advance without a session")
		return Frame{}
	}
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("frame panicked", zap.String("session", st.Session), zap.Any("panic", r), zap.Stack("stack"))
			frame = Frame{}
		}
	}()

	ctrl := navigation.Controller{
		Cols:       l.deps.Pages.Layout.Cols,
		TotalPages: st.TotalPages,
		Reload:     func(page int) int { return l.loadPage(st, page) },
	}
	visible := len(st.Icons)
	for _, sig := range input.Directions {
		if pressed.Has(sig) {
			st.Selection, visible = ctrl.Move(st.Selection, visible, sig)
		}
	}

	if pressed.Has(input.Confirm) {
		target, err := l.dispatch.Target(st.Catalog, st.Selection, st.Icons)
		if err != nil {
			l.log.Warn("launch refused", zap.String("session", st.Session), zap.Error(err))
		} else if target != "" {
			l.log.Info("launching", zap.String("session", st.Session), zap.String("target", target))
			frame.Target = target
		}
	}

	frame.Commands = l.compose(st, l.animate(st, now), now)
	return frame
}

// animate steps every visible icon's animation and returns its draw parameters.
func (l *Launcher) animate(st *State, now int64) []effects.Params {
	params := make([]effects.Params, len(st.Icons))
	for i, icon := range st.Icons {
		params[i] = l.opts.Animator.Frame(&icon.Anim, i == st.Selection.Slot, now)
	}
	return params
}
