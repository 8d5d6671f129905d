// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Exercises the terminal host against a simulation screen.

package devshell_test

import (
	"context"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/badgemenu/apps/launcher"
	"github.com/framegrace/badgemenu/internal/devshell"
	"github.com/framegrace/badgemenu/internal/input"
	"github.com/framegrace/badgemenu/render"
)

var red = color.NRGBA{R: 255, A: 255}

type stubMenu struct {
	mu       sync.Mutex
	starts   int
	rescans  int
	frames   int
	pressed  []input.Set
	launchTo string
}

func (m *stubMenu) Start() *launcher.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
	return &launcher.State{Session: "stub", TotalPages: 1}
}

func (m *stubMenu) Rediscover(*launcher.State) {
	m.mu.Lock()
	m.rescans++
	m.mu.Unlock()
}

func (m *stubMenu) Advance(_ *launcher.State, pressed input.Set, _ int64) launcher.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames++
	if !pressed.Empty() {
		m.pressed = append(m.pressed, pressed)
	}
	var list render.List
	list.Clear(red)
	f := launcher.Frame{Commands: list}
	if pressed.Has(input.Confirm) {
		f.Target = m.launchTo
	}
	return f
}

func (m *stubMenu) snapshot() (starts, rescans, frames int, pressed []input.Set) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts, m.rescans, m.frames, append([]input.Set(nil), m.pressed...)
}

func waitFor(cond func() bool, timeout time.Duration, t *testing.T, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}

func TestHostDrivesMenuAndHandsOff(t *testing.T) {
	defer devshell.SetScreenFactory(nil)
	screen := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) { return screen, nil })

	driver, err := devshell.OpenScreen()
	require.NoError(t, err)
	menu := &stubMenu{launchTo: "/system/apps/sf_poll"}
	host := devshell.NewHost(driver, menu, devshell.Options{Width: 160, Height: 120, FPS: 100}, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- host.Run(context.Background()) }()

	waitFor(func() bool { _, _, frames, _ := menu.snapshot(); return frames > 0 }, time.Second, t, "first frame")
	waitFor(func() bool {
		mainc, _, style, _ := screen.GetContent(40, 12)
		fg, _, _ := style.Decompose()
		return mainc == '▀' && fg == tcell.NewRGBColor(255, 0, 0)
	}, time.Second, t, "frame presented as half blocks")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	waitFor(func() bool {
		_, _, _, pressed := menu.snapshot()
		return len(pressed) > 0 && pressed[0].Has(input.Next)
	}, time.Second, t, "NEXT to reach the menu")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	waitFor(func() bool { _, rescans, _, _ := menu.snapshot(); return rescans == 1 }, time.Second, t, "rescan")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	waitFor(func() bool {
		_, _, _, pressed := menu.snapshot()
		return len(pressed) > 1 && pressed[len(pressed)-1].Has(input.Confirm)
	}, time.Second, t, "CONFIRM to reach the menu")

	// While the app runs the menu is not stepped.
	_, _, frames, _ := menu.snapshot()
	time.Sleep(100 * time.Millisecond)
	_, _, after, _ := menu.snapshot()
	assert.Equal(t, frames, after)

	screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	waitFor(func() bool { starts, _, _, _ := menu.snapshot(); return starts == 2 }, time.Second, t, "fresh session after Esc")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not exit after q")
	}
}

func TestHostStopsOnContextCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	host := devshell.NewHost(devshell.NewTcellScreenDriver(screen), &stubMenu{}, devshell.Options{Width: 16, Height: 12, FPS: 50}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- host.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not exit after cancel")
	}
}

func TestTcellDriverWritesThrough(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	var driver devshell.ScreenDriver = devshell.NewTcellScreenDriver(screen)
	require.NoError(t, driver.Init())
	defer driver.Fini()

	w, h := driver.Size()
	assert.Positive(t, w)
	assert.Positive(t, h)

	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	driver.SetContent(2, 1, '\u2580', nil, style)
	driver.Show()
	mainc, _, got, _ := screen.GetContent(2, 1)
	assert.Equal(t, '\u2580', mainc)
	assert.Equal(t, style, got)

	driver.Clear()
	driver.Show()
	mainc, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, ' ', mainc)
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action devshell.Action
		sig    input.Signal
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), devshell.ActionSignal, input.Up},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), devshell.ActionSignal, input.Down},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), devshell.ActionSignal, input.Prev},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), devshell.ActionSignal, input.Next},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), devshell.ActionSignal, input.Confirm},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), devshell.ActionSignal, input.Confirm},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), devshell.ActionBack, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), devshell.ActionQuit, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), devshell.ActionQuit, 0},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), devshell.ActionNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, sig := devshell.MapKey(tt.ev)
			assert.Equal(t, tt.action, action)
			if action == devshell.ActionSignal {
				assert.Equal(t, tt.sig, sig)
			}
		})
	}
}

func TestFitShrinksPreservingAspect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 160, 120))
	assert.Same(t, src, devshell.Fit(src, 200, 100))

	small := devshell.Fit(src, 80, 30)
	assert.Equal(t, image.Rect(0, 0, 80, 60), small.Bounds())
}

func TestSnapshotStopsOnLaunch(t *testing.T) {
	menu := &stubMenu{launchTo: "/apps/x"}
	img, frame := devshell.Snapshot(menu, devshell.Options{Width: 16, Height: 12, FPS: 30}, 10, map[int]input.Set{3: input.Of(input.Confirm)})

	assert.Equal(t, "/apps/x", frame.Target)
	_, _, frames, _ := menu.snapshot()
	assert.Equal(t, 4, frames)
	assert.Equal(t, red, img.NRGBAAt(5, 5))
}
