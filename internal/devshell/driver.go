// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/driver.go
// Summary: Screen driver abstraction over tcell for the terminal host.
// Usage: OpenScreen for the real terminal; SetScreenFactory swaps in a simulation screen in tests.

package devshell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ScreenDriver is the terminal surface the host presents frames on.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	HideCursor()
	Clear()
	Show()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// TcellScreenDriver adapts a tcell.Screen to ScreenDriver.
type TcellScreenDriver struct {
	screen tcell.Screen
}

var _ ScreenDriver = (*TcellScreenDriver)(nil)

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellScreenDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellScreenDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellScreenDriver) Clear() {
	d.screen.Clear()
}

func (d *TcellScreenDriver) Show() {
	d.screen.Show()
}

func (d *TcellScreenDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

func (d *TcellScreenDriver) PostEvent(ev tcell.Event) error {
	return d.screen.PostEvent(ev)
}

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by OpenScreen. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// OpenScreen creates a driver for the current terminal. The caller runs Init.
func OpenScreen() (*TcellScreenDriver, error) {
	screen, err := screenFactory()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewTcellScreenDriver(screen), nil
}
