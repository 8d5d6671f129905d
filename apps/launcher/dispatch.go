// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/dispatch.go
// Summary: Resolves CONFIRM on the selected icon into a launch target.

package launcher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/internal/navigation"
	"github.com/framegrace/badgemenu/internal/pages"
	"github.com/framegrace/badgemenu/internal/storage"
	"github.com/framegrace/badgemenu/registry"
)

// ErrNotInstalled means the app directory or its entry file disappeared
// after discovery.
var ErrNotInstalled = errors.New("app directory or entry file missing")

// LaunchValidationError reports a selected app that can no longer be launched.
type LaunchValidationError struct {
	App registry.AppEntry
	Err error
}

func (e *LaunchValidationError) Error() string {
	return fmt.Sprintf("launch %s (%s): %v", e.App.DisplayName, e.App.Dir, e.Err)
}

func (e *LaunchValidationError) Unwrap() error { return e.Err }

// Dispatcher maps the selection to the app it launches.
type Dispatcher struct {
	fs       storage.FS
	registry *registry.Registry
	pageSize int
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher for pages of pageSize slots.
func NewDispatcher(fs storage.FS, reg *registry.Registry, pageSize int, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{fs: fs, registry: reg, pageSize: pageSize, log: logger}
}

// Target returns the absolute app directory for the selected icon. An empty
// target with a nil error means there is nothing to launch.
func (d *Dispatcher) Target(catalog registry.Catalog, sel navigation.Selection, icons []*pages.Icon) (string, error) {
	if sel.Slot < 0 || sel.Slot >= len(icons) {
		return "", nil
	}
	global := sel.Page*d.pageSize + icons[sel.Slot].Slot
	if global < 0 || global >= len(catalog) {
		d.log.Debug("selection outside catalog", zap.Int("index", global), zap.Int("apps", len(catalog)))
		return "", nil
	}

	app := catalog[global]
	if !d.registry.Installed(app) {
		return "", &LaunchValidationError{App: app, Err: ErrNotInstalled}
	}
	return d.fs.Abs(app.Dir), nil
}
