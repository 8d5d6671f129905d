// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/badgemenu/internal/theming"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 160, cfg.Display.Width)
	assert.Equal(t, 120, cfg.Display.Height)
	assert.Equal(t, int64(600), cfg.Animation.SpinPeriod*cfg.Animation.SpinCycles)
	assert.Len(t, cfg.Animation.Palette, cfg.Layout.PageSize)
	assert.Equal(t, theming.DefaultSlotColors, cfg.Animation.Palette)
	assert.Equal(t, int64(30000), cfg.Power.PollInterval)
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	cfg := Default()
	cfg.Animation.Palette[0] = "#000000"
	assert.NotEqual(t, "#000000", theming.DefaultSlotColors[0])
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badgemenu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apps:
  root: /opt/apps
  prefix: ""
display:
  fps: 60
animation:
  spin_steps: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/apps", cfg.Apps.Root)
	assert.Equal(t, "", cfg.Apps.Prefix)
	assert.Equal(t, 60, cfg.Display.FPS)
	assert.Equal(t, 3, cfg.Animation.SpinSteps)
	assert.Equal(t, "__init__.py", cfg.Apps.EntryFile, "unset keys keep defaults")
	assert.Equal(t, 120, cfg.Display.Height)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badgemenu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  fps: 60\n"), 0o644))

	t.Setenv("BADGEMENU_DISPLAY_FPS", "12")
	t.Setenv("BADGEMENU_APPS_STORAGE_ROOT", "/tmp/badge")
	t.Setenv("BADGEMENU_LOG_LEVEL", "debug")
	t.Setenv("BADGEMENU_ANIMATION_PALETTE", "#000000,#111111,#222222,#333333,#444444,#555555,#666666")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Display.FPS)
	assert.Equal(t, "/tmp/badge", cfg.Apps.StorageRoot)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Len(t, cfg.Animation.Palette, 7)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badgemenu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.Layout.PageSize = 0 }},
		{"zero columns", func(c *Config) { c.Layout.Columns = 0 }},
		{"palette shorter than page", func(c *Config) { c.Animation.Palette = c.Animation.Palette[:3] }},
		{"fps out of range", func(c *Config) { c.Display.FPS = 0 }},
		{"fade max above 255", func(c *Config) { c.Animation.FadeMax = 300 }},
		{"fade step zero", func(c *Config) { c.Animation.FadeStep = 0 }},
		{"dim divisor below one", func(c *Config) { c.Animation.DimDivisor = 0.5 }},
		{"unknown power source", func(c *Config) { c.Power.Source = "solar" }},
		{"negative battery poll", func(c *Config) { c.Power.PollInterval = -1 }},
		{"missing root", func(c *Config) { c.Apps.Root = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "badgemenu.yaml")
	cfg := Default()
	cfg.Display.Title = "Badge"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "badgemenu", "badgemenu.yaml"), DefaultPath())
}
