// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Typed badgemenu configuration loaded from YAML with environment overrides.
// Usage: cfg, err := config.Load(config.DefaultPath())

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BADGEMENU_APPS_ROOT.
const EnvPrefix = "BADGEMENU_"

// Config is the complete launcher and host configuration.
type Config struct {
	Apps      Apps      `yaml:"apps" envPrefix:"APPS_"`
	Layout    Layout    `yaml:"layout" envPrefix:"LAYOUT_"`
	Display   Display   `yaml:"display" envPrefix:"DISPLAY_"`
	Animation Animation `yaml:"animation" envPrefix:"ANIMATION_"`
	Logging   Logging   `yaml:"logging" envPrefix:"LOG_"`
	Power     Power     `yaml:"power" envPrefix:"POWER_"`
}

// Apps describes where launchable apps live.
type Apps struct {
	// StorageRoot is the host directory mounted as "/" for all app paths.
	StorageRoot string `yaml:"storage_root" env:"STORAGE_ROOT"`
	Root        string `yaml:"root" env:"ROOT"`
	Prefix      string `yaml:"prefix" env:"PREFIX"`
	EntryFile   string `yaml:"entry_file" env:"ENTRY_FILE"`
	Self        string `yaml:"self" env:"SELF"`
	IconFile    string `yaml:"icon_file" env:"ICON_FILE"`
	DefaultIcon string `yaml:"default_icon" env:"DEFAULT_ICON"`
}

// Layout is the icon grid geometry in display pixels.
type Layout struct {
	PageSize   int     `yaml:"page_size" env:"PAGE_SIZE"`
	Columns    int     `yaml:"columns" env:"COLUMNS"`
	OriginX    float64 `yaml:"origin_x" env:"ORIGIN_X"`
	OriginY    float64 `yaml:"origin_y" env:"ORIGIN_Y"`
	CellWidth  float64 `yaml:"cell_width" env:"CELL_WIDTH"`
	CellHeight float64 `yaml:"cell_height" env:"CELL_HEIGHT"`
}

// Display is the target surface.
type Display struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	FPS    int    `yaml:"fps" env:"FPS"`
	Title  string `yaml:"title" env:"TITLE"`
}

// Animation holds timing in ticks (milliseconds) and the slot palette.
type Animation struct {
	SpinPeriod      int64    `yaml:"spin_period" env:"SPIN_PERIOD"`
	SpinCycles      int64    `yaml:"spin_cycles" env:"SPIN_CYCLES"`
	SpinSteps       int      `yaml:"spin_steps" env:"SPIN_STEPS"`
	BouncePeriod    float64  `yaml:"bounce_period" env:"BOUNCE_PERIOD"`
	BounceAmplitude float64  `yaml:"bounce_amplitude" env:"BOUNCE_AMPLITUDE"`
	FadeStart       int      `yaml:"fade_start" env:"FADE_START"`
	FadeStep        int      `yaml:"fade_step" env:"FADE_STEP"`
	FadeMax         int      `yaml:"fade_max" env:"FADE_MAX"`
	DimDivisor      float64  `yaml:"dim_divisor" env:"DIM_DIVISOR"`
	Palette         []string `yaml:"palette" env:"PALETTE" envSeparator:","`
}

// Logging mirrors logging.Config.
type Logging struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
	File        string `yaml:"file" env:"FILE"`
}

// Power selects the battery source.
type Power struct {
	// Source is "sysfs" or "static".
	Source      string `yaml:"source" env:"SOURCE"`
	SupplyDir   string `yaml:"supply_dir" env:"SUPPLY_DIR"`
	StaticLevel int    `yaml:"static_level" env:"STATIC_LEVEL"`
	Charging    bool   `yaml:"charging" env:"CHARGING"`

	// PollInterval is the ticks between battery reads; 0 reads only on rescan.
	PollInterval int64 `yaml:"poll_interval" env:"POLL_INTERVAL"`
}

// Load reads path over the defaults, applies BADGEMENU_* overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Apps.Root != "", "apps.root is required")
	check(c.Apps.EntryFile != "", "apps.entry_file is required")
	check(c.Apps.IconFile != "", "apps.icon_file is required")

	check(c.Layout.PageSize >= 1, "layout.page_size must be >= 1, got %d", c.Layout.PageSize)
	check(c.Layout.Columns >= 1, "layout.columns must be >= 1, got %d", c.Layout.Columns)
	check(c.Layout.CellWidth > 0 && c.Layout.CellHeight > 0, "layout cell size must be positive")

	check(c.Display.Width > 0 && c.Display.Height > 0, "display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	check(c.Display.FPS >= 1 && c.Display.FPS <= 240, "display.fps must be within 1..240, got %d", c.Display.FPS)

	a := c.Animation
	check(a.SpinPeriod > 0, "animation.spin_period must be positive")
	check(a.SpinCycles >= 0, "animation.spin_cycles must not be negative")
	check(a.SpinSteps >= 0, "animation.spin_steps must not be negative")
	check(a.BouncePeriod > 0, "animation.bounce_period must be positive")
	check(a.FadeStep > 0, "animation.fade_step must be positive")
	check(a.FadeMax >= 1 && a.FadeMax <= 255, "animation.fade_max must be within 1..255, got %d", a.FadeMax)
	check(a.FadeStart >= 0 && a.FadeStart <= a.FadeMax, "animation.fade_start must be within 0..fade_max")
	check(a.DimDivisor >= 1, "animation.dim_divisor must be >= 1, got %g", a.DimDivisor)
	check(len(a.Palette) >= c.Layout.PageSize, "animation.palette has %d colors, page size %d needs one per slot", len(a.Palette), c.Layout.PageSize)

	check(c.Power.Source == PowerSysfs || c.Power.Source == PowerStatic, "power.source must be %q or %q, got %q", PowerSysfs, PowerStatic, c.Power.Source)
	check(c.Power.PollInterval >= 0, "power.poll_interval must not be negative, got %d", c.Power.PollInterval)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
