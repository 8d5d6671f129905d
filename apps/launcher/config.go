// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/config.go
// Summary: Builds a launcher from the loaded configuration.

package launcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/config"
	"github.com/framegrace/badgemenu/internal/effects"
	"github.com/framegrace/badgemenu/internal/pages"
	"github.com/framegrace/badgemenu/internal/power"
	"github.com/framegrace/badgemenu/internal/sprites"
	"github.com/framegrace/badgemenu/internal/storage"
	"github.com/framegrace/badgemenu/internal/theming"
	"github.com/framegrace/badgemenu/registry"
	"github.com/framegrace/badgemenu/render"
)

// FromConfig wires storage, discovery, icons, palette and power per cfg.
// A nil pwr selects the source named in cfg.Power.
func FromConfig(cfg config.Config, fs storage.FS, pwr power.Source, logger *zap.Logger) (*Launcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	palette, err := theming.NewPalette(cfg.Animation.DimDivisor, cfg.Animation.Palette...)
	if err != nil {
		return nil, fmt.Errorf("launcher: %w", err)
	}
	if pwr == nil {
		pwr = PowerFromConfig(cfg.Power, fs, logger)
	}

	reg := registry.New(fs, registry.Options{
		Root:      cfg.Apps.Root,
		Prefix:    cfg.Apps.Prefix,
		EntryFile: cfg.Apps.EntryFile,
		Self:      cfg.Apps.Self,
	}, logger)

	builder := &pages.Builder{
		Layout: pages.Layout{
			PageSize:   cfg.Layout.PageSize,
			Cols:       cfg.Layout.Columns,
			OriginX:    cfg.Layout.OriginX,
			OriginY:    cfg.Layout.OriginY,
			CellWidth:  cfg.Layout.CellWidth,
			CellHeight: cfg.Layout.CellHeight,
		},
		Palette: palette,
		Sprites: sprites.NewLoader(fs, cfg.Apps.IconFile, cfg.Apps.DefaultIcon, logger),
		Log:     logger.Named("pages"),
	}

	a := cfg.Animation
	return New(Deps{
		Storage:  fs,
		Registry: reg,
		Pages:    builder,
		Power:    pwr,
		Measurer: render.BasicMeasurer{},
		Logger:   logger,
	}, Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Title:  cfg.Display.Title,
		Animator: effects.Animator{
			Spin:   effects.SpinConfig{Period: a.SpinPeriod, Cycles: a.SpinCycles, Steps: a.SpinSteps},
			Bounce: effects.BounceConfig{Period: a.BouncePeriod, Amplitude: a.BounceAmplitude},
		},
		FadeStart:   a.FadeStart,
		FadeStep:    a.FadeStep,
		FadeMax:     a.FadeMax,
		BatteryPoll: cfg.Power.PollInterval,
	})
}

// PowerFromConfig returns the battery source selected by cfg.
func PowerFromConfig(cfg config.Power, fs storage.FS, logger *zap.Logger) power.Source {
	if cfg.Source == config.PowerStatic {
		return power.Static{Level: cfg.StaticLevel, Plugged: cfg.Charging}
	}
	return power.NewSysfs(fs, cfg.SupplyDir, logger)
}
