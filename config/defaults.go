// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default configuration matching the 160x120 badge.

package config

import "github.com/framegrace/badgemenu/internal/theming"

// Power sources.
const (
	PowerSysfs  = "sysfs"
	PowerStatic = "static"
)

// Default returns the stock badge configuration.
func Default() Config {
	return Config{
		Apps: Apps{
			StorageRoot: "/",
			Root:        "/system/apps",
			Prefix:      "sf_",
			EntryFile:   "__init__.py",
			Self:        "sf_menu",
			IconFile:    "icon.png",
			DefaultIcon: "/system/apps/sf_menu/default_icon.png",
		},
		Layout: Layout{
			PageSize:   6,
			Columns:    3,
			OriginX:    33,
			OriginY:    42,
			CellWidth:  48,
			CellHeight: 48,
		},
		Display: Display{
			Width:  160,
			Height: 120,
			FPS:    30,
			Title:  "AI Centre",
		},
		Animation: Animation{
			SpinPeriod:      100,
			SpinCycles:      6,
			BouncePeriod:    200,
			BounceAmplitude: 2,
			FadeStart:       30,
			FadeStep:        30,
			FadeMax:         255,
			DimDivisor:      2.5,
			Palette:         append([]string(nil), theming.DefaultSlotColors...),
		},
		Logging: Logging{
			Level: "info",
		},
		Power: Power{
			Source:       PowerSysfs,
			SupplyDir:    "/sys/class/power_supply/BAT0",
			StaticLevel:  100,
			PollInterval: 30000,
		},
	}
}
