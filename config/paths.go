// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for badgemenu configuration.

package config

import (
	"os"
	"path/filepath"
)

const configName = "badgemenu.yaml"

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "badgemenu"), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/badgemenu/badgemenu.yaml, or an
// empty string when no config directory can be determined.
func DefaultPath() string {
	root, err := configRoot()
	if err != nil {
		return ""
	}
	return filepath.Join(root, configName)
}

// DefaultLogPath returns the log file used while a terminal host owns the screen.
func DefaultLogPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "badgemenu", "badgemenu.log")
	}
	return filepath.Join(os.TempDir(), "badgemenu.log")
}
