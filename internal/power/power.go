// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/power/power.go
// Summary: Battery level and charging state for the header indicator.
// Usage: NewSysfs reads a Linux power_supply directory; Static serves tests and hosts without a battery.
//   Wrap either in a Sampler so per-frame callers never touch the source.

package power

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/internal/storage"
)

// DefaultSupplyDir is where Linux exposes the primary battery.
const DefaultSupplyDir = "/sys/class/power_supply/BAT0"

// Source reports the badge's power state.
type Source interface {
	// BatteryLevel returns the charge in percent, clamped to 0..100.
	BatteryLevel() int
	Charging() bool
}

// Static is a fixed power state.
type Static struct {
	Level   int
	Plugged bool
}

func (s Static) BatteryLevel() int { return clampLevel(s.Level) }
func (s Static) Charging() bool    { return s.Plugged }

// Sysfs reads capacity and status files from a power_supply directory.
// Missing or unreadable files report a full, discharging battery.
type Sysfs struct {
	fs  storage.FS
	dir string
	log *zap.Logger
}

// NewSysfs returns a Source backed by dir on fs.
func NewSysfs(fs storage.FS, dir string, logger *zap.Logger) *Sysfs {
	if dir == "" {
		dir = DefaultSupplyDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sysfs{fs: fs, dir: dir, log: logger.Named("power")}
}

func (s *Sysfs) BatteryLevel() int {
	raw, err := s.read("capacity")
	if err != nil {
		s.log.Debug("capacity unavailable", zap.String("dir", s.dir), zap.Error(err))
		return 100
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Debug("capacity malformed", zap.String("value", raw), zap.Error(err))
		return 100
	}
	return clampLevel(level)
}

func (s *Sysfs) Charging() bool {
	raw, err := s.read("status")
	if err != nil {
		return false
	}
	switch strings.ToLower(raw) {
	case "charging", "full":
		return true
	}
	return false
}

func (s *Sysfs) read(name string) (string, error) {
	f, err := s.fs.Open(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, 64))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Reading is one sample of a Source.
type Reading struct {
	Level    int
	Charging bool
}

// Sampler caches a Source between polls. An interval of zero or less polls
// only on Refresh.
type Sampler struct {
	src      Source
	interval int64
	reading  Reading
	readAt   int64
	anchored bool
}

// NewSampler reads src once and returns a sampler re-reading it every
// interval ticks.
func NewSampler(src Source, interval int64) *Sampler {
	s := &Sampler{src: src, interval: interval}
	s.Refresh()
	return s
}

// Refresh reads the source now. The next At call restarts the interval.
func (s *Sampler) Refresh() {
	s.reading = Reading{Level: s.src.BatteryLevel(), Charging: s.src.Charging()}
	s.anchored = false
}

// At returns the cached reading, polling the source once the interval has
// elapsed since the last read.
func (s *Sampler) At(now int64) Reading {
	switch {
	case !s.anchored:
		s.readAt, s.anchored = now, true
	case s.interval > 0 && now-s.readAt >= s.interval:
		s.Refresh()
		s.readAt, s.anchored = now, true
	}
	return s.reading
}

func clampLevel(level int) int {
	return max(0, min(100, level))
}
