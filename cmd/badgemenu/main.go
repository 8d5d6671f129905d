// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/badgemenu/main.go
// Summary: Runs the badge launcher in a terminal or renders it headless to a PNG.
// Usage: badgemenu [-config path] [-root dir]; badgemenu -snapshot out.png -frames 40 -press 10:next,20:confirm

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/framegrace/badgemenu/apps/launcher"
	"github.com/framegrace/badgemenu/config"
	"github.com/framegrace/badgemenu/internal/devshell"
	"github.com/framegrace/badgemenu/internal/input"
	"github.com/framegrace/badgemenu/internal/logging"
	"github.com/framegrace/badgemenu/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("badgemenu", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath(), "Path to badgemenu.yaml")
	storageRoot := fs.String("root", "", "Host directory mounted as / for app paths (overrides config)")
	logLevel := fs.String("log-level", "", "Log level (overrides config)")
	writeConfig := fs.Bool("write-config", false, "Write the effective configuration to -config and exit")
	snapshotPath := fs.String("snapshot", "", "Render headless and write the last frame to this PNG")
	frames := fs.Int("frames", 30, "Frames to render in snapshot mode")
	press := fs.String("press", "", "Scripted input for snapshot mode, e.g. 5:next,12:down,20:confirm")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *storageRoot != "" {
		cfg.Apps.StorageRoot = *storageRoot
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return nil
	}

	interactive := *snapshotPath == ""
	if interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -snapshot to render headless")
	}

	logCfg := logging.Config{Level: cfg.Logging.Level, Development: cfg.Logging.Development, File: cfg.Logging.File}
	if interactive && logCfg.File == "" {
		logCfg.File = config.DefaultLogPath()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	menu, err := launcher.FromConfig(cfg, storage.NewOS(cfg.Apps.StorageRoot), nil, logger)
	if err != nil {
		return err
	}
	opts := devshell.Options{Width: cfg.Display.Width, Height: cfg.Display.Height, FPS: cfg.Display.FPS}

	if !interactive {
		script, err := parseScript(*press)
		if err != nil {
			return err
		}
		return snapshot(menu, opts, *frames, script, *snapshotPath, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver, err := devshell.OpenScreen()
	if err != nil {
		return err
	}
	return devshell.NewHost(driver, menu, opts, logger).Run(ctx)
}

func snapshot(menu devshell.Menu, opts devshell.Options, frames int, script map[int]input.Set, path string, logger *zap.Logger) error {
	img, last := devshell.Snapshot(menu, opts, frames, script)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	logger.Info("snapshot written", zap.String("path", path), zap.Int("frames", frames))
	if last.Launched() {
		fmt.Printf("launch %s\n", last.Target)
	}
	return nil
}
