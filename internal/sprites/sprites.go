// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/sprites/sprites.go
// Summary: Icon asset resolution with default fallback.
// Usage: Page building calls Resolve for every app on the page being loaded.

package sprites

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/framegrace/badgemenu/internal/storage"
)

// Sprite is a decoded icon image.
type Sprite struct {
	Image image.Image
	Path  string
}

// Width returns the sprite's pixel width.
func (s *Sprite) Width() int { return s.Image.Bounds().Dx() }

// Height returns the sprite's pixel height.
func (s *Sprite) Height() int { return s.Image.Bounds().Dy() }

// IconLoadError reports that neither the app icon nor the default icon could be used.
type IconLoadError struct {
	AppDir string
	Path   string
	Err    error
}

func (e *IconLoadError) Error() string {
	return fmt.Sprintf("load icon for %s (%s): %v", e.AppDir, e.Path, e.Err)
}

func (e *IconLoadError) Unwrap() error { return e.Err }

// Loader resolves icons from storage.
type Loader struct {
	fs          storage.FS
	iconFile    string
	defaultPath string
	log         *zap.Logger
}

// NewLoader creates a loader that looks for iconFile inside each app directory
// and falls back to defaultPath.
func NewLoader(fs storage.FS, iconFile, defaultPath string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fs: fs, iconFile: iconFile, defaultPath: defaultPath, log: logger.Named("sprites")}
}

// Resolve returns the app-local icon when present and decodable, otherwise the
// default icon. Both failing yields an *IconLoadError.
func (l *Loader) Resolve(appDir string) (*Sprite, error) {
	local := filepath.Join(appDir, l.iconFile)
	if l.fs.FileExists(local) {
		sprite, err := l.Load(local)
		if err == nil {
			return sprite, nil
		}
		l.log.Warn("app icon unusable, using default", zap.String("app", appDir), zap.Error(err))
	}

	sprite, err := l.Load(l.defaultPath)
	if err != nil {
		return nil, &IconLoadError{AppDir: appDir, Path: l.defaultPath, Err: err}
	}
	return sprite, nil
}

// maxIconBytes bounds how much of an icon file is read.
const maxIconBytes = 1 << 20

// Load decodes the PNG at path.
func (l *Loader) Load(path string) (*Sprite, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxIconBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if mt := mimetype.Detect(data); !mt.Is("image/png") {
		return nil, fmt.Errorf("decode %s: unsupported icon format %s", path, mt.String())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return &Sprite{Image: img, Path: path}, nil
}
