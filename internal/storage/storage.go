// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/storage/storage.go
// Summary: Filesystem contract used by discovery, icon loading and launch validation.
// Usage: NewOS for the device filesystem, NewMemory for in-memory roots in tests.

package storage

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// FS is the storage surface the launcher core is allowed to touch.
type FS interface {
	// ListSubdirectories returns the names of the immediate subdirectories of root.
	ListSubdirectories(root string) ([]string, error)
	FileExists(path string) bool
	DirExists(path string) bool
	Open(path string) (io.ReadCloser, error)
	// Abs resolves a storage path to the absolute path the host understands.
	Abs(path string) string
}

// Billy adapts a billy.Filesystem to FS.
type Billy struct {
	fs billy.Filesystem
}

var _ FS = (*Billy)(nil)

// New wraps an existing billy filesystem.
func New(fs billy.Filesystem) *Billy {
	return &Billy{fs: fs}
}

// NewOS returns storage backed by the host filesystem rooted at baseDir.
func NewOS(baseDir string) *Billy {
	if baseDir == "" {
		baseDir = string(filepath.Separator)
	}
	return New(osfs.New(baseDir))
}

// NewMemory returns an empty in-memory storage.
func NewMemory() *Billy {
	return New(memfs.New())
}

// Underlying exposes the wrapped filesystem so callers can populate it.
func (b *Billy) Underlying() billy.Filesystem {
	return b.fs
}

func (b *Billy) ListSubdirectories(root string) ([]string, error) {
	infos, err := b.fs.ReadDir(root)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (b *Billy) FileExists(path string) bool {
	info, err := b.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (b *Billy) DirExists(path string) bool {
	info, err := b.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (b *Billy) Open(path string) (io.ReadCloser, error) {
	return b.fs.Open(path)
}

func (b *Billy) Abs(path string) string {
	return filepath.Join(b.fs.Root(), path)
}
