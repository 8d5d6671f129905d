// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Implements the app registry system for discovering installable apps.
// Usage: The launcher scans the apps root once per session and pages the catalog.

package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/framegrace/badgemenu/internal/storage"
)

// AppEntry represents a discovered application.
type AppEntry struct {
	// DisplayName is the human-readable name shown under the icon.
	DisplayName string
	// Dir is the app directory inside the storage root.
	Dir string
}

// Catalog is the ordered list of discovered apps.
type Catalog []AppEntry

// Options describes which subdirectories of Root qualify as apps.
type Options struct {
	Root      string
	Prefix    string
	EntryFile string
	// Self is the launcher's own directory name, never listed.
	Self string
}

// DiscoveryError reports an unreadable apps root. Discovery still yields an
// empty catalog alongside it.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover apps in %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// Registry discovers apps from storage.
type Registry struct {
	fs   storage.FS
	opts Options
	log  *zap.Logger
}

// New creates a registry over fs.
func New(fs storage.FS, opts Options, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{fs: fs, opts: opts, log: logger.Named("registry")}
}

// Discover scans the immediate subdirectories of the root and returns the
// sorted catalog.
func (r *Registry) Discover() (Catalog, error) {
	names, err := r.fs.ListSubdirectories(r.opts.Root)
	if err != nil {
		derr := &DiscoveryError{Root: r.opts.Root, Err: err}
		r.log.Warn("apps root unreadable", zap.Error(derr))
		return Catalog{}, derr
	}

	catalog := make(Catalog, 0, len(names))
	for _, name := range names {
		if reason := r.reject(name); reason != "" {
			r.log.Debug("skipping directory", zap.String("dir", name), zap.String("reason", reason))
			continue
		}
		catalog = append(catalog, AppEntry{
			DisplayName: DisplayName(name, r.opts.Prefix),
			Dir:         filepath.Join(r.opts.Root, name),
		})
	}

	Sort(catalog)
	r.log.Info("discovered apps", zap.Int("count", len(catalog)), zap.String("root", r.opts.Root))
	return catalog, nil
}

func (r *Registry) reject(name string) string {
	switch {
	case name == r.opts.Self:
		return "launcher directory"
	case !strings.HasPrefix(name, r.opts.Prefix):
		return "prefix mismatch"
	case !r.fs.FileExists(r.EntryPath(filepath.Join(r.opts.Root, name))):
		return "missing entry file"
	}
	return ""
}

// EntryPath returns the entry-point file of the app in dir.
func (r *Registry) EntryPath(dir string) string {
	return filepath.Join(dir, r.opts.EntryFile)
}

// Installed reports whether the app directory and its entry file still exist.
func (r *Registry) Installed(entry AppEntry) bool {
	return r.fs.DirExists(entry.Dir) && r.fs.FileExists(r.EntryPath(entry.Dir))
}

var separators = strings.NewReplacer("_", " ", "-", " ")

// DisplayName derives the shown name from a directory name: prefix stripped,
// separators turned into spaces, title-cased.
func DisplayName(dirName, prefix string) string {
	name := strings.TrimPrefix(dirName, prefix)
	name = separators.Replace(name)
	return cases.Title(language.Und).String(name)
}

// Sort orders a catalog by display name ignoring case, then by directory.
func Sort(c Catalog) {
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(c, func(i, j int) bool {
		if cmp := col.CompareString(c[i].DisplayName, c[j].DisplayName); cmp != 0 {
			return cmp < 0
		}
		return c[i].Dir < c[j].Dir
	})
}
