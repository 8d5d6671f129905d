// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/badgemenu/script.go
// Summary: Parses the -press input script for snapshot mode.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrace/badgemenu/internal/input"
)

// parseScript reads "frame:signal" pairs separated by commas. Several
// signals on the same frame are combined.
func parseScript(s string) (map[int]input.Set, error) {
	script := make(map[int]input.Set)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		frameText, name, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("press %q: want frame:signal", part)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("press %q: bad frame number", part)
		}
		sig, ok := input.ParseSignal(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("press %q: unknown signal %q", part, name)
		}
		script[frame] = script[frame].With(sig)
	}
	return script, nil
}
