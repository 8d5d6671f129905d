// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/input/input.go
// Summary: Device button signals and the per-frame pressed set.

package input

import "strings"

// Signal is one of the device buttons.
type Signal uint8

const (
	Up Signal = iota
	Down
	Prev
	Next
	Confirm
)

var signalNames = [...]string{"up", "down", "prev", "next", "confirm"}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return "unknown"
}

// ParseSignal maps a name ("next", "UP", ...) to a signal.
func ParseSignal(name string) (Signal, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range signalNames {
		if n == name {
			return Signal(i), true
		}
	}
	return 0, false
}

// Directions lists navigation signals in the order they are applied within a frame.
var Directions = []Signal{Next, Prev, Up, Down}

// Delta returns the slot delta of a navigation signal on a grid with cols columns.
func Delta(s Signal, cols int) int {
	switch s {
	case Next:
		return 1
	case Prev:
		return -1
	case Up:
		return -cols
	case Down:
		return cols
	}
	return 0
}

// Set holds the signals newly pressed during one frame.
type Set uint8

// Of builds a set from signals.
func Of(signals ...Signal) Set {
	var s Set
	for _, sig := range signals {
		s = s.With(sig)
	}
	return s
}

// With returns s plus sig.
func (s Set) With(sig Signal) Set {
	return s | 1<<sig
}

// Has reports whether sig was pressed.
func (s Set) Has(sig Signal) bool {
	return s&(1<<sig) != 0
}

// Empty reports whether nothing was pressed.
func (s Set) Empty() bool {
	return s == 0
}

func (s Set) String() string {
	var parts []string
	for i := range signalNames {
		if s.Has(Signal(i)) {
			parts = append(parts, signalNames[i])
		}
	}
	return strings.Join(parts, ",")
}
