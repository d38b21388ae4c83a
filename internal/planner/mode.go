package planner

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the weekly study intensity.
type Mode string

const (
	ModeLight    Mode = "Light"
	ModeBalanced Mode = "Balanced"
	ModeHardcore Mode = "Hardcore"
)

// ErrUnknownMode is returned by ParseMode for names other than the three modes.
var ErrUnknownMode = errors.New("unknown study mode")

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeLight, ModeBalanced, ModeHardcore}
}

// ParseMode matches a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes() {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want Light, Balanced or Hardcore)", ErrUnknownMode, s)
}

// Intensity is the base number of topics per subject.
func (m Mode) Intensity() int {
	switch m {
	case ModeLight:
		return 1
	case ModeBalanced:
		return 2
	default:
		return 3
	}
}

// MainLimit is how many main subjects make it into the plan.
func (m Mode) MainLimit() int {
	switch m {
	case ModeLight:
		return 2
	case ModeBalanced:
		return 3
	default:
		return 4
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeBalanced
	case ModeBalanced:
		return ModeHardcore
	default:
		return ModeLight
	}
}
