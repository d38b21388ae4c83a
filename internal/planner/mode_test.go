package planner

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"Light", ModeLight},
		{"balanced", ModeBalanced},
		{" HARDCORE ", ModeHardcore},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("extreme"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(extreme) error = %v, want ErrUnknownMode", err)
	}
}

func TestModeNumbers(t *testing.T) {
	tests := []struct {
		mode      Mode
		intensity int
		mainLimit int
		next      Mode
	}{
		{ModeLight, 1, 2, ModeBalanced},
		{ModeBalanced, 2, 3, ModeHardcore},
		{ModeHardcore, 3, 4, ModeLight},
	}
	for _, tt := range tests {
		if got := tt.mode.Intensity(); got != tt.intensity {
			t.Errorf("%s.Intensity() = %d, want %d", tt.mode, got, tt.intensity)
		}
		if got := tt.mode.MainLimit(); got != tt.mainLimit {
			t.Errorf("%s.MainLimit() = %d, want %d", tt.mode, got, tt.mainLimit)
		}
		if got := tt.mode.Next(); got != tt.next {
			t.Errorf("%s.Next() = %s, want %s", tt.mode, got, tt.next)
		}
	}
}
