package layout

import (
	"strings"
	"testing"
)

func TestStreakLabel(t *testing.T) {
	if got := StreakLabel(1, 5); !strings.Contains(got, "1 day ") {
		t.Errorf("singular label wrong: %q", got)
	}
	if got := StreakLabel(7, 10); !strings.Contains(got, "7 days") || !strings.Contains(got, "next 10") {
		t.Errorf("plural label wrong: %q", got)
	}
}

func TestRenderHeaderContainsBrandAndTitle(t *testing.T) {
	h := RenderHeader("Weekly Plan", 3, 5, 80)
	if !strings.Contains(h, "Studyplan") {
		t.Error("header missing brand")
	}
	if !strings.Contains(h, "Weekly Plan") {
		t.Error("header missing title")
	}
	if !strings.Contains(h, "3 days") {
		t.Error("header missing streak")
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
