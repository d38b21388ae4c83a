package screen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/layout"
)

type plainScreen struct{}

func (plainScreen) Init() tea.Cmd                      { return nil }
func (s plainScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (plainScreen) View(int, int) string               { return "" }
func (plainScreen) Title() string                      { return "plain" }

type hintedScreen struct{ plainScreen }

func (hintedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "g", Description: "Generate"}}
}

func TestFooterHints(t *testing.T) {
	plain := FooterHints(plainScreen{})
	if len(plain) != 3 || plain[0].Key != "↑↓" || plain[2].Key != "Ctrl+C" {
		t.Errorf("unexpected default hints: %+v", plain)
	}

	hinted := FooterHints(hintedScreen{})
	if len(hinted) != 2 || hinted[0].Key != "g" || hinted[1].Key != "Ctrl+C" {
		t.Errorf("unexpected screen hints: %+v", hinted)
	}

	// Appending the quit hint must not grow the shared defaults.
	FooterHints(plainScreen{})
	if len(defaultHints) != 2 {
		t.Errorf("defaults mutated: %+v", defaultHints)
	}
}
