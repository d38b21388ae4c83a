// Package screen defines the contract between the router and app screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Screen is one page of the TUI. The router calls Init when the screen is
// pushed and again when a screen above it pops.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the app draws header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen list its own keys in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

var (
	defaultHints = []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
)

// FooterHints returns the hints for s, always ending with the global quit key.
func FooterHints(s Screen) []layout.KeyHint {
	hints := defaultHints
	if p, ok := s.(KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	out := make([]layout.KeyHint, 0, len(hints)+1)
	out = append(out, hints...)
	return append(out, quitHint)
}
