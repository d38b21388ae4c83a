// Package history lists past completions from the event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Limit is how many recent completions are shown.
const Limit = 50

type historyLoadedMsg struct {
	Events []store.CompletionEvent
	Err    error
}

// HistoryScreen displays recent completions newest first.
type HistoryScreen struct {
	events   store.EventRepo
	records  []store.CompletionEvent
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		evs, err := s.events.Completions(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Events: evs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  Nothing completed yet. Open the weekly plan to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection in view.
	visible := max(height-2, 1)
	start := max(0, s.selected-visible+1)
	end := min(len(s.records), start+visible)

	for i := start; i < end; i++ {
		ev := s.records[i]
		when := ev.OccurredAt.Local().Format("Jan 02 15:04")
		mark := theme.Hint.Render(fmt.Sprintf("×%d", ev.Repetitions))
		if ev.Marked {
			mark = theme.Done.Render("✓")
		}
		line := fmt.Sprintf("%s  %s  %s %s",
			theme.Hint.Render(when), theme.SubjectName.Render(ev.Subject), ev.Topic, mark)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}
