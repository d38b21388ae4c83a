package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/history"
	planscreen "github.com/abhisek/studyplan/internal/screens/plan"
	progressscreen "github.com/abhisek/studyplan/internal/screens/progress"
	"github.com/abhisek/studyplan/internal/screens/subjects"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. events may be nil, which disables History.
func New(sess *session.Session, extractor *syllabus.Extractor, events store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "WEEKLY PLAN", Shortcut: "p", Action: func() tea.Cmd {
			return router.Navigate(planscreen.New(sess))
		}},
		{Label: "PROGRESS", Shortcut: "r", Action: func() tea.Cmd {
			return router.Navigate(progressscreen.New(sess))
		}},
		{Label: "SUBJECTS", Shortcut: "s", Action: func() tea.Cmd {
			return router.Navigate(subjects.New(sess, extractor))
		}},
		{Label: "HISTORY", Shortcut: "h", Disabled: events == nil, Note: historyNote(events), Action: func() tea.Cmd {
			return router.Navigate(history.New(events))
		}},
		{Label: "QUIT", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func historyNote(events store.EventRepo) string {
	if events == nil {
		return "(sqlite backend only)"
	}
	return ""
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("What are we studying this week?"))
	b.WriteString("\n\n")
	b.WriteString(h.summary())
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	card := theme.Card.Width(min(width-4, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HomeScreen) summary() string {
	st := h.sess.State()
	lines := []string{
		fmt.Sprintf("Subjects in session: %d", h.sess.Subjects.Len()),
		fmt.Sprintf("Mode: %s", h.sess.Mode),
	}
	if pct, ok := progress.Percent(st.WeeklyStats); ok {
		lines = append(lines, fmt.Sprintf("This week: %d of %d done (%d%%)", st.WeeklyStats.Done, st.WeeklyStats.Total, pct))
	} else {
		lines = append(lines, "No plan generated yet")
	}
	return theme.Subtitle.Render(strings.Join(lines, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
