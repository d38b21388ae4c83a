// Package app hosts the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/home"
	"github.com/abhisek/studyplan/internal/screens/welcome"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/streak"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

// Options configures the app.
type Options struct {
	Session   *session.Session
	Extractor *syllabus.Extractor
	Events    store.EventRepo // optional, enables History
	Log       *logger.Logger
	SkipIntro bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen, or the
// home screen when the intro is skipped.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Session, opts.Extractor, opts.Events)
	}

	var initial screen.Screen
	if opts.SkipIntro {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory, opts.Session.State().Streak.Count)
	}

	return AppModel{
		router: router.New(initial),
		sess:   opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() == 1 {
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	count := m.sess.State().Streak.Count
	header := layout.RenderHeader(title, count, streak.NextMilestone(count), m.width)

	footer := layout.RenderFooter(screen.FooterHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		logger.OrNop(opts.Log).Error("tui exited with error", "error", err)
		return err
	}
	return nil
}
