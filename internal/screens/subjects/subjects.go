// Package subjects lists the session's subject definitions and moves them
// to and from the saved record.
package subjects

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/addsubject"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// SubjectsScreen shows session subjects with save/load actions.
type SubjectsScreen struct {
	sess      *session.Session
	extractor *syllabus.Extractor
	selected  int
	status    string
	errMsg    string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New creates a SubjectsScreen.
func New(sess *session.Session, extractor *syllabus.Extractor) *SubjectsScreen {
	return &SubjectsScreen{sess: sess, extractor: extractor}
}

// Init runs again when the add form pops, so the cursor is clamped to the
// current list.
func (s *SubjectsScreen) Init() tea.Cmd {
	s.selected = max(0, min(s.selected, s.sess.Subjects.Len()-1))
	return nil
}

func (s *SubjectsScreen) Title() string {
	return "Subjects"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Add"},
		{Key: "d", Description: "Delete"},
		{Key: "s", Description: "Save"},
		{Key: "l", Description: "Load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	names := s.sess.Subjects.Names()
	switch kmsg.String() {
	case "esc":
		return s, router.Back()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(names)-1 {
			s.selected++
		}
	case "a":
		form := addsubject.New(s.sess, s.extractor)
		return s, router.Navigate(form)
	case "d":
		if s.selected < len(names) {
			s.sess.Remove(names[s.selected])
			s.status = fmt.Sprintf("Removed %s from the session.", names[s.selected])
			s.selected = max(0, min(s.selected, s.sess.Subjects.Len()-1))
		}
	case "s":
		s.errMsg = ""
		if err := s.sess.SaveSubjects(context.Background()); err != nil {
			s.errMsg = "Could not save: " + err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Saved %d subjects.", s.sess.Subjects.Len())
	case "l":
		s.sess.LoadSubjects()
		s.selected = 0
		s.status = fmt.Sprintf("Loaded %d saved subjects.", s.sess.Subjects.Len())
	}
	return s, nil
}

func (s *SubjectsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("  " + theme.Title.Render("Subjects this session") + "\n\n")

	if s.sess.Subjects.Len() == 0 {
		b.WriteString(theme.Hint.Render("  No subjects yet. Press a to add one or l to load saved ones.") + "\n")
	}

	i := 0
	for name, sub := range s.sess.Subjects.All() {
		line := fmt.Sprintf("%s  %s", name, theme.Hint.Render(fmt.Sprintf("%d credits · %d topics", sub.Credits, len(sub.Portions))))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
		i++
	}

	b.WriteString("\n" + theme.Hint.Render("  Aptitude and Coding are always planned with their built-in topics.") + "\n")

	if s.status != "" {
		b.WriteString("\n  " + theme.Notice.Render(s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + theme.Warn.Render(s.errMsg))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
