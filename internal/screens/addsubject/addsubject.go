// Package addsubject is the form for defining one subject in the session.
package addsubject

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/topics"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Field order in the form.
const (
	fieldName = iota
	fieldCredits
	fieldSyllabus
	fieldPortions
	fieldCount
)

// AddSubjectScreen collects a subject name, credits and topics.
type AddSubjectScreen struct {
	sess      *session.Session
	extractor *syllabus.Extractor
	inputs    [fieldCount]components.TextInput
	focus     int
	status    string
	errMsg    string
}

var _ screen.Screen = (*AddSubjectScreen)(nil)
var _ screen.KeyHintProvider = (*AddSubjectScreen)(nil)

// New creates the form. A nil extractor reads PDFs without logging.
func New(sess *session.Session, extractor *syllabus.Extractor) *AddSubjectScreen {
	if extractor == nil {
		extractor = syllabus.NewExtractor(nil)
	}
	a := &AddSubjectScreen{sess: sess, extractor: extractor}
	a.inputs[fieldName] = components.NewTextInput("Subject name", "e.g. Data Structures", false, 60)
	a.inputs[fieldCredits] = components.NewTextInput("Credits (1-5)", "3", true, 1)
	a.inputs[fieldSyllabus] = components.NewTextInput("Syllabus PDF (optional, Enter to suggest topics)", "/path/to/syllabus.pdf", false, 256)
	a.inputs[fieldPortions] = components.NewTextInput("Portions (comma separated)", "Arrays, Linked Lists, Trees", false, 0)
	a.inputs[fieldName].Focus()
	return a
}

func (a *AddSubjectScreen) Init() tea.Cmd {
	return a.inputs[a.focus].Focus()
}

func (a *AddSubjectScreen) Title() string {
	return "Add Subject"
}

func (a *AddSubjectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (a *AddSubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return a, router.Back()
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return a, a.confirm()
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *AddSubjectScreen) setFocus(i int) tea.Cmd {
	a.inputs[a.focus].Blur()
	a.focus = i
	return a.inputs[a.focus].Focus()
}

// confirm advances the form, suggests topics from the syllabus, or submits.
func (a *AddSubjectScreen) confirm() tea.Cmd {
	switch a.focus {
	case fieldSyllabus:
		a.suggest()
		return a.setFocus(fieldPortions)
	case fieldPortions:
		return a.submit()
	default:
		return a.setFocus(a.focus + 1)
	}
}

func (a *AddSubjectScreen) suggest() {
	path := a.inputs[fieldSyllabus].Value()
	if path == "" {
		return
	}
	suggested := a.extractor.Suggest(path)
	if len(suggested) == 0 {
		a.status = "No topics found in that file."
		return
	}
	a.inputs[fieldPortions].SetValue(strings.Join(suggested, ", "))
	a.status = fmt.Sprintf("Suggested %d topics. Edit them before saving.", len(suggested))
}

func (a *AddSubjectScreen) submit() tea.Cmd {
	a.errMsg = ""
	name := a.inputs[fieldName].Value()
	if name == "" {
		a.errMsg = "Subject name is required."
		return a.setFocus(fieldName)
	}
	credits, err := a.inputs[fieldCredits].NumericValue()
	if err != nil || credits < session.MinCredits || credits > session.MaxCredits {
		a.errMsg = "Credits must be between 1 and 5."
		return a.setFocus(fieldCredits)
	}
	a.sess.Define(name, credits, topics.ParsePortions(a.inputs[fieldPortions].Value()))
	return router.Back()
}

func (a *AddSubjectScreen) View(width, height int) string {
	var b strings.Builder
	for i := range a.inputs {
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n\n")
	}
	if a.status != "" {
		b.WriteString(theme.Notice.Render(a.status) + "\n")
	}
	if a.errMsg != "" {
		b.WriteString(theme.Warn.Render(a.errMsg) + "\n")
	}
	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}
