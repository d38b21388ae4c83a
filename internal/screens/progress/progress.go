// Package progress is the tracker screen: per-subject completion bars, the
// streak and the outstanding topics.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/streak"
	"github.com/abhisek/studyplan/internal/topics"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// ProgressScreen shows subject progress and lets topics be ticked off.
type ProgressScreen struct {
	sess     *session.Session
	list     components.Checklist
	subjects []string // subject per checklist row
	status   string
	errMsg   string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a ProgressScreen.
func New(sess *session.Session) *ProgressScreen {
	p := &ProgressScreen{sess: sess}
	p.rebuild()
	return p
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Mark done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "esc":
		return p, router.Back()
	case "enter", "space":
		p.completeCurrent()
	default:
		p.list = p.list.Update(msg)
	}
	return p, nil
}

func (p *ProgressScreen) completeCurrent() {
	row, ok := p.list.Current()
	if !ok {
		return
	}
	p.errMsg = ""
	out, err := p.sess.Complete(context.Background(), p.subjects[p.list.Cursor], row.Label)
	if err != nil {
		p.errMsg = "Could not save: " + err.Error()
	}
	p.status = out.Describe()

	cursor := p.list.Cursor
	p.rebuild()
	if cursor < len(p.list.Rows) && !p.list.Rows[cursor].Heading {
		p.list.Cursor = cursor
	}
}

// rebuild lists the outstanding topics of every viewed subject.
func (p *ProgressScreen) rebuild() {
	p.subjects = p.subjects[:0]
	var rows []components.ChecklistRow
	subjects := p.sess.ViewSubjects()
	for _, name := range subjects.Names() {
		remaining := p.sess.Remaining(name)
		if len(remaining) == 0 {
			continue
		}
		rows = append(rows, components.ChecklistRow{Heading: true, Label: name})
		p.subjects = append(p.subjects, name)
		for _, t := range remaining {
			rows = append(rows, components.ChecklistRow{Label: t, Hard: topics.IsHard(t)})
			p.subjects = append(p.subjects, name)
		}
	}
	p.list = components.NewChecklist(rows)
}

func (p *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	st := p.sess.State()
	b.WriteString("  " + theme.Title.Render("Streak") + "  ")
	b.WriteString(layout.StreakLabel(st.Streak.Count, streak.NextMilestone(st.Streak.Count)))
	if st.Streak.LastDate != "" {
		b.WriteString(theme.Hint.Render("  last studied " + st.Streak.LastDate))
	}
	b.WriteString("\n\n")

	rows := p.sess.ProgressRows()
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Subject))
	}
	for _, r := range rows {
		bar := components.NewProgressBar(r.Subject, r.Ratio, min(width-4, 70))
		bar.LabelWidth = labelWidth
		bar.Caption = fmt.Sprintf("%d/%d", r.Done, r.Total)
		b.WriteString("  " + bar.View() + "\n")
	}

	b.WriteString("\n  " + theme.Title.Render("Remaining") + "\n")
	if len(p.list.Rows) == 0 {
		b.WriteString(theme.Hint.Render("  Everything is done. Nice work!") + "\n")
	} else {
		listHeight := max(height-len(rows)-8, 3)
		for _, line := range strings.Split(p.list.View(listHeight), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if p.status != "" {
		b.WriteString("\n  " + theme.Notice.Render(p.status))
	}
	if p.errMsg != "" {
		b.WriteString("\n  " + theme.Warn.Render(p.errMsg))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
