// Package plan is the weekly plan screen: pick a mode, generate, tick off topics.
package plan

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/topics"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

// PlanScreen shows the session's weekly plan.
type PlanScreen struct {
	sess   *session.Session
	mode   planner.Mode
	list   components.Checklist
	items  []rowRef
	weekly store.WeeklyStats
	status string
	errMsg string
}

// rowRef maps a checklist row back to its plan entry.
type rowRef struct {
	subject string
	item    planner.Item
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a PlanScreen over the session's current plan.
func New(sess *session.Session) *PlanScreen {
	p := &PlanScreen{sess: sess, mode: sess.Mode}
	p.rebuild()
	return p
}

func (p *PlanScreen) Init() tea.Cmd {
	return nil
}

func (p *PlanScreen) Title() string {
	return "Weekly Plan"
}

func (p *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "m", Description: "Mode"},
		{Key: "g", Description: "Generate"},
		{Key: "Enter", Description: "Mark done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "esc":
		return p, router.Back()
	case "m":
		p.mode = p.mode.Next()
		p.status = fmt.Sprintf("Mode set to %s. Press g to generate.", p.mode)
	case "g":
		p.generate()
	case "enter", "space":
		p.completeCurrent()
	default:
		p.list = p.list.Update(msg)
	}
	return p, nil
}

func (p *PlanScreen) generate() {
	p.errMsg = ""
	plan, err := p.sess.GeneratePlan(context.Background(), p.mode)
	if err != nil {
		p.errMsg = "Could not save: " + err.Error()
	}
	if plan.Len() == 0 {
		p.status = "No subjects with topics. Add some under Subjects."
	} else {
		p.status = fmt.Sprintf("Generated a %s plan with %d items.", p.mode, plan.Len())
	}
	p.rebuild()
}

func (p *PlanScreen) completeCurrent() {
	if p.list.Cursor < 0 || p.list.Cursor >= len(p.items) {
		return
	}
	ref := p.items[p.list.Cursor]
	if ref.subject == "" {
		return
	}
	p.errMsg = ""
	if p.sess.IsDone(ref.subject, ref.item) {
		p.status = fmt.Sprintf("%s is already complete.", ref.item.Topic)
		return
	}
	out, err := p.sess.Complete(context.Background(), ref.subject, ref.item.Topic)
	if err != nil {
		p.errMsg = "Could not save: " + err.Error()
	}
	p.status = out.Describe()

	cursor := p.list.Cursor
	p.rebuild()
	p.list.Cursor = cursor
}

// rebuild refreshes the rows from the plan and records the weekly snapshot.
func (p *PlanScreen) rebuild() {
	p.weekly = p.sess.RefreshWeekly()
	p.items = p.items[:0]

	var rows []components.ChecklistRow
	if p.sess.Plan != nil {
		for _, sp := range p.sess.Plan.Subjects {
			rows = append(rows, components.ChecklistRow{Heading: true, Label: sp.Subject})
			p.items = append(p.items, rowRef{})
			for _, it := range sp.Items {
				rows = append(rows, components.ChecklistRow{
					Label:    it.Label(),
					Checked:  p.sess.IsDone(sp.Subject, it),
					Hard:     topics.IsHard(it.Topic),
					Revision: it.Revision,
				})
				p.items = append(p.items, rowRef{subject: sp.Subject, item: it})
			}
		}
	}
	p.list = components.NewChecklist(rows)
}

func (p *PlanScreen) View(width, height int) string {
	var b strings.Builder

	modes := make([]string, 0, 3)
	for _, m := range planner.AllModes() {
		if m == p.mode {
			modes = append(modes, theme.Selected.Render("["+string(m)+"]"))
		} else {
			modes = append(modes, theme.Hint.Render(" "+string(m)+" "))
		}
	}
	b.WriteString("  Mode: " + strings.Join(modes, " ") + "\n\n")

	bar := components.NewProgressBar("This week", 0, min(width-4, 60))
	if pct, ok := progress.Percent(p.weekly); ok {
		bar.Ratio = float64(pct) / 100
		bar.Caption = fmt.Sprintf("%d/%d", p.weekly.Done, p.weekly.Total)
	} else {
		bar.Caption = "no plan"
	}
	b.WriteString("  " + bar.View() + "\n\n")

	if p.sess.Plan == nil {
		b.WriteString(theme.Hint.Render("  No plan yet. Press g to generate one."))
	} else {
		listHeight := max(height-8, 3)
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
