package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Shortcut, when set, selects and runs the
// item directly; Note is drawn dimmed after the label.
type MenuItem struct {
	Label    string
	Shortcut string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu whose cursor wraps and never rests on a disabled item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(-1, 1)
	return m
}

// step walks from i in direction dir and returns the next enabled index,
// or i when none is enabled.
func (m Menu) step(i, dir int) int {
	n := len(m.Items)
	for k := 1; k <= n; k++ {
		j := ((i+dir*k)%n + n) % n
		if !m.Items[j].Disabled {
			return j
		}
	}
	return i
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = m.step(m.Selected, -1)
	case "down", "j":
		m.Selected = m.step(m.Selected, 1)
	case "enter":
		return m, m.run(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Shortcut != "" && item.Shortcut == key && !item.Disabled {
				m.Selected = i
				return m, m.run(i)
			}
		}
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Shortcut != "" {
			label = "[" + item.Shortcut + "] " + label
		}
		switch {
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		case item.Disabled:
			b.WriteString(theme.Hint.Render("    " + label))
		default:
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		if item.Note != "" {
			b.WriteString(" " + theme.Hint.Render(item.Note))
		}
		b.WriteString("\n")
	}
	return b.String()
}
