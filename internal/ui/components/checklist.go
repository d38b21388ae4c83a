package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// ChecklistRow is one line of a Checklist. Heading rows are not selectable.
type ChecklistRow struct {
	Heading  bool
	Label    string
	Checked  bool
	Hard     bool
	Revision bool
}

// Checklist is a scrollable list with a cursor over its non-heading rows.
type Checklist struct {
	Rows   []ChecklistRow
	Cursor int
	offset int
}

// NewChecklist creates a checklist with the cursor on the first selectable row.
func NewChecklist(rows []ChecklistRow) Checklist {
	c := Checklist{Rows: rows, Cursor: -1}
	c.Cursor = c.nextSelectable(-1, 1)
	return c
}

func (c Checklist) nextSelectable(from, step int) int {
	for i := from + step; i >= 0 && i < len(c.Rows); i += step {
		if !c.Rows[i].Heading {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (c Checklist) Current() (ChecklistRow, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Rows) {
		return ChecklistRow{}, false
	}
	return c.Rows[c.Cursor], true
}

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) Checklist {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Cursor < 0 {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if i := c.nextSelectable(c.Cursor, -1); i >= 0 {
			c.Cursor = i
		}
	case "down", "j":
		if i := c.nextSelectable(c.Cursor, 1); i >= 0 {
			c.Cursor = i
		}
	}
	return c
}

// View renders at most height rows, scrolled to keep the cursor visible.
func (c *Checklist) View(height int) string {
	if height <= 0 {
		height = len(c.Rows)
	}
	if c.Cursor >= 0 {
		if c.Cursor < c.offset {
			c.offset = c.Cursor
		}
		if c.Cursor >= c.offset+height {
			c.offset = c.Cursor - height + 1
		}
		// Keep the heading above the first item visible.
		if c.offset > 0 && c.offset == c.Cursor && c.Rows[c.offset-1].Heading {
			c.offset--
		}
	}

	end := min(c.offset+height, len(c.Rows))
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (c Checklist) renderRow(i int) string {
	row := c.Rows[i]
	if row.Heading {
		return theme.SubjectName.Render(row.Label)
	}

	box := "[ ] "
	if row.Checked {
		box = "[✓] "
	}
	label := row.Label
	if row.Hard {
		label += " " + theme.HardTopic.Render("◆")
	}

	style := theme.Unselected
	switch {
	case row.Checked:
		style = theme.Done
	case row.Revision:
		style = theme.Revision
	}

	prefix := "    "
	if i == c.Cursor {
		prefix = "  ▸ "
		style = theme.Selected
	}
	return prefix + style.Render(box) + style.Render(label)
}
