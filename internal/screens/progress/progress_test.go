package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/planner"
	progresspkg "github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
)

func newTestScreen(t *testing.T) (*ProgressScreen, *session.Session) {
	t.Helper()
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"), nil)
	tr := progresspkg.NewTracker(repo.Load(context.Background()), repo, nil, nil)
	tr.Now = func() time.Time { return time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local) }
	s := session.New(tr, planner.ModeBalanced, nil)
	s.Define("Math", 2, []string{"Algebra", "Calculus"})
	return New(s), s
}

func TestListsRemainingIncludingCompulsory(t *testing.T) {
	p, _ := newTestScreen(t)

	require.NotEmpty(t, p.list.Rows)
	assert.Equal(t, "Math", p.list.Rows[0].Label)
	assert.True(t, p.list.Rows[0].Heading)

	var headings []string
	for _, r := range p.list.Rows {
		if r.Heading {
			headings = append(headings, r.Label)
		}
	}
	assert.Equal(t, []string{"Math", planner.SubjectAptitude, planner.SubjectCoding}, headings)
}

func TestMarkDoneFromTracker(t *testing.T) {
	p, s := newTestScreen(t)

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.True(t, s.State().IsCompleted("Math", "Algebra"))
	assert.Equal(t, []string{"Calculus"}, s.Remaining("Math"))
	row, ok := p.list.Current()
	require.True(t, ok)
	assert.Equal(t, "Calculus", row.Label)

	view := p.View(100, 40)
	assert.Contains(t, view, "1/2")
	assert.Contains(t, view, "1 day")
}
