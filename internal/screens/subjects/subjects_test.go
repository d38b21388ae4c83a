package subjects

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T) (*SubjectsScreen, *session.Session, *store.FileStore) {
	t.Helper()
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"), nil)
	tr := progress.NewTracker(repo.Load(context.Background()), repo, nil, nil)
	s := session.New(tr, planner.ModeBalanced, nil)
	s.Define("Math", 3, []string{"Algebra"})
	s.Define("Physics", 2, []string{"Optics"})
	return New(s, nil), s, repo
}

func TestSaveWritesRecord(t *testing.T) {
	scr, _, repo := newTestScreen(t)

	scr.Update(key('s'))

	saved := repo.Load(context.Background())
	assert.Equal(t, []string{"Math", "Physics"}, saved.Subjects.Names())
	assert.Contains(t, scr.status, "Saved 2")
}

func TestSubjectsNotPersistedUntilSave(t *testing.T) {
	_, _, repo := newTestScreen(t)
	assert.Equal(t, 0, repo.Load(context.Background()).Subjects.Len())
}

func TestLoadReplacesSession(t *testing.T) {
	scr, s, _ := newTestScreen(t)
	scr.Update(key('s'))
	s.Define("Chemistry", 1, nil)
	require.Equal(t, 3, s.Subjects.Len())

	scr.Update(key('l'))
	assert.Equal(t, []string{"Math", "Physics"}, s.Subjects.Names())
}

func TestDeleteSelected(t *testing.T) {
	scr, s, _ := newTestScreen(t)
	scr.Update(key('j'))
	scr.Update(key('d'))

	assert.Equal(t, []string{"Math"}, s.Subjects.Names())
	assert.Equal(t, 0, scr.selected)
}

func TestAddPushesForm(t *testing.T) {
	scr, _, _ := newTestScreen(t)
	_, cmd := scr.Update(key('a'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Add Subject", msg.Screen.Title())
}
