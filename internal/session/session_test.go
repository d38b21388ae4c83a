package session

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/store"
)

func newTestSession(t *testing.T) (*Session, *store.FileStore) {
	t.Helper()
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"), nil)
	st := repo.Load(context.Background())
	tr := progress.NewTracker(st, repo, nil, nil)
	tr.Now = func() time.Time { return time.Date(2024, 5, 6, 12, 0, 0, 0, time.Local) }
	return New(tr, planner.ModeBalanced, rand.New(rand.NewPCG(3, 4))), repo
}

func TestDefine(t *testing.T) {
	s, _ := newTestSession(t)

	assert.True(t, s.Define(" Physics ", 9, []string{"Optics"}))
	assert.True(t, s.Define("Internship", 0, nil))
	assert.False(t, s.Define("   ", 3, []string{"x"}))

	phys, ok := s.Subjects.Get("Physics")
	require.True(t, ok)
	assert.Equal(t, MaxCredits, phys.Credits)

	intern, _ := s.Subjects.Get("Internship")
	assert.Equal(t, MinCredits, intern.Credits)
	assert.Equal(t, []string{"Physics", "Internship"}, s.Subjects.Names())
}

func TestSubjectsOnlyPersistOnSave(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	s.Define("Maths", 3, []string{"Limits"})
	_, err := s.GeneratePlan(ctx, planner.ModeLight)
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Load(ctx).Subjects.Len(), "plan generation does not save subjects")

	require.NoError(t, s.SaveSubjects(ctx))
	saved := repo.Load(ctx)
	assert.Equal(t, []string{"Maths"}, saved.Subjects.Names())

	// Session edits after save stay transient.
	s.Define("Chemistry", 2, nil)
	assert.Equal(t, 1, s.State().Subjects.Len())
}

func TestLoadSubjects(t *testing.T) {
	s, _ := newTestSession(t)
	s.State().Subjects.Set("Saved", store.Subject{Credits: 2, Portions: []string{"a"}})
	s.Define("Unsaved", 2, nil)

	s.LoadSubjects()
	assert.Equal(t, []string{"Saved"}, s.Subjects.Names())

	s.Define("Another", 3, nil)
	assert.Equal(t, 1, s.State().Subjects.Len(), "load must copy, not alias")
}

func TestGeneratePlanResetsWeekly(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()
	s.State().WeeklyStats = store.WeeklyStats{Total: 5, Done: 5}

	s.Define("Maths", 4, []string{"Limits", "Series", "Vectors", "Matrices", "Proofs"})
	plan, err := s.GeneratePlan(ctx, planner.ModeHardcore)
	require.NoError(t, err)

	assert.Same(t, plan, s.Plan)
	assert.Equal(t, planner.ModeHardcore, s.Mode)
	assert.Equal(t, "Maths", plan.Subjects[0].Subject)
	assert.Len(t, plan.Subjects[0].Items, 5) // min(3 + 2, 5)
	assert.Equal(t, store.WeeklyStats{}, repo.Load(ctx).WeeklyStats)
}

func TestCompleteFromPlanAndRefreshWeekly(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	s.Define("Maths", 2, []string{"Limits", "Graph Theory", "Series"})
	plan, err := s.GeneratePlan(ctx, planner.ModeBalanced)
	require.NoError(t, err)

	maths := plan.Subjects[0]
	require.Equal(t, []planner.Item{{Topic: "Limits"}, {Topic: "Graph Theory"}, {Topic: "Series"}}, maths.Items)

	_, err = s.Complete(ctx, "Maths", "Limits")
	require.NoError(t, err)
	_, err = s.Complete(ctx, "Maths", "Graph Theory")
	require.NoError(t, err)

	assert.True(t, s.IsDone("Maths", maths.Items[0]))
	assert.False(t, s.IsDone("Maths", maths.Items[1]), "hard topic needs a second completion")

	ws := s.RefreshWeekly()
	assert.Equal(t, plan.Len(), ws.Total)
	assert.Equal(t, 1, ws.Done)
	assert.Equal(t, ws, s.State().WeeklyStats)

	saved := repo.Load(ctx)
	assert.Equal(t, 1, saved.Streak.Count)
	assert.Equal(t, "2024-05-06", saved.Streak.LastDate)
	assert.Equal(t, 1, saved.TopicProgress["Maths-Graph Theory"])
}

func TestCompleteRevisionLabel(t *testing.T) {
	s, _ := newTestSession(t)
	out, err := s.Complete(context.Background(), "Coding", "Revise → Arrays")
	require.NoError(t, err)
	assert.Equal(t, "Arrays", out.Topic)
	assert.True(t, s.State().IsCompleted("Coding", "Arrays"))
}

func TestProgressRowsIncludeCompulsory(t *testing.T) {
	s, _ := newTestSession(t)
	s.Define("Empty", 3, nil)
	s.Define("Maths", 3, []string{"a", "b", "c", "d"})
	s.State().Completed["Maths"] = []string{"c"}

	rows := s.ProgressRows()
	var names []string
	for _, r := range rows {
		names = append(names, r.Subject)
	}
	assert.Equal(t, []string{"Maths", "Aptitude", "Coding"}, names)
	assert.InDelta(t, 0.25, rows[0].Ratio, 1e-9)
}

func TestRemainingAndHasTopic(t *testing.T) {
	s, _ := newTestSession(t)
	s.State().Completed["Coding"] = []string{"Arrays", "DP"}

	assert.Equal(t, []string{"Strings", "Recursion", "Graphs"}, s.Remaining("Coding"))
	assert.Nil(t, s.Remaining("Unknown"))

	assert.True(t, s.HasTopic("Coding", "Graphs"))
	assert.True(t, s.HasTopic("Coding", "Revise → Graphs"))
	assert.False(t, s.HasTopic("Coding", "Haskell"))
	assert.False(t, s.HasTopic("Unknown", "Graphs"))
}

func TestNewDefaults(t *testing.T) {
	repo := store.NewFileStore(filepath.Join(t.TempDir(), "s.json"), nil)
	tr := progress.NewTracker(store.DefaultState(), repo, nil, nil)
	s := New(tr, "", nil)
	assert.Equal(t, planner.ModeBalanced, s.Mode)
	assert.NotNil(t, s.rng)
	assert.Same(t, tr, s.Tracker())
}

func TestSeedMakesRevisionPicksRepeatable(t *testing.T) {
	ctx := context.Background()
	pick := func() string {
		s, _ := newTestSession(t)
		s.Seed(42)
		s.Define("Maths", 3, []string{"a", "b", "c", "d", "e"})
		s.State().Completed["Maths"] = []string{"a", "b", "c", "d", "e"}
		plan, err := s.GeneratePlan(ctx, planner.ModeLight)
		require.NoError(t, err)
		require.Len(t, plan.Subjects[0].Items, 1)
		require.True(t, plan.Subjects[0].Items[0].Revision)
		return plan.Subjects[0].Items[0].Topic
	}
	assert.Equal(t, pick(), pick())
}
