package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotLoadEmptyGivesDefaults(t *testing.T) {
	s := openTestStore(t)
	got := s.StateRepo(DefaultKeepSnapshots).Load(context.Background())
	assert.Equal(t, DefaultState(), got)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo(DefaultKeepSnapshots)
	ctx := context.Background()

	want := sampleState()
	require.NoError(t, repo.Save(ctx, want))
	assert.Equal(t, want, repo.Load(ctx))
}

func TestSnapshotLatestWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo(0)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		st := DefaultState()
		st.Streak = Streak{Count: i, LastDate: "2024-01-0" + string(rune('0'+i))}
		require.NoError(t, repo.Save(ctx, st))
	}

	got := repo.Load(ctx)
	assert.Equal(t, 3, got.Streak.Count)
	assert.Equal(t, "2024-01-03", got.Streak.LastDate)
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo(5)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		st := DefaultState()
		st.Streak.Count = i
		require.NoError(t, repo.Save(ctx, st))
	}

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 5, count)
	assert.Equal(t, 6, repo.Load(ctx).Streak.Count)
}

func TestSnapshotMalformedGivesDefaults(t *testing.T) {
	s := openTestStore(t)
	_, err := s.DB().Exec(
		`INSERT INTO snapshots (sequence, taken_at, data) VALUES (?, ?, ?)`,
		99, time.Now().UTC().Format(time.RFC3339Nano), `{"streak": 12}`,
	)
	require.NoError(t, err)

	assert.Equal(t, DefaultState(), s.StateRepo(0).Load(context.Background()))
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestCompletionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	inputs := []CompletionEvent{
		{Subject: "Maths", Topic: "DP Basics", Repetitions: 1, Marked: false, OccurredAt: at},
		{Subject: "Maths", Topic: "DP Basics", Repetitions: 2, Marked: true, OccurredAt: at.Add(time.Hour)},
		{Subject: "Coding", Topic: "Arrays", Repetitions: 1, Marked: true, OccurredAt: at.Add(2 * time.Hour)},
	}
	for _, ev := range inputs {
		require.NoError(t, repo.AppendCompletion(ctx, ev))
	}

	all, err := repo.Completions(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Arrays", all[0].Topic)
	assert.True(t, all[0].Sequence > all[1].Sequence)
	assert.NotEmpty(t, all[0].ID)
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.True(t, all[2].OccurredAt.Equal(at))
	assert.False(t, all[2].Marked)
	assert.True(t, all[1].Marked)

	maths, err := repo.Completions(ctx, QueryOpts{Subject: "Maths", Limit: 1})
	require.NoError(t, err)
	require.Len(t, maths, 1)
	assert.Equal(t, 2, maths[0].Repetitions)

	after, err := repo.Completions(ctx, QueryOpts{After: all[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Coding", after[0].Subject)
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	h, err := OpenBackend(BackendJSON, filepath.Join(dir, "s.json"), 0, nil)
	require.NoError(t, err)
	assert.Nil(t, h.Events)
	assert.NoError(t, h.Close())

	h, err = OpenBackend(BackendSQLite, filepath.Join(dir, "db", "s.db"), 3, nil)
	require.NoError(t, err)
	assert.NotNil(t, h.Events)
	assert.NoError(t, h.Close())

	_, err = OpenBackend("redis", "x", 0, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestReopenKeepsStateAndSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path, nil)
	require.NoError(t, err)
	want := sampleState()
	require.NoError(t, s.StateRepo(0).Save(ctx, want))
	first, err := s.seq.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err, "migrating an existing database should succeed")
	t.Cleanup(func() { s.Close() })

	assert.Equal(t, want, s.StateRepo(0).Load(ctx))
	next, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, next)
}
