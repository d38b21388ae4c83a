package progress

import (
	"context"
	"errors"

	"github.com/abhisek/studyplan/internal/store"
)

// memRepo is an in-memory StateRepo that counts saves.
type memRepo struct {
	saved *store.State
	saves int
	err   error
}

func (m *memRepo) Load(context.Context) *store.State {
	if m.saved == nil {
		return store.DefaultState()
	}
	return m.saved
}

func (m *memRepo) Save(_ context.Context, st *store.State) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved = st
	return nil
}

// memEvents is an in-memory EventRepo.
type memEvents struct {
	events []store.CompletionEvent
	err    error
}

func (m *memEvents) AppendCompletion(_ context.Context, ev store.CompletionEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *memEvents) Completions(context.Context, store.QueryOpts) ([]store.CompletionEvent, error) {
	return m.events, nil
}

var errDiskFull = errors.New("disk full")
