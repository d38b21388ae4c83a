package store

import (
	"context"
	"time"
)

// StateRepo loads and saves the application record.
type StateRepo interface {
	// Load returns the stored record, or DefaultState() when nothing valid
	// is stored. It never fails; problems are logged.
	Load(ctx context.Context) *State

	// Save writes the full record.
	Save(ctx context.Context, st *State) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Subject string // exact subject match when non-empty
}

// CompletionEvent records one "mark done" action.
type CompletionEvent struct {
	ID          string
	Sequence    int64
	Subject     string
	Topic       string
	Repetitions int  // topic_progress count after this completion
	Marked      bool // appended to completed by this completion
	OccurredAt  time.Time
}

// EventRepo provides append access to completion history.
type EventRepo interface {
	// AppendCompletion records a completion. ID and Sequence are assigned.
	AppendCompletion(ctx context.Context, ev CompletionEvent) error

	// Completions returns events newest first.
	Completions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error)
}
