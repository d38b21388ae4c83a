package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// sequenceCounter hands out one monotonic sequence shared by snapshots and
// completion events, so the two tables can be ordered against each other.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// newSequenceCounter seeds the single counter row if it is missing.
func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := builder().Insert(sequenceTable).
		Columns(colID, colNextVal).
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the next sequence number and increments the counter in one
// transaction.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	query, args := b.Select(colNextVal).
		From(b.Table(sequenceTable)).
		Where(entsql.EQ(colID, 1)).
		Query()
	var rows entsql.Rows
	if err := tx.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	var seq int64
	if !rows.Next() {
		rows.Close()
		return 0, errors.New("next sequence: counter row missing")
	}
	if err := rows.Scan(&seq); err != nil {
		rows.Close()
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	rows.Close()

	query, args = b.Update(sequenceTable).
		Add(colNextVal, 1).
		Where(entsql.EQ(colID, 1)).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the completion_events table.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, ev CompletionEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	query, args := builder().Insert(eventsTable).
		Columns(colID, colSequence, colSubject, colTopic, colRepetitions, colMarked, colOccurredAt).
		Values(uuid.NewString(), seqNum, ev.Subject, ev.Topic, ev.Repetitions, ev.Marked,
			ev.OccurredAt.UTC().Format(time.RFC3339Nano)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) Completions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error) {
	b := builder()
	sel := b.Select(colID, colSequence, colSubject, colTopic, colRepetitions, colMarked, colOccurredAt).
		From(b.Table(eventsTable)).
		OrderBy(entsql.Desc(colSequence))
	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Subject != "" {
		sel.Where(entsql.EQ(colSubject, opts.Subject))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}
	defer rows.Close()

	var events []CompletionEvent
	for rows.Next() {
		var (
			ev       CompletionEvent
			occurred string
		)
		if err := rows.Scan(&ev.ID, &ev.Sequence, &ev.Subject, &ev.Topic, &ev.Repetitions, &ev.Marked, &occurred); err != nil {
			return nil, fmt.Errorf("scan completion event: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, occurred)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at %q: %w", occurred, err)
		}
		ev.OccurredAt = t
		events = append(events, ev)
	}
	return events, rows.Err()
}
