package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/studyplan/internal/logger"
)

// snapshotRepo implements StateRepo on the snapshots table. The newest
// snapshot is the current record.
type snapshotRepo struct {
	drv  *entsql.Driver
	seq  *sequenceCounter
	log  *logger.Logger
	keep int
}

func (r *snapshotRepo) Load(ctx context.Context) *State {
	b := builder()
	query, args := b.Select(colData).
		From(b.Table(snapshotsTable)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(1).
		Query()

	data, found, err := r.latest(ctx, query, args)
	switch {
	case err != nil:
		r.log.Warn("state unreadable, using defaults", "error", err)
		return DefaultState()
	case !found:
		r.log.Debug("no saved state, using defaults")
		return DefaultState()
	}

	st, err := decodeState([]byte(data))
	if err != nil {
		r.log.Error("latest snapshot malformed, using defaults", "error", err)
		return DefaultState()
	}
	return st
}

func (r *snapshotRepo) latest(ctx context.Context, query string, args []any) (string, bool, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return "", false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var data string
	if err := rows.Scan(&data); err != nil {
		return "", false, err
	}
	return data, true, nil
}

func (r *snapshotRepo) Save(ctx context.Context, st *State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	query, args := b.Insert(snapshotsTable).
		Columns(colSequence, colTakenAt, colData).
		Values(seq, time.Now().UTC().Format(time.RFC3339Nano), string(data)).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if r.keep > 0 {
		newest := b.Select(colID).
			From(b.Table(snapshotsTable)).
			OrderBy(entsql.Desc(colSequence)).
			Limit(r.keep)
		query, args := b.Delete(snapshotsTable).
			Where(entsql.NotIn(colID, newest)).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
