package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	"github.com/abhisek/studyplan/internal/logger"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DefaultKeepSnapshots is how many state snapshots the SQLite backend retains.
const DefaultKeepSnapshots = 20

// Store is the SQLite backend. It keeps the record as a JSON snapshot and
// an append-only completion event log.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
	log *logger.Logger
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", connPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(context.Background(), drv)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		drv: drv,
		seq: seq,
		log: logger.OrNop(log).With("store", "sqlite", "dsn", dsn),
	}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// StateRepo returns a StateRepo that keeps the newest keep snapshots
// (keep <= 0 disables pruning).
func (s *Store) StateRepo(keep int) StateRepo {
	return &snapshotRepo{drv: s.drv, seq: s.seq, log: s.log, keep: keep}
}

// EventRepo returns the completion event log.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, seq: s.seq}
}

// connPragmas appends the per-connection pragmas to dsn so every pooled
// connection gets them, not only the first.
func connPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

// builder returns a query builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// DefaultDataPath resolves the data file path for a backend in priority order:
// 1. STUDYPLAN_DATA environment variable
// 2. $XDG_DATA_HOME/studyplan/study_plan.<ext>
// 3. ~/.local/share/studyplan/study_plan.<ext>
func DefaultDataPath(backend string) (string, error) {
	if p := os.Getenv("STUDYPLAN_DATA"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	name := "study_plan.json"
	if backend == BackendSQLite {
		name = "study_plan.db"
	}
	p := filepath.Join(dataHome, "studyplan", name)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
