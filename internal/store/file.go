package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/studyplan/internal/logger"
)

// FileStore keeps the record in a single JSON file.
type FileStore struct {
	path string
	log  *logger.Logger
}

var _ StateRepo = (*FileStore)(nil)

// NewFileStore returns a FileStore for path. A nil logger discards output.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: logger.OrNop(log).With("store", "file", "path", path)}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(ctx context.Context) *State {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.log.Debug("no saved state, using defaults")
		} else {
			f.log.Warn("state unreadable, using defaults", "error", err)
		}
		return DefaultState()
	}

	st, err := decodeState(raw)
	if err != nil {
		backup, berr := f.backup(raw)
		if berr != nil {
			f.log.Error("state malformed, using defaults; backup failed", "error", err, "backup_error", berr)
		} else {
			f.log.Error("state malformed, using defaults", "error", err, "backup", backup)
		}
		return DefaultState()
	}
	return st
}

// backup copies a record that failed to decode next to the data file so
// the next Save does not destroy it.
func (f *FileStore) backup(raw []byte) (string, error) {
	name := fmt.Sprintf("%s.malformed-%s.bak", f.path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(name, raw, 0o600); err != nil {
		return "", err
	}
	return name, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers see either the old or the new record.
func (f *FileStore) Save(ctx context.Context, st *State) error {
	b, err := encodeState(st)
	if err != nil {
		return err
	}
	if err := EnsureDir(f.path); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
