package store

import (
	"errors"
	"fmt"

	"github.com/abhisek/studyplan/internal/logger"
)

// Backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned for a backend name other than json or sqlite.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Handle bundles the repos for an opened backend. Events is nil for the
// JSON backend, which has no event log.
type Handle struct {
	State  StateRepo
	Events EventRepo
	close  func() error
}

// Close releases the backend.
func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}
	return h.close()
}

// OpenBackend opens the named backend at path.
func OpenBackend(backend, path string, keep int, log *logger.Logger) (*Handle, error) {
	switch backend {
	case BackendJSON, "":
		return &Handle{State: NewFileStore(path, log)}, nil
	case BackendSQLite:
		if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		st, err := Open(path, log)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Handle{State: st.StateRepo(keep), Events: st.EventRepo(), close: st.Close}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
