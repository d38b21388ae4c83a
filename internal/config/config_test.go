package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STUDYPLAN_MODE", "STUDYPLAN_BACKEND", "STUDYPLAN_DATA", "STUDYPLAN_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, planner.ModeBalanced, cfg.StudyMode())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "mode: hardcore\nbackend: sqlite\ndata_path: /tmp/plan.db\nkeep_snapshots: 3\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, planner.ModeHardcore, cfg.StudyMode())
	assert.Equal(t, store.BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/plan.db", cfg.DataPath)
	assert.Equal(t, 3, cfg.KeepSnapshots)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "mode: Light\n"))
	require.NoError(t, err)
	assert.Equal(t, planner.ModeLight, cfg.StudyMode())
	assert.Equal(t, store.BackendJSON, cfg.Backend)
	assert.Equal(t, store.DefaultKeepSnapshots, cfg.KeepSnapshots)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYPLAN_MODE", "Light")
	t.Setenv("STUDYPLAN_BACKEND", "sqlite")
	t.Setenv("STUDYPLAN_DATA", "/tmp/elsewhere.db")

	cfg, err := Load(writeConfig(t, "mode: Hardcore\nbackend: json\n"))
	require.NoError(t, err)
	assert.Equal(t, planner.ModeLight, cfg.StudyMode())
	assert.Equal(t, store.BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.DataPath)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "mode: [unterminated\n"},
		{"bad mode", "mode: Insane\n"},
		{"bad backend", "backend: postgres\n"},
		{"negative keep", "keep_snapshots: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestBackendErrorIsTyped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "postgres"
	assert.ErrorIs(t, cfg.Validate(), store.ErrUnknownBackend)

	cfg = DefaultConfig()
	cfg.Mode = "x"
	assert.ErrorIs(t, cfg.Validate(), planner.ErrUnknownMode)
}

func TestResolveDataPath(t *testing.T) {
	clearEnv(t)
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := DefaultConfig()
	p, err := cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "studyplan", "study_plan.json"), p)

	cfg.Backend = store.BackendSQLite
	p, err = cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "studyplan", "study_plan.db"), p)

	explicit := filepath.Join(t.TempDir(), "a", "b.json")
	cfg.DataPath = explicit
	p, err = cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, explicit, p)
	assert.DirExists(t, filepath.Dir(explicit))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "studyplan", "config.yaml"), p)
}

func TestResolveLogFile(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/data", "studyplan.log"), cfg.ResolveLogFile("/data/study_plan.json"))

	cfg.LogFile = "/var/log/sp.log"
	assert.Equal(t, "/var/log/sp.log", cfg.ResolveLogFile("/data/study_plan.json"))
}
