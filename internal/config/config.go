// Package config loads studyplan settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/store"
)

// Config holds all studyplan configuration.
type Config struct {
	// Mode is the default study intensity: Light, Balanced or Hardcore.
	Mode string `yaml:"mode"`

	// Backend selects the state store: "json" or "sqlite".
	Backend string `yaml:"backend"`

	// DataPath overrides the state file location. Empty means the XDG default.
	DataPath string `yaml:"data_path"`

	// KeepSnapshots is how many snapshots the sqlite backend retains.
	// 0 keeps all of them.
	KeepSnapshots int `yaml:"keep_snapshots"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile receives logs while the TUI owns the terminal. Empty means
	// studyplan.log next to the data file.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:          string(planner.ModeBalanced),
		Backend:       store.BackendJSON,
		KeepSnapshots: store.DefaultKeepSnapshots,
		LogLevel:      "warn",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if m := os.Getenv("STUDYPLAN_MODE"); m != "" {
		c.Mode = m
	}
	if b := os.Getenv("STUDYPLAN_BACKEND"); b != "" {
		c.Backend = b
	}
	if p := os.Getenv("STUDYPLAN_DATA"); p != "" {
		c.DataPath = p
	}
	if l := os.Getenv("STUDYPLAN_LOG_LEVEL"); l != "" {
		c.LogLevel = l
	}
}

// Validate checks mode and backend names.
func (c Config) Validate() error {
	if _, err := planner.ParseMode(c.Mode); err != nil {
		return err
	}
	switch c.Backend {
	case store.BackendJSON, store.BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", store.ErrUnknownBackend, c.Backend)
	}
	if c.KeepSnapshots < 0 {
		return fmt.Errorf("keep_snapshots must be >= 0, got %d", c.KeepSnapshots)
	}
	return nil
}

// StudyMode returns the parsed Mode. Call after Validate.
func (c Config) StudyMode() planner.Mode {
	m, err := planner.ParseMode(c.Mode)
	if err != nil {
		return planner.ModeBalanced
	}
	return m
}

// ResolveDataPath returns DataPath, or the backend's default location.
func (c Config) ResolveDataPath() (string, error) {
	if c.DataPath != "" {
		return c.DataPath, store.EnsureDir(c.DataPath)
	}
	return store.DefaultDataPath(c.Backend)
}

// ResolveLogFile returns LogFile, or studyplan.log beside dataPath.
func (c Config) ResolveLogFile(dataPath string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(dataPath), "studyplan.log")
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/studyplan/config.yaml or ~/.config/studyplan/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyplan", "config.yaml"), nil
}
