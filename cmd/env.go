package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/store"
)

// env is everything a command needs: resolved config, logger, the opened
// backend and a session over the loaded record.
type env struct {
	cfg      config.Config
	dataPath string
	log      *logger.Logger
	handle   *store.Handle
	sess     *session.Session
}

// Close releases the backend and flushes the logger.
func (e *env) Close() {
	if err := e.handle.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.log.Sync()
}

// loadConfig reads the config file, then applies env overrides and finally
// any flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("data"); v != "" {
		cfg.DataPath = v
	}
	if v, _ := flags.GetString("backend"); v != "" {
		cfg.Backend = v
	}
	if v, _ := flags.GetString("mode"); v != "" {
		cfg.Mode = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}

// openEnv resolves config, opens the backend and loads the record. Saved
// subjects are copied into the session.
func openEnv(ctx context.Context, cmd *cobra.Command, logToFile bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataPath, err := cfg.ResolveDataPath()
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}

	var log *logger.Logger
	if logToFile {
		log, err = logger.NewWithOutput(cfg.LogLevel, cfg.ResolveLogFile(dataPath))
	} else {
		log, err = logger.New(cfg.LogLevel)
	}
	if err != nil {
		return nil, err
	}

	handle, err := store.OpenBackend(cfg.Backend, dataPath, cfg.KeepSnapshots, log)
	if err != nil {
		return nil, err
	}

	st := handle.State.Load(ctx)
	tracker := progress.NewTracker(st, handle.State, handle.Events, log)
	sess := session.New(tracker, cfg.StudyMode(), nil)
	sess.LoadSubjects()

	log.Debug("environment ready", "backend", cfg.Backend, "data", dataPath, "mode", cfg.Mode)

	return &env{
		cfg:      cfg,
		dataPath: dataPath,
		log:      log,
		handle:   handle,
		sess:     sess,
	}, nil
}
