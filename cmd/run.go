package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/app"
	"github.com/abhisek/studyplan/internal/syllabus"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	skipIntro, _ := cmd.Flags().GetBool("no-intro")
	return app.Run(app.Options{
		Session:   e.sess,
		Extractor: syllabus.NewExtractor(e.log),
		Events:    e.handle.Events,
		Log:       e.log,
		SkipIntro: skipIntro,
	})
}
