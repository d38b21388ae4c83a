package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/syllabus"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <pdf>",
	Short: "Suggest topics from a syllabus PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		suggested := syllabus.NewExtractor(log).Suggest(args[0])
		w := cmd.OutOrStdout()
		if len(suggested) == 0 {
			lipgloss.Fprintln(w, dimStyle.Render("No topics found."))
			return nil
		}
		for _, t := range suggested {
			lipgloss.Fprintln(w, t)
		}
		return nil
	},
}
