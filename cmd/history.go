package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent completions (sqlite backend only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if e.handle.Events == nil {
			return fmt.Errorf("history needs the sqlite backend (--backend sqlite)")
		}

		limit, _ := cmd.Flags().GetInt("limit")
		subject, _ := cmd.Flags().GetString("subject")
		events, err := e.handle.Events.Completions(cmd.Context(), store.QueryOpts{Limit: limit, Subject: subject})
		if err != nil {
			return fmt.Errorf("query completions: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			lipgloss.Fprintln(w, dimStyle.Render("No completions recorded yet."))
			return nil
		}
		for _, ev := range events {
			mark := dimStyle.Render(fmt.Sprintf("×%d", ev.Repetitions))
			if ev.Marked {
				mark = okStyle.Render("✓")
			}
			lipgloss.Fprintf(w, "%s  %s  %s %s\n",
				dimStyle.Render(ev.OccurredAt.Local().Format("2006-01-02 15:04")),
				subjectStyle.Render(ev.Subject), ev.Topic, mark)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Max completions to show (0 = all)")
	historyCmd.Flags().String("subject", "", "Only show this subject")
}
