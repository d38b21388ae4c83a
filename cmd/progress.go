package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/streak"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-subject progress, weekly stats and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		w := cmd.OutOrStdout()
		st := e.sess.State()
		remaining, _ := cmd.Flags().GetBool("remaining")

		lipgloss.Fprintln(w, headingStyle.Render("Progress"))
		rows := e.sess.ProgressRows()
		labelWidth := 0
		for _, r := range rows {
			labelWidth = max(labelWidth, lipgloss.Width(r.Subject))
		}
		for _, r := range rows {
			bar := components.NewProgressBar(r.Subject, r.Ratio, 60)
			bar.LabelWidth = labelWidth
			bar.Caption = fmt.Sprintf("%d/%d", r.Done, r.Total)
			lipgloss.Fprintln(w, bar.View())
			if remaining {
				for _, t := range e.sess.Remaining(r.Subject) {
					lipgloss.Fprintln(w, dimStyle.Render("    · "+t))
				}
			}
		}

		lipgloss.Fprintln(w)
		if pct, ok := progress.Percent(st.WeeklyStats); ok {
			lipgloss.Fprintln(w, fmt.Sprintf("This week: %d/%d done (%d%%)", st.WeeklyStats.Done, st.WeeklyStats.Total, pct))
		} else {
			lipgloss.Fprintln(w, dimStyle.Render("This week: no plan generated"))
		}
		lipgloss.Fprintln(w, "Streak: "+layout.StreakLabel(st.Streak.Count, streak.NextMilestone(st.Streak.Count)))
		return nil
	},
}

func init() {
	progressCmd.Flags().Bool("remaining", false, "List outstanding topics under each subject")
}
