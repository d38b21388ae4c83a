package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/streak"
	"github.com/abhisek/studyplan/internal/ui/layout"
)

var doneCmd = &cobra.Command{
	Use:   "done <subject> <topic>",
	Short: "Mark a topic as studied",
	Long: "Record one completion of a topic. Hard topics (DP, graphs, probability, ...) " +
		"count as complete after two completions. Updates the daily streak.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		subject, topic := args[0], args[1]
		if force, _ := cmd.Flags().GetBool("force"); !force && !e.sess.HasTopic(subject, topic) {
			return fmt.Errorf("%q is not a topic of %q (see 'studyplan subject list', or pass --force)", topic, subject)
		}

		out, err := e.sess.Complete(ctx, subject, topic)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		lipgloss.Fprintln(w, okStyle.Render(out.Describe()))
		lipgloss.Fprintln(w, dimStyle.Render(layout.StreakLabel(out.Streak.Count, streak.NextMilestone(out.Streak.Count))))
		return nil
	},
}

func init() {
	doneCmd.Flags().Bool("force", false, "Record the topic even if it is not in the subject's portions")
}
