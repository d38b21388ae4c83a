package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/topics"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and print this week's plan from saved subjects",
	Long: "Generate a weekly plan from the saved subjects using the configured mode " +
		"(see --mode). Generating a plan resets the weekly completion stats.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
			e.sess.Seed(seed)
		}

		plan, err := e.sess.GeneratePlan(ctx, e.sess.Mode)
		if err != nil {
			return err
		}
		ws := e.sess.RefreshWeekly()
		if err := e.sess.Tracker().Save(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printPlan(out, e.sess, plan)
		if pct, ok := progress.Percent(ws); ok {
			lipgloss.Fprintln(out, dimStyle.Render(fmt.Sprintf("\nWeekly completion: %d/%d (%d%%)", ws.Done, ws.Total, pct)))
		}
		return nil
	},
}

func printPlan(w io.Writer, sess *session.Session, plan *planner.Plan) {
	lipgloss.Fprintln(w, headingStyle.Render(fmt.Sprintf("Weekly plan (%s)", plan.Mode)))
	if plan.Len() == 0 {
		lipgloss.Fprintln(w, dimStyle.Render("No subjects with topics. Add one with: studyplan subject add"))
		return
	}
	for _, sp := range plan.Subjects {
		lipgloss.Fprintln(w, "\n"+subjectStyle.Render(sp.Subject))
		for _, it := range sp.Items {
			box := "[ ]"
			label := it.Label()
			switch {
			case sess.IsDone(sp.Subject, it):
				box = okStyle.Render("[✓]")
			case it.Revision:
				label = revStyle.Render(label)
			}
			if topics.IsHard(it.Topic) {
				label += " " + hardStyle.Render("(hard)")
			}
			lipgloss.Fprintln(w, "  "+box+" "+label)
		}
	}
}

func init() {
	planCmd.Flags().Uint64("seed", 0, "Seed for revision picks (0 = random)")
}
