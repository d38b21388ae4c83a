package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/session"
	"github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/topics"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage saved subjects",
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a subject",
	Long: "Add a subject with a credit weight (1-5) and comma-separated portions. " +
		"With --pdf and no --portions, topics are suggested from the syllabus.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		credits, _ := cmd.Flags().GetInt("credits")
		if credits < session.MinCredits || credits > session.MaxCredits {
			return fmt.Errorf("--credits must be between %d and %d, got %d", session.MinCredits, session.MaxCredits, credits)
		}

		e, err := openEnv(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		name := strings.TrimSpace(args[0])
		if planner.IsCompulsory(name) {
			lipgloss.Fprintln(cmd.ErrOrStderr(), dimStyle.Render(name+" is always planned with its built-in topics; the saved definition is not used."))
		}

		portionsText, _ := cmd.Flags().GetString("portions")
		portions := topics.ParsePortions(portionsText)
		if pdf, _ := cmd.Flags().GetString("pdf"); pdf != "" && len(portions) == 0 {
			portions = syllabus.NewExtractor(e.log).Suggest(pdf)
			if len(portions) == 0 {
				lipgloss.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("No topics found in "+pdf))
			}
		}

		if !e.sess.Define(name, credits, portions) {
			return fmt.Errorf("subject name must not be empty")
		}
		if err := e.sess.SaveSubjects(ctx); err != nil {
			return err
		}

		lipgloss.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Saved %s (%d credits, %d topics)", name, credits, len(portions))))
		return nil
	},
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		w := cmd.OutOrStdout()
		subjects := e.sess.ViewSubjects()
		for name, sub := range subjects.All() {
			tag := ""
			if planner.IsCompulsory(name) {
				tag = dimStyle.Render(" (built-in)")
			}
			lipgloss.Fprintln(w, subjectStyle.Render(name)+tag+dimStyle.Render(fmt.Sprintf("  %d credits", sub.Credits)))
			for _, t := range sub.Portions {
				mark := "  "
				if e.sess.State().IsCompleted(name, t) {
					mark = okStyle.Render("✓ ")
				}
				label := t
				if topics.IsHard(t) {
					label += " " + hardStyle.Render("(hard)")
				}
				lipgloss.Fprintln(w, "  "+mark+label)
			}
		}
		return nil
	},
}

var subjectRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a saved subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if !e.sess.Remove(args[0]) {
			return fmt.Errorf("no saved subject named %q", args[0])
		}
		if err := e.sess.SaveSubjects(ctx); err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), okStyle.Render("Removed "+args[0]))
		return nil
	},
}

func init() {
	subjectAddCmd.Flags().Int("credits", 3, "Credit weight, 1-5")
	subjectAddCmd.Flags().String("portions", "", "Comma-separated topics")
	subjectAddCmd.Flags().String("pdf", "", "Syllabus PDF to suggest topics from")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectRemoveCmd)
}
