package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Weekly study planner",
	Long:  "Studyplan builds a weekly study plan from your subjects, tracks topic completion and keeps a daily streak.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/studyplan/config.yaml)")
	pf.String("data", "", "Path to the state file (overrides STUDYPLAN_DATA)")
	pf.String("backend", "", "Storage backend: json or sqlite (overrides STUDYPLAN_BACKEND)")
	pf.String("mode", "", "Study mode: Light, Balanced or Hardcore (overrides STUDYPLAN_MODE)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().Bool("no-intro", false, "Skip the welcome screen")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
