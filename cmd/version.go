package cmd

import (
	"runtime/debug"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, and with --paths where studyplan keeps its files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, "studyplan", buildVersion())

		if paths, _ := cmd.Flags().GetBool("paths"); !paths {
			return nil
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := cfg.ResolveDataPath()
		if err != nil {
			return err
		}
		lipgloss.Fprintln(out, dimStyle.Render("backend:"), cfg.Backend)
		lipgloss.Fprintln(out, dimStyle.Render("data:   "), data)
		lipgloss.Fprintln(out, dimStyle.Render("log:    "), cfg.ResolveLogFile(data))
		return nil
	},
}

// buildVersion prefers the ldflags value and falls back to the module
// version recorded by `go install`.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func init() {
	versionCmd.Flags().Bool("paths", false, "Also print the backend, data file and log file in use")
}
