package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/spotify-preview/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Create a starter configuration file with the default settings.",
	Args:  cobra.NoArgs,
	// The root's PersistentPreRun loads the config file; this command
	// exists to create that file, so it must not require one.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteInitConfigCommand(cmd.Context(), configFilenameFromFlag)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register subcommands before execution.
func init() {
	rootCmd.AddCommand(initConfigCmd)
}
