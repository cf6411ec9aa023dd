package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/spotify-preview/internal/app"
	"github.com/oshokin/spotify-preview/internal/config"
	"github.com/oshokin/spotify-preview/internal/logger"
	"github.com/oshokin/spotify-preview/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "spotify-preview [flags] {tracks}",
		Short: "Resolve Spotify tracks to their 30-second audio preview URLs.",
		Long: `Spotify Preview resolves a track identifier, either a raw 22-character ID
or a full open.spotify.com track URL, to the URL of its 30-second audio preview.
It fetches the track's public embed page, so no Spotify account or API token is needed.

Each resolved preview URL is printed to stdout on its own line.`,
		Version:          version.Full(),
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, tracks []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, tracks)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.BoolP(
		"require-preview",
		"r",
		false,
		"treat a track without a preview as an error instead of skipping it.")

	rootCmdFlags.StringP(
		"timeout",
		"t",
		"",
		"timeout for embed page requests, for example: 10s, 1m.")

	rootCmdFlags.StringP(
		"user-agent",
		"u",
		"",
		"override the User-Agent header sent to the embed endpoint.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("require-preview"); flag != nil && flag.Changed {
		cfg.RequirePreview, _ = flags.GetBool("require-preview")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("user-agent"); flag != nil && flag.Changed {
		cfg.UserAgent, _ = flags.GetString("user-agent")
	}

	return config.ValidateConfig(cfg)
}
