package main

import (
	"fmt"
	"os"

	"forumcfg/internal"
	"forumcfg/internal/di"
	"forumcfg/internal/structures"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:   "forumcfg",
	Short: "Convert a legacy forum snapshot into a forum genesis config",
	Long: `forumcfg reads the state of the legacy forum module, assigns numeric
forum user and moderator ids to every account it references and writes the
genesis configuration of the new forum module.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "config file path")
	pf.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging")
	pf.StringVar(&flags.Sudo, "sudo", "", "forum sudo account (hex, 32 bytes)")
	pf.StringVar(&flags.Input, "input", "", "legacy snapshot path")
	pf.StringVar(&flags.Output, "output", "", "genesis config output path")
	pf.StringVar(&flags.Format, "format", "", "output format: json or pebble")
	rootCmd.MarkPersistentFlagRequired("config")
}

func withApp(run func(app *internal.App) error) error {
	app, err := di.InitApp(&flags)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer app.Close()
	return run(app)
}
