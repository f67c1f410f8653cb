package main

import (
	"forumcfg/internal"

	"github.com/spf13/cobra"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt a legacy snapshot and write the genesis config",
	Long: `Load the legacy snapshot, check it, remap every account to a numeric
forum user or moderator id and export the resulting genesis config.

Example usage:
  forumcfg adapt -c config.yaml
  forumcfg adapt -c config.yaml --input snapshot.json.zst --format pebble --output genesis.pebble`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *internal.App) error {
			return app.Adapt()
		})
	},
}

func init() {
	rootCmd.AddCommand(adaptCmd)
}
