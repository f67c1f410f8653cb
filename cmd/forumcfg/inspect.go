package main

import (
	"forumcfg/internal"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Check a legacy snapshot without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *internal.App) error {
			return app.Inspect(cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
