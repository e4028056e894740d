package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/version"
)

// NewVersionCmd creates and returns the version subcommand for the iconjar CLI.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "iconjar")
		},
	}
}
