package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/version"
)

// NewRootCmd creates and returns the root cobra command for the iconjar CLI.
// It sets up all subcommands, command groups and the persistent flags shared
// by every subcommand.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iconjar",
		Short: "iconjar - build and check .iconjar icon collection packages",
		Long: `iconjar builds icon collection packages in the .iconjar format.

A package is a directory holding a gzip-compressed JSON metadata file (META)
and an icons/ directory with a copy of every icon file. Groups nest other
groups and sets, sets hold icons, and sets and icons may carry a license.

Use subcommands to perform different operations:
  - build: Build a package from a TOML, YAML or JSON manifest
  - convert: Build a package from a directory of icon files
  - validate: Check packages for missing files and broken references
  - inspect: Show what a package contains
  - version: Show version and build information`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a TOML, YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	groupPackaging := "packaging"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPackaging,
		Title: "Packaging Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	buildCmd := NewBuildCmd()
	convertCmd := NewConvertCmd()
	validateCmd := NewValidateCmd()
	inspectCmd := NewInspectCmd()
	versionCmd := NewVersionCmd()

	buildCmd.GroupID = groupPackaging
	convertCmd.GroupID = groupPackaging
	validateCmd.GroupID = groupUtilities
	inspectCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
