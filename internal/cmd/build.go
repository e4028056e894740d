package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/iconjar"
	"github.com/dendrascience/iconjar/internal/manifest"
)

// NewBuildCmd creates and returns the build subcommand for the iconjar CLI.
// It turns a manifest file into a package on disk.
func NewBuildCmd() *cobra.Command {
	var (
		manifestPath string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a package from a manifest",
		Long: `Build an .iconjar package from a TOML, YAML or JSON manifest.

The manifest lists licenses by key, and nested groups and sets of icons.
Icon files are resolved relative to the directory of the manifest. The
package is written to OUTPUT/<name>.iconjar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, manifestPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the manifest file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Directory to write the package into (required)")
	cmd.Flags().Bool("overwrite", false, "Replace an existing package of the same name")

	cmd.MarkFlagRequired("manifest")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runBuild(cmd *cobra.Command, manifestPath, outputPath string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debug("loaded manifest", "path", manifestPath, "name", m.Name)

	pkg, err := m.Build(iconjar.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build package: %w", err)
	}
	dir, err := pkg.Save(outputPath, cfg.Overwrite)
	if err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Package written to %s\n", dir)
	return nil
}
