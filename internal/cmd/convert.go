package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/iconjar"
	"github.com/dendrascience/iconjar/internal/importer"
)

// NewConvertCmd creates and returns the convert subcommand for the iconjar CLI.
// It packages a directory tree of icon files.
func NewConvertCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		name       string
		include    []string
		exclude    []string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Build a package from a directory of icons",
		Long: `Convert a directory tree of icon files into an .iconjar package.

Directories that contain subdirectories become groups, and the files directly
inside a directory become a set named after it. Files at the top of the input
directory go into a set named after the package. Only files with a known icon
extension whose content matches that extension are imported.

PNG and GIF sizes are read from the files. PDF, ICNS, WEBP and ICO icons get
the size given by --size and are skipped when it is not set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, inputPath, outputPath, importer.Options{
				Name:    name,
				Include: include,
				Exclude: exclude,
			}, dryRun)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input directory containing icon files (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Directory to write the package into (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Package name (defaults to the input directory name)")
	cmd.Flags().StringArrayVar(&include, "include", nil, "Only import files matching this glob, relative to the input (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Skip files matching this glob, relative to the input (repeatable)")
	cmd.Flags().IntP("size", "s", 0, "Width and height for icons whose size cannot be read")
	cmd.Flags().Bool("overwrite", false, "Replace an existing package of the same name")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(cmd *cobra.Command, inputPath, outputPath string, opts importer.Options, dryRun bool) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input directory does not exist: %s", inputPath)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("input is not a directory: %s", inputPath)
	}
	if pathWithin(outputPath, inputPath) {
		return fmt.Errorf("output %s must not be inside input %s", outputPath, inputPath)
	}

	opts.DefaultSize = cfg.DefaultSize
	opts.Logger = logger

	logger.Info("scanning input directory", "path", inputPath)
	res, err := importer.Import(inputPath, opts, iconjar.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to import icons: %w", err)
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, "DRY RUN - no changes will be made")
		fmt.Fprintf(out, "Would create package %q with %d groups, %d sets and %d icons\n",
			res.Package.Name(), res.Groups, res.Sets, res.Icons)
		for _, s := range res.Skipped {
			fmt.Fprintf(out, "  skip %s: %s\n", s.Path, s.Reason)
		}
		return nil
	}

	dir, err := res.Package.Save(outputPath, cfg.Overwrite)
	if err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}

	fmt.Fprintf(out, "Package written to %s\n", dir)
	fmt.Fprintf(out, "  Groups: %d\n", res.Groups)
	fmt.Fprintf(out, "  Sets: %d\n", res.Sets)
	fmt.Fprintf(out, "  Icons: %d\n", res.Icons)
	fmt.Fprintf(out, "  Skipped: %d\n", len(res.Skipped))
	return nil
}

// pathWithin reports whether path is dir or lies beneath it. Both paths are
// made absolute first.
func pathWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
