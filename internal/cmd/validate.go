package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/iconjar"
)

// errProblemsFound makes the command exit non-zero after the report.
var errProblemsFound = errors.New("validation found problems")

// NewValidateCmd creates and returns the validate subcommand for the iconjar CLI.
// It checks packages for consistency.
func NewValidateCmd() *cobra.Command {
	var (
		path    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate iconjar packages for missing files and broken references",
		Long: `Validate iconjar packages for consistency issues.

PATH is either a package directory or a directory to search for packages.
Each package's META is decoded and checked: the metadata version, identifier
format, parent and license references, icon types, and that every icon file
exists in icons/. The command exits with status 1 when a problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, path, verbose)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Package, or directory holding packages, to validate (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, verbose bool) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("path does not exist: %s", path)
	}

	packages, err := findPackages(path)
	if err != nil {
		return fmt.Errorf("error searching %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Validating %d packages under %s\n", len(packages), path)
	}

	var totalProblems int
	for _, pkg := range packages {
		if verbose {
			fmt.Fprintf(out, "Validating package: %s\n", pkg)
		}
		problems := validatePackage(pkg)
		if len(problems) > 0 {
			fmt.Fprintf(out, "Package %s has %d problems:\n", pkg, len(problems))
			for _, p := range problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			totalProblems += len(problems)
		} else if verbose {
			fmt.Fprintf(out, "Package %s is valid\n", pkg)
		}
		logger.Debug("validated package", "path", pkg, "problems", len(problems))
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Packages checked: %d\n", len(packages))
	fmt.Fprintf(out, "  Total problems: %d\n", totalProblems)

	if totalProblems > 0 {
		return errProblemsFound
	}
	return nil
}

// validatePackage returns the problems found in the package at dir. A META
// that cannot be read is reported as a single problem.
func validatePackage(dir string) []string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return []string{fmt.Sprintf("Failed to resolve path: %v", err)}
	}
	fsys := osfs.New("/")
	doc, err := iconjar.ReadDocument(fsys, abs)
	if err != nil {
		return []string{fmt.Sprintf("Failed to read metadata: %v", err)}
	}
	return doc.Verify(fsys, abs)
}

// findPackages returns root when it is a package, and otherwise every
// directory below root with the package extension.
func findPackages(root string) ([]string, error) {
	if isPackage(root) {
		return []string{root}, nil
	}
	var packages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if strings.HasSuffix(d.Name(), "."+iconjar.Extension) {
			packages = append(packages, path)
			return filepath.SkipDir
		}
		return nil
	})
	return packages, err
}

func isPackage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, iconjar.MetaFile))
	return err == nil && !info.IsDir()
}
