package cmd

import (
	"cmp"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dendrascience/iconjar/iconjar"
)

// NewInspectCmd creates and returns the inspect subcommand for the iconjar CLI.
// It summarises the content of a package.
func NewInspectCmd() *cobra.Command {
	var (
		path     string
		showTree bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [PATH]",
		Short: "Show what a package contains",
		Long: `Show a summary of an iconjar package.

This is a utility command that reads the package metadata and prints the
number of groups, sets, icons and licenses, and the icons per type. With
--tree the group and set hierarchy is printed as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runInspect(cmd, path, showTree)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to the package")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the group and set hierarchy")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, showTree bool) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	doc, err := iconjar.ReadDocument(osfs.New("/"), abs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Package: %s\n", abs)
	fmt.Fprintf(out, "Version: %s\n", doc.Meta.Version)
	fmt.Fprintf(out, "Date: %s\n", doc.Meta.Date)
	fmt.Fprintf(out, "Groups: %d\n", len(doc.Groups))
	fmt.Fprintf(out, "Sets: %d\n", len(doc.Sets))
	fmt.Fprintf(out, "Icons: %d\n", len(doc.Items))
	fmt.Fprintf(out, "Licenses: %d\n", len(doc.Licences))

	byType := make(map[iconjar.IconType]int)
	for _, item := range doc.Items {
		byType[item.Type]++
	}
	types := make([]iconjar.IconType, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	slices.Sort(types)
	for _, t := range types {
		fmt.Fprintf(out, "  %s: %d\n", t, byType[t])
	}

	if showTree {
		fmt.Fprintln(out)
		printTree(out, doc)
	}
	return nil
}

// node is one group or set of the document hierarchy.
type node struct {
	id    iconjar.ID
	name  string
	sort  int
	isSet bool
}

func compareNodes(a, b node) int {
	return cmp.Or(cmp.Compare(a.sort, b.sort), strings.Compare(a.name, b.name))
}

// printTree writes the groups and sets of doc as an indented tree. Siblings
// are ordered by sort value, then name.
func printTree(w io.Writer, doc *iconjar.Document) {
	children := make(map[iconjar.ID][]node)
	for id, g := range doc.Groups {
		children[g.Parent] = append(children[g.Parent], node{id: id, name: g.Name, sort: g.Sort})
	}
	for id, s := range doc.Sets {
		children[s.Parent] = append(children[s.Parent], node{id: id, name: s.Name, sort: s.Sort, isSet: true})
	}
	icons := make(map[iconjar.ID][]string)
	for _, item := range doc.Items {
		icons[item.Parent] = append(icons[item.Parent], item.Name)
	}

	var walk func(parent iconjar.ID, depth int)
	walk = func(parent iconjar.ID, depth int) {
		nodes := children[parent]
		slices.SortFunc(nodes, compareNodes)
		indent := strings.Repeat("  ", depth)
		for _, n := range nodes {
			if !n.isSet {
				fmt.Fprintf(w, "%s%s/\n", indent, n.name)
				walk(n.id, depth+1)
				continue
			}
			names := icons[n.id]
			slices.Sort(names)
			fmt.Fprintf(w, "%s%s (%d icons)\n", indent, n.name, len(names))
			for _, name := range names {
				fmt.Fprintf(w, "%s  - %s\n", indent, name)
			}
		}
	}
	walk("", 0)
}
