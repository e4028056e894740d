package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/dendrascience/iconjar/iconjar"
	"github.com/dendrascience/iconjar/util"
)

// Options controls which files are imported and how.
type Options struct {
	// Name of the package. Defaults to the base name of the root directory.
	Name string
	// Include keeps only files whose slash-separated path relative to the
	// root matches one of these doublestar patterns. Empty keeps all.
	Include []string
	// Exclude drops files matching any of these patterns.
	Exclude []string
	// DefaultSize is the width and height given to PDF, ICNS, WEBP and ICO
	// icons. With no default those files are skipped.
	DefaultSize int
	Logger      *log.Logger
}

// Skipped is a candidate file that was left out of the package.
type Skipped struct {
	Path   string
	Reason string
}

// Result is the outcome of an import.
type Result struct {
	Package *iconjar.Package
	Groups  int
	Sets    int
	Icons   int
	Skipped []Skipped
}

type importer struct {
	opts   Options
	pkg    *iconjar.Package
	logger *log.Logger
	result *Result
}

// Import scans root and builds a package from the icon files below it. The
// iconjar options are passed to iconjar.New. It fails with ErrNoIcons when
// nothing could be imported.
func Import(root string, opts Options, pkgOpts ...iconjar.Option) (*Result, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	for _, pattern := range append(append([]string(nil), opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(root)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tree, err := util.ScanDirectory(root, opts.match)
	if err != nil {
		return nil, err
	}

	imp := &importer{
		opts:   opts,
		pkg:    iconjar.New(opts.Name, pkgOpts...),
		logger: logger,
		result: &Result{},
	}
	imp.result.Package = imp.pkg

	if set := imp.set(opts.Name, tree.Files); set != nil {
		if err := imp.pkg.Attach(nil, set); err != nil {
			return nil, err
		}
	}
	for _, dir := range tree.Dirs {
		entity, err := imp.dir(dir)
		if err != nil {
			return nil, err
		}
		if entity == nil {
			continue
		}
		if err := imp.pkg.Attach(nil, entity); err != nil {
			return nil, err
		}
	}

	if imp.result.Icons == 0 {
		return imp.result, fmt.Errorf("%w in %s", ErrNoIcons, root)
	}
	return imp.result, nil
}

// match reports whether the file at rel is a candidate icon.
func (o Options) match(rel string) bool {
	if !iconjar.TypeFromPath(rel).Known() {
		return false
	}
	if len(o.Include) > 0 && !matchAny(o.Include, rel) {
		return false
	}
	return !matchAny(o.Exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// dir returns the group or set for d, or nil when nothing below d was
// imported.
func (imp *importer) dir(d util.Dir) (iconjar.Entity, error) {
	set := imp.set(d.Name, d.Files)
	if len(d.Dirs) == 0 {
		if set == nil {
			return nil, nil
		}
		return set, nil
	}

	var children []iconjar.Entity
	if set != nil {
		children = append(children, set)
	}
	for _, sub := range d.Dirs {
		child, err := imp.dir(sub)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		return nil, nil
	}

	group := imp.pkg.NewGroup(d.Name)
	for _, child := range children {
		if err := imp.pkg.Attach(group, child); err != nil {
			return nil, err
		}
	}
	imp.result.Groups++
	return group, nil
}

// set returns a set of the importable files, or nil when there are none.
func (imp *importer) set(name string, files []string) *iconjar.Set {
	var icons []*iconjar.Icon
	for _, path := range files {
		info, err := inspect(path, imp.opts.DefaultSize)
		if err != nil {
			imp.logger.Warn("skipping file", "path", path, "reason", err)
			imp.result.Skipped = append(imp.result.Skipped, Skipped{Path: path, Reason: err.Error()})
			continue
		}
		icon := imp.pkg.NewIcon(iconName(path), path).SetType(info.typ)
		if info.width != 0 || info.height != 0 {
			icon.SetDimensions(info.width, info.height)
		}
		icons = append(icons, icon)
		imp.logger.Debug("imported icon", "path", path, "type", info.typ, "width", info.width, "height", info.height)
	}
	if len(icons) == 0 {
		return nil
	}

	set := imp.pkg.NewSet(name)
	for _, icon := range icons {
		set.AddIcon(icon)
	}
	imp.result.Sets++
	imp.result.Icons += len(icons)
	return set
}

// iconName derives a display name from the file name: the extension is
// dropped and dashes and underscores become spaces.
func iconName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	}), " ")
}
