package iconjar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Package is an icon collection under construction. Build the tree with the
// Add and AddNew methods, then write it with Save.
//
// A Package is not safe for concurrent use.
type Package struct {
	name   string
	arena  *arena
	fs     billy.Filesystem
	osfs   bool
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Package.
type Option func(*Package)

// WithFilesystem makes the package read icon sources from and write the
// package to fsys. Paths are used as given.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(p *Package) {
		p.fs = fsys
		p.osfs = false
	}
}

// WithLogger sets the logger used while saving.
func WithLogger(logger *log.Logger) Option {
	return func(p *Package) {
		p.logger = logger
	}
}

// WithClock sets the time source used for the metadata date and for sets and
// icons that have no date of their own.
func WithClock(now func() time.Time) Option {
	return func(p *Package) {
		p.now = now
	}
}

// New returns an empty package called name. By default it works on the
// operating system filesystem and relative paths are resolved against the
// working directory.
func New(name string, opts ...Option) *Package {
	p := &Package{
		name:   name,
		arena:  newArena(),
		fs:     osfs.New("/"),
		osfs:   true,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the package name used for the output directory.
func (p *Package) Name() string { return p.name }

// Err returns the first error recorded by a chaining builder method.
func (p *Package) Err() error { return p.arena.err }

// Roots returns the IDs of the top level groups and sets in order.
func (p *Package) Roots() []ID {
	return append([]ID(nil), p.arena.roots...)
}

// Lookup returns the entity with the given ID, or nil.
func (p *Package) Lookup(id ID) Entity {
	return p.arena.lookup(id)
}

// NewGroup creates an unattached group. An empty name becomes "Untitled".
func (p *Package) NewGroup(name string) *Group { return p.arena.newGroup(name) }

// NewSet creates an unattached set. An empty name becomes "Untitled Set".
func (p *Package) NewSet(name string) *Set { return p.arena.newSet(name) }

// NewIcon creates an unattached icon for the file at sourcePath. Its type is
// derived from the file extension.
func (p *Package) NewIcon(name, sourcePath string) *Icon {
	return p.arena.newIcon(name, sourcePath)
}

// NewLicense creates a license. An empty name becomes "Untitled License".
func (p *Package) NewLicense(name string) *License { return p.arena.newLicense(name) }

// Attach appends child to parent. A nil parent is the package root. The root
// and groups accept groups and sets; sets accept icons. Any other pairing
// fails with ErrTypeMismatch.
func (p *Package) Attach(parent, child Entity) error {
	return p.arena.attach(parent, child)
}

// AddGroup attaches group at the package root.
func (p *Package) AddGroup(group *Group) *Package {
	p.arena.record(p.arena.attach(nil, group))
	return p
}

// AddSet attaches set at the package root.
func (p *Package) AddSet(set *Set) *Package {
	p.arena.record(p.arena.attach(nil, set))
	return p
}

// AddNewGroup creates a group, passes it to configure when non-nil and
// attaches it at the package root.
func (p *Package) AddNewGroup(name string, configure func(*Group)) *Package {
	group := p.arena.newGroup(name)
	if configure != nil {
		configure(group)
	}
	return p.AddGroup(group)
}

// AddNewSet creates a set, passes it to configure when non-nil and attaches
// it at the package root.
func (p *Package) AddNewSet(name string, configure func(*Set)) *Package {
	set := p.arena.newSet(name)
	if configure != nil {
		configure(set)
	}
	return p.AddSet(set)
}

// Save writes the package to dest/<name>.iconjar and returns that path.
//
// The icon files are copied into the icons subdirectory and the metadata is
// written to META. Unless overwrite is set, an existing package directory or
// META file fails with ErrCreation. A failed Save leaves whatever it had
// already written on disk.
func (p *Package) Save(dest string, overwrite bool) (string, error) {
	if err := p.arena.err; err != nil {
		return "", err
	}

	dest, err := p.resolve(dest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreation, err)
	}
	dir := p.fs.Join(dest, p.name+"."+Extension)
	iconDir := p.fs.Join(dir, IconsDir)

	if err := p.createDirs(dir, iconDir, overwrite); err != nil {
		return "", err
	}

	c := &compiler{
		arena:   p.arena,
		fs:      p.fs,
		iconDir: iconDir,
		now:     p.now,
		logger:  p.logger,
		source:  p.resolve,
	}
	doc, err := c.compile(p.arena.roots)
	if err != nil {
		return "", err
	}
	doc.Meta = Meta{
		Version: Version,
		Date:    c.formatDate(nil),
	}

	data, err := doc.Encode()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreation, err)
	}
	if err := p.writeMeta(p.fs.Join(dir, MetaFile), data, overwrite); err != nil {
		return "", err
	}

	p.logger.Info("package saved", "dir", dir, "groups", len(doc.Groups), "sets", len(doc.Sets), "items", len(doc.Items))
	return dir, nil
}

func (p *Package) createDirs(dir, iconDir string, overwrite bool) error {
	_, err := p.fs.Stat(dir)
	switch {
	case err == nil && !overwrite:
		return fmt.Errorf("%w: %s already exists", ErrCreation, dir)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrCreation, err)
	}
	for _, d := range []string{dir, iconDir} {
		if err := p.fs.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreation, err)
		}
	}
	return nil
}

func (p *Package) writeMeta(path string, data []byte, overwrite bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := p.fs.OpenFile(path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreation, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrCreation, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCreation, err)
	}
	return nil
}

// resolve makes path absolute when the package works on the default
// operating system filesystem, which is rooted at "/".
func (p *Package) resolve(path string) (string, error) {
	if !p.osfs {
		return path, nil
	}
	return filepath.Abs(path)
}
