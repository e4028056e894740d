package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/dendrascience/iconjar/iconjar"
)

// builder carries the package under construction and the licenses created so
// far, one per manifest key.
type builder struct {
	m        *Manifest
	pkg      *iconjar.Package
	licenses map[string]*iconjar.License
}

// Build creates the package described by m. Options are passed to
// iconjar.New. The returned package has not been saved.
func (m *Manifest) Build(opts ...iconjar.Option) (*iconjar.Package, error) {
	b := &builder{
		m:        m,
		pkg:      iconjar.New(m.Name, opts...),
		licenses: make(map[string]*iconjar.License),
	}
	for _, g := range m.Groups {
		group, err := b.group(g)
		if err != nil {
			return nil, err
		}
		if err := b.pkg.Attach(nil, group); err != nil {
			return nil, err
		}
	}
	for _, s := range m.Sets {
		set, err := b.set(s)
		if err != nil {
			return nil, err
		}
		if err := b.pkg.Attach(nil, set); err != nil {
			return nil, err
		}
	}
	return b.pkg, b.pkg.Err()
}

func (b *builder) group(g Group) (*iconjar.Group, error) {
	group := b.pkg.NewGroup(g.Name).SetSort(g.Sort)
	if g.Description != "" {
		group.SetDescription(g.Description)
	}
	for _, sub := range g.Groups {
		child, err := b.group(sub)
		if err != nil {
			return nil, err
		}
		if err := b.pkg.Attach(group, child); err != nil {
			return nil, err
		}
	}
	for _, s := range g.Sets {
		set, err := b.set(s)
		if err != nil {
			return nil, err
		}
		if err := b.pkg.Attach(group, set); err != nil {
			return nil, err
		}
	}
	return group, nil
}

func (b *builder) set(s Set) (*iconjar.Set, error) {
	set := b.pkg.NewSet(s.Name).SetSort(s.Sort)
	if s.Description != "" {
		set.SetDescription(s.Description)
	}
	if s.Date != "" {
		date, err := parseDate(s.Date)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", s.Name, err)
		}
		set.SetDate(date)
	}
	if s.License != "" {
		license, err := b.license(s.License)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", s.Name, err)
		}
		set.SetLicense(license)
	}
	for _, i := range s.Icons {
		icon, err := b.icon(i)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", s.Name, err)
		}
		if err := b.pkg.Attach(set, icon); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (b *builder) icon(i Icon) (*iconjar.Icon, error) {
	if i.File == "" {
		return nil, fmt.Errorf("icon %q: %w", i.Name, ErrMissingFile)
	}
	icon := b.pkg.NewIcon(i.Name, b.path(i.File))
	if i.Type != "" {
		t, ok := iconjar.ParseIconType(i.Type)
		if !ok {
			return nil, fmt.Errorf("icon %q: %w: %q", i.Name, ErrUnknownType, i.Type)
		}
		icon.SetType(t)
	}
	if i.Width != 0 || i.Height != 0 {
		icon.SetDimensions(i.Width, i.Height)
	}
	if i.Date != "" {
		date, err := parseDate(i.Date)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", i.Name, err)
		}
		icon.SetDate(date)
	}
	if i.Unicode != "" {
		icon.SetUnicode(i.Unicode)
	}
	if i.Description != "" {
		icon.SetDescription(i.Description)
	}
	icon.AddTags(i.Tags...)
	if i.License != "" {
		license, err := b.license(i.License)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", i.Name, err)
		}
		icon.SetLicense(license)
	}
	return icon, nil
}

// license returns the package license for key, creating it on first use.
func (b *builder) license(key string) (*iconjar.License, error) {
	if l, ok := b.licenses[key]; ok {
		return l, nil
	}
	def, ok := b.m.Licenses[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLicense, key)
	}
	name := def.Name
	if name == "" {
		name = key
	}
	l := b.pkg.NewLicense(name)
	if def.URL != "" {
		l.SetURL(def.URL)
	}
	if def.Text != "" {
		l.SetDescription(def.Text)
	}
	b.licenses[key] = l
	return l, nil
}

func (b *builder) path(file string) string {
	if filepath.IsAbs(file) || b.m.Dir == "" {
		return file
	}
	return filepath.Join(b.m.Dir, file)
}
