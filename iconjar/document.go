package iconjar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/dendrascience/iconjar/util"
)

const (
	// Extension is appended to the package name to form its directory.
	Extension = "iconjar"
	// Version is the metadata schema version written to META.
	Version = "2.0"
	// MetaFile is the name of the compressed metadata document.
	MetaFile = "META"
	// IconsDir is the subdirectory holding the copied icon files.
	IconsDir = "icons"
)

// Meta is the header of the metadata document.
type Meta struct {
	Version string `json:"version"`
	Date    string `json:"date"`
}

type GroupRecord struct {
	Name        string `json:"name"`
	Identifier  ID     `json:"identifier"`
	Sort        int    `json:"sort"`
	Description string `json:"description"`
	Parent      ID     `json:"parent,omitempty"`
}

type SetRecord struct {
	Name        string `json:"name"`
	Identifier  ID     `json:"identifier"`
	Sort        int    `json:"sort"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Parent      ID     `json:"parent,omitempty"`
	License     ID     `json:"license,omitempty"`
}

type LicenseRecord struct {
	Name       string `json:"name"`
	Identifier ID     `json:"identifier"`
	URL        string `json:"url"`
	Text       string `json:"text"`
}

type ItemRecord struct {
	Name        string   `json:"name"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Type        IconType `json:"type"`
	File        string   `json:"file"`
	Date        string   `json:"date"`
	Tags        string   `json:"tags"`
	Identifier  ID       `json:"identifier"`
	Parent      ID       `json:"parent"`
	Unicode     string   `json:"unicode"`
	Description string   `json:"description"`
	Licence     ID       `json:"licence,omitempty"`
}

// Document is the decoded content of a package META file.
type Document struct {
	Meta     Meta                 `json:"meta"`
	Groups   map[ID]GroupRecord   `json:"groups"`
	Sets     map[ID]SetRecord     `json:"sets"`
	Licences map[ID]LicenseRecord `json:"licences"`
	Items    map[ID]ItemRecord    `json:"items"`
}

func newDocument() *Document {
	return &Document{
		Groups:   make(map[ID]GroupRecord),
		Sets:     make(map[ID]SetRecord),
		Licences: make(map[ID]LicenseRecord),
		Items:    make(map[ID]ItemRecord),
	}
}

// Encode serializes d as compact JSON and gzips it.
func (d *Document) Encode() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return util.Compress(raw)
}

// ReadDocument decodes the META file of the package directory dir.
func ReadDocument(fsys billy.Filesystem, dir string) (*Document, error) {
	f, err := fsys.Open(fsys.Join(dir, MetaFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotPackage)
		}
		return nil, err
	}
	defer f.Close()

	raw, err := util.Decompress(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	doc := newDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode metadata in %s: %w", dir, err)
	}
	return doc, nil
}

// Verify checks the internal consistency of d against the package directory
// dir and returns one message per problem found. Problems are sorted so the
// output is stable.
func (d *Document) Verify(fsys billy.Filesystem, dir string) []string {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if d.Meta.Version != Version {
		addf("unsupported metadata version %q", d.Meta.Version)
	}

	checkID := func(kind string, key, identifier ID) {
		if key != identifier {
			addf("%s key %s does not match identifier %s", kind, key, identifier)
		}
		if !util.IsIdentifier(string(key)) {
			addf("%s key %q is not a valid identifier", kind, key)
		}
	}

	for key, g := range d.Groups {
		checkID("group", key, g.Identifier)
		if g.Parent != "" {
			if _, ok := d.Groups[g.Parent]; !ok {
				addf("group %s references missing parent %s", key, g.Parent)
			}
		}
	}
	for key := range d.Groups {
		if d.groupCycle(key) {
			addf("group %s has a parent cycle", key)
		}
	}
	for key, s := range d.Sets {
		checkID("set", key, s.Identifier)
		if s.Parent != "" {
			if _, ok := d.Groups[s.Parent]; !ok {
				addf("set %s references missing parent %s", key, s.Parent)
			}
		}
		if s.License != "" {
			if _, ok := d.Licences[s.License]; !ok {
				addf("set %s references missing licence %s", key, s.License)
			}
		}
	}
	for key, l := range d.Licences {
		checkID("licence", key, l.Identifier)
	}

	iconDir := fsys.Join(dir, IconsDir)
	for key, item := range d.Items {
		checkID("item", key, item.Identifier)
		if _, ok := d.Sets[item.Parent]; !ok {
			addf("item %s references missing set %s", key, item.Parent)
		}
		if item.Licence != "" {
			if _, ok := d.Licences[item.Licence]; !ok {
				addf("item %s references missing licence %s", key, item.Licence)
			}
		}
		if !item.Type.Known() {
			addf("item %s has unknown type %d", key, item.Type)
		}
		if item.File == "" {
			addf("item %s has no file", key)
			continue
		}
		if _, err := fsys.Stat(fsys.Join(iconDir, item.File)); err != nil {
			addf("item %s file %s: %v", key, item.File, err)
		}
	}

	sort.Strings(problems)
	return problems
}

// groupCycle reports whether following parent references from the group key
// revisits a group, which leaves it unreachable from the root.
func (d *Document) groupCycle(key ID) bool {
	seen := map[ID]bool{key: true}
	for id := d.Groups[key].Parent; id != ""; {
		if seen[id] {
			return true
		}
		g, ok := d.Groups[id]
		if !ok {
			return false
		}
		seen[id] = true
		id = g.Parent
	}
	return false
}
