package iconjar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/dendrascience/iconjar/util"
)

// compiler flattens an arena into the records of a Document and copies icon
// files into iconDir. It reads entities but never modifies them.
type compiler struct {
	arena   *arena
	fs      billy.Filesystem
	iconDir string
	now     func() time.Time
	logger  *log.Logger
	// source maps an icon source path to the path opened on fs.
	source func(string) (string, error)

	doc *Document
}

func (c *compiler) compile(children []ID) (*Document, error) {
	c.doc = newDocument()
	if err := c.compileChildren(children); err != nil {
		return nil, err
	}
	return c.doc, nil
}

// compileChildren walks children depth-first in stored order.
func (c *compiler) compileChildren(children []ID) error {
	for _, id := range children {
		switch e := c.arena.lookup(id).(type) {
		case *Group:
			if err := c.compileGroup(e); err != nil {
				return err
			}
		case *Set:
			if err := c.compileSet(e); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: child %s is not a group or set", ErrTypeMismatch, id)
		}
	}
	return nil
}

func (c *compiler) compileGroup(g *Group) error {
	description, _ := g.Description()
	c.doc.Groups[g.id] = GroupRecord{
		Name:        g.name,
		Identifier:  g.id,
		Sort:        g.sort,
		Description: description,
		Parent:      g.parent,
	}
	c.logger.Debug("compiled group", "name", g.name, "id", g.id)
	return c.compileChildren(g.children)
}

func (c *compiler) compileSet(s *Set) error {
	description, _ := s.Description()
	c.doc.Sets[s.id] = SetRecord{
		Name:        s.name,
		Identifier:  s.id,
		Sort:        s.sort,
		Description: description,
		Date:        c.formatDate(s.date),
		Parent:      s.parent,
		License:     c.compileLicense(s.license),
	}
	c.logger.Debug("compiled set", "name", s.name, "id", s.id, "icons", len(s.icons))

	for _, id := range s.icons {
		icon, ok := c.arena.icons[id]
		if !ok {
			return fmt.Errorf("%w: set %q holds non-icon %s", ErrTypeMismatch, s.name, id)
		}
		if err := c.compileIcon(icon); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) compileIcon(i *Icon) error {
	if err := i.Validate(); err != nil {
		return err
	}

	src, err := c.source(i.sourcePath)
	if err != nil {
		return fmt.Errorf("%w: icon %q: %w", ErrCopy, i.name, err)
	}
	file, err := util.UniqueFilename(c.fs, i.FileName(), c.iconDir)
	if err != nil {
		return fmt.Errorf("%w: icon %q: %w", ErrCopy, i.name, err)
	}

	unicode, _ := i.Unicode()
	description, _ := i.Description()
	c.doc.Items[i.id] = ItemRecord{
		Name:        i.name,
		Width:       i.width,
		Height:      i.height,
		Type:        i.typ,
		File:        file,
		Date:        c.formatDate(i.date),
		Tags:        i.tagList(),
		Identifier:  i.id,
		Parent:      i.set,
		Unicode:     unicode,
		Description: description,
		Licence:     c.compileLicense(i.license),
	}

	dst := c.fs.Join(c.iconDir, file)
	if err := util.CopyFile(c.fs, src, dst); err != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrCopy, src, dst, err)
	}
	c.logger.Debug("compiled icon", "name", i.name, "id", i.id, "file", file)
	return nil
}

// compileLicense registers the license on its first reference and returns
// its ID. Later references reuse the stored record.
func (c *compiler) compileLicense(id ID) ID {
	if id == "" {
		return ""
	}
	if _, ok := c.doc.Licences[id]; ok {
		return id
	}
	l := c.arena.licenses[id]
	url, _ := l.URL()
	text, _ := l.Description()
	c.doc.Licences[id] = LicenseRecord{
		Name:       l.name,
		Identifier: l.id,
		URL:        url,
		Text:       text,
	}
	return id
}

func (c *compiler) formatDate(t *time.Time) string {
	if t == nil {
		return util.FormatDate(c.now())
	}
	return util.FormatDate(*t)
}
