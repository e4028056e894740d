package iconjar

import (
	"fmt"

	"github.com/dendrascience/iconjar/util"
)

// arena stores every entity of a package keyed by ID. Relations between
// entities are ID references into the arena, never pointers between entities.
type arena struct {
	roots    []ID
	groups   map[ID]*Group
	sets     map[ID]*Set
	icons    map[ID]*Icon
	licenses map[ID]*License

	// err holds the first failure of a chaining builder method.
	err error
}

func newArena() *arena {
	return &arena{
		groups:   make(map[ID]*Group),
		sets:     make(map[ID]*Set),
		icons:    make(map[ID]*Icon),
		licenses: make(map[ID]*License),
	}
}

func newID() ID {
	return ID(util.NewIdentifier())
}

func (a *arena) newGroup(name string) *Group {
	if name == "" {
		name = "Untitled"
	}
	g := &Group{arena: a, id: newID(), name: name}
	a.groups[g.id] = g
	return g
}

func (a *arena) newSet(name string) *Set {
	if name == "" {
		name = "Untitled Set"
	}
	s := &Set{arena: a, id: newID(), name: name}
	a.sets[s.id] = s
	return s
}

func (a *arena) newIcon(name, sourcePath string) *Icon {
	if name == "" {
		name = "Untitled Icon"
	}
	i := &Icon{
		arena:      a,
		id:         newID(),
		name:       name,
		sourcePath: sourcePath,
		typ:        TypeFromPath(sourcePath),
	}
	a.icons[i.id] = i
	return i
}

func (a *arena) newLicense(name string) *License {
	if name == "" {
		name = "Untitled License"
	}
	l := &License{arena: a, id: newID(), name: name}
	a.licenses[l.id] = l
	return l
}

// lookup returns the entity stored under id, or nil.
func (a *arena) lookup(id ID) Entity {
	if g, ok := a.groups[id]; ok {
		return g
	}
	if s, ok := a.sets[id]; ok {
		return s
	}
	if i, ok := a.icons[id]; ok {
		return i
	}
	if l, ok := a.licenses[id]; ok {
		return l
	}
	return nil
}

// record keeps the first builder error.
func (a *arena) record(err error) {
	if err != nil && a.err == nil {
		a.err = err
	}
}

// attach appends child to parent and sets the child's back-reference.
// A nil parent stands for the package root.
func (a *arena) attach(parent, child Entity) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrTypeMismatch)
	}
	if child.owner() != a {
		return fmt.Errorf("%s: %w", child.Kind(), ErrForeignEntity)
	}
	if parent != nil && parent.owner() != a {
		return fmt.Errorf("%s: %w", parent.Kind(), ErrForeignEntity)
	}

	switch p := parent.(type) {
	case nil:
		switch c := child.(type) {
		case *Group:
			if c.attached {
				return alreadyAttached(c)
			}
			c.attached = true
			a.roots = append(a.roots, c.id)
			return nil
		case *Set:
			if c.attached {
				return alreadyAttached(c)
			}
			c.attached = true
			a.roots = append(a.roots, c.id)
			return nil
		}
	case *Group:
		switch c := child.(type) {
		case *Group:
			if c.attached {
				return alreadyAttached(c)
			}
			for id := p.id; id != ""; id = a.groups[id].parent {
				if id == c.id {
					return fmt.Errorf("group %q under %q: %w", c.name, p.name, ErrCycle)
				}
			}
			c.attached = true
			c.parent = p.id
			p.children = append(p.children, c.id)
			return nil
		case *Set:
			if c.attached {
				return alreadyAttached(c)
			}
			c.attached = true
			c.parent = p.id
			p.children = append(p.children, c.id)
			return nil
		}
	case *Set:
		if c, ok := child.(*Icon); ok {
			if c.set != "" {
				return alreadyAttached(c)
			}
			c.set = p.id
			p.icons = append(p.icons, c.id)
			return nil
		}
	}
	return mismatch(parent, child)
}

func mismatch(parent, child Entity) error {
	holder := "package"
	if parent != nil {
		holder = parent.Kind().String()
	}
	return fmt.Errorf("%w: %s cannot hold %s %s", ErrTypeMismatch, holder, child.Kind(), child.ID())
}

func alreadyAttached(e Entity) error {
	return fmt.Errorf("%s %s: %w", e.Kind(), e.ID(), ErrAlreadyAttached)
}

// reference resolves a license reference to its ID. A nil license clears the
// reference.
func (a *arena) reference(license *License) (ID, error) {
	if license == nil {
		return "", nil
	}
	if license.owner() != a {
		return "", fmt.Errorf("license %q: %w", license.name, ErrForeignEntity)
	}
	return license.id, nil
}
