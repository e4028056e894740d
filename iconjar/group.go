package iconjar

// Group is a folder in the package tree. It holds sets and other groups.
type Group struct {
	arena       *arena
	id          ID
	name        string
	description *string
	sort        int
	parent      ID
	children    []ID
	attached    bool
}

// ID returns the identifier assigned at creation.
func (g *Group) ID() ID { return g.id }

// Kind returns KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) owner() *arena {
	if g == nil {
		return nil
	}
	return g.arena
}

// Name returns the display name.
func (g *Group) Name() string { return g.name }

// Sort returns the sort position among siblings.
func (g *Group) Sort() int { return g.sort }

// Description returns the description and whether one was set.
func (g *Group) Description() (string, bool) { return optional(g.description) }

// Parent returns the ID of the enclosing group, or "" at the package root.
func (g *Group) Parent() ID { return g.parent }

// Children returns the IDs of the attached groups and sets in order.
func (g *Group) Children() []ID {
	return append([]ID(nil), g.children...)
}

// Apply copies every non-nil field of props onto g.
func (g *Group) Apply(props GroupProps) *Group {
	if props.Name != nil {
		g.name = *props.Name
	}
	if props.Description != nil {
		g.description = Ptr(*props.Description)
	}
	if props.Sort != nil {
		g.sort = *props.Sort
	}
	return g
}

// SetDescription sets the group description.
func (g *Group) SetDescription(description string) *Group {
	return g.Apply(GroupProps{Description: &description})
}

// SetSort sets the sort position among siblings.
func (g *Group) SetSort(sort int) *Group {
	return g.Apply(GroupProps{Sort: &sort})
}

// AddGroup attaches child as a subgroup of g.
func (g *Group) AddGroup(child *Group) *Group {
	g.arena.record(g.arena.attach(g, child))
	return g
}

// AddSubGroup is an alias of AddGroup.
func (g *Group) AddSubGroup(child *Group) *Group {
	return g.AddGroup(child)
}

// AddSet attaches set to g.
func (g *Group) AddSet(set *Set) *Group {
	g.arena.record(g.arena.attach(g, set))
	return g
}

// AddNewSubGroup creates a group, passes it to configure when non-nil and
// attaches it to g.
func (g *Group) AddNewSubGroup(name string, configure func(*Group)) *Group {
	child := g.arena.newGroup(name)
	if configure != nil {
		configure(child)
	}
	return g.AddGroup(child)
}

// AddNewSet creates a set, passes it to configure when non-nil and attaches
// it to g.
func (g *Group) AddNewSet(name string, configure func(*Set)) *Group {
	set := g.arena.newSet(name)
	if configure != nil {
		configure(set)
	}
	return g.AddSet(set)
}
