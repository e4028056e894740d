package iconjar

import "time"

// Set is a collection of icons, optionally under a group and a license.
type Set struct {
	arena       *arena
	id          ID
	name        string
	description *string
	date        *time.Time
	sort        int
	parent      ID
	license     ID
	icons       []ID
	attached    bool
}

// ID returns the identifier assigned at creation.
func (s *Set) ID() ID { return s.id }

// Kind returns KindSet.
func (s *Set) Kind() Kind { return KindSet }

func (s *Set) owner() *arena {
	if s == nil {
		return nil
	}
	return s.arena
}

// Name returns the display name.
func (s *Set) Name() string { return s.name }

// Sort returns the sort position among siblings.
func (s *Set) Sort() int { return s.sort }

// Description returns the description and whether one was set.
func (s *Set) Description() (string, bool) { return optional(s.description) }

// Date returns the set date and whether one was set.
func (s *Set) Date() (time.Time, bool) { return optionalTime(s.date) }

// Parent returns the ID of the enclosing group, or "" at the package root.
func (s *Set) Parent() ID { return s.parent }

// License returns the ID of the set license, or "".
func (s *Set) License() ID { return s.license }

// Icons returns the IDs of the attached icons in order.
func (s *Set) Icons() []ID {
	return append([]ID(nil), s.icons...)
}

// Apply copies every non-nil field of props onto s.
func (s *Set) Apply(props SetProps) *Set {
	if props.Name != nil {
		s.name = *props.Name
	}
	if props.Description != nil {
		s.description = Ptr(*props.Description)
	}
	if props.Date != nil {
		s.date = Ptr(*props.Date)
	}
	if props.Sort != nil {
		s.sort = *props.Sort
	}
	return s
}

// SetDescription sets the set description.
func (s *Set) SetDescription(description string) *Set {
	return s.Apply(SetProps{Description: &description})
}

// SetDate sets the set date. Sets without one get the save time.
func (s *Set) SetDate(date time.Time) *Set {
	return s.Apply(SetProps{Date: &date})
}

// SetSort sets the sort position among siblings.
func (s *Set) SetSort(sort int) *Set {
	return s.Apply(SetProps{Sort: &sort})
}

// AddIcon attaches icon to s.
func (s *Set) AddIcon(icon *Icon) *Set {
	s.arena.record(s.arena.attach(s, icon))
	return s
}

// AddNewIcon creates an icon for the file at sourcePath, passes it to
// configure when non-nil and attaches it to s.
func (s *Set) AddNewIcon(name, sourcePath string, configure func(*Icon)) *Set {
	icon := s.arena.newIcon(name, sourcePath)
	if configure != nil {
		configure(icon)
	}
	return s.AddIcon(icon)
}

// SetLicense makes license the license of s. A nil license clears it.
func (s *Set) SetLicense(license *License) *Set {
	id, err := s.arena.reference(license)
	if err != nil {
		s.arena.record(err)
		return s
	}
	s.license = id
	return s
}

// AddNewLicense creates a license, passes it to configure when non-nil and
// makes it the license of s.
func (s *Set) AddNewLicense(name string, configure func(*License)) *Set {
	license := s.arena.newLicense(name)
	if configure != nil {
		configure(license)
	}
	return s.SetLicense(license)
}
