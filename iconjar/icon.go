package iconjar

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Icon is a single image file inside a set.
type Icon struct {
	arena       *arena
	id          ID
	name        string
	sourcePath  string
	typ         IconType
	width       int
	height      int
	date        *time.Time
	unicode     *string
	tags        []string
	description *string
	license     ID
	set         ID
}

// ID returns the identifier assigned at creation.
func (i *Icon) ID() ID { return i.id }

// Kind returns KindIcon.
func (i *Icon) Kind() Kind { return KindIcon }

func (i *Icon) owner() *arena {
	if i == nil {
		return nil
	}
	return i.arena
}

// Name returns the display name.
func (i *Icon) Name() string { return i.name }

// Type returns the file format, derived from the source extension unless set.
func (i *Icon) Type() IconType { return i.typ }

// SourcePath returns the path the icon file is copied from.
func (i *Icon) SourcePath() string { return i.sourcePath }

// FileName returns the base name of the source file.
func (i *Icon) FileName() string { return filepath.Base(i.sourcePath) }

// Dimensions returns the width and height in pixels.
func (i *Icon) Dimensions() (width, height int) { return i.width, i.height }

// Date returns the icon date and whether one was set.
func (i *Icon) Date() (time.Time, bool) { return optionalTime(i.date) }

// Unicode returns the code point text and whether one was set.
func (i *Icon) Unicode() (string, bool) { return optional(i.unicode) }

// Description returns the description and whether one was set.
func (i *Icon) Description() (string, bool) { return optional(i.description) }

// Tags returns the tags in insertion order, duplicates included.
func (i *Icon) Tags() []string { return append([]string(nil), i.tags...) }

// License returns the ID of the icon license, or "".
func (i *Icon) License() ID { return i.license }

// Set returns the ID of the owning set, or "" while unattached.
func (i *Icon) Set() ID { return i.set }

// Apply copies every non-nil field of props onto i.
func (i *Icon) Apply(props IconProps) *Icon {
	if props.Name != nil {
		i.name = *props.Name
	}
	if props.Type != nil {
		i.typ = *props.Type
	}
	if props.Width != nil {
		i.width = *props.Width
	}
	if props.Height != nil {
		i.height = *props.Height
	}
	if props.Date != nil {
		i.date = Ptr(*props.Date)
	}
	if props.Unicode != nil {
		i.unicode = Ptr(*props.Unicode)
	}
	if props.Description != nil {
		i.description = Ptr(*props.Description)
	}
	if props.Tags != nil {
		i.tags = append([]string(nil), props.Tags...)
	}
	return i
}

// SetDimensions sets the width and height in pixels.
func (i *Icon) SetDimensions(width, height int) *Icon {
	return i.Apply(IconProps{Width: &width, Height: &height})
}

// SetType overrides the type derived from the source extension.
func (i *Icon) SetType(t IconType) *Icon {
	return i.Apply(IconProps{Type: &t})
}

// SetDate sets the icon date. Icons without one get the save time.
func (i *Icon) SetDate(date time.Time) *Icon {
	return i.Apply(IconProps{Date: &date})
}

// SetUnicode sets the code point text for font-mapped icons.
func (i *Icon) SetUnicode(unicode string) *Icon {
	return i.Apply(IconProps{Unicode: &unicode})
}

// SetDescription sets the icon description.
func (i *Icon) SetDescription(description string) *Icon {
	return i.Apply(IconProps{Description: &description})
}

// AddTag appends tag. Duplicates are dropped when the package is saved.
func (i *Icon) AddTag(tag string) *Icon {
	i.tags = append(i.tags, tag)
	return i
}

// AddTags appends every tag in order.
func (i *Icon) AddTags(tags ...string) *Icon {
	i.tags = append(i.tags, tags...)
	return i
}

// SetLicense makes license the license of i. A nil license clears it.
func (i *Icon) SetLicense(license *License) *Icon {
	id, err := i.arena.reference(license)
	if err != nil {
		i.arena.record(err)
		return i
	}
	i.license = id
	return i
}

// AddNewLicense creates a license, passes it to configure when non-nil and
// makes it the license of i.
func (i *Icon) AddNewLicense(name string, configure func(*License)) *Icon {
	license := i.arena.newLicense(name)
	if configure != nil {
		configure(license)
	}
	return i.SetLicense(license)
}

// Validate checks the type and dimensions of i. SVG icons may have any size;
// every other type needs a nonzero width and height.
func (i *Icon) Validate() error {
	if !i.typ.Known() {
		return fmt.Errorf("icon %q (%s): %w", i.name, i.id, ErrUnknownType)
	}
	if i.typ != TypeSVG && (i.width == 0 || i.height == 0) {
		return fmt.Errorf("icon %q (%s) is %dx%d: %w", i.name, i.id, i.width, i.height, ErrMissingDimensions)
	}
	return nil
}

// tagList returns the tags deduplicated in first-seen order, comma-joined.
func (i *Icon) tagList() string {
	seen := make(map[string]bool, len(i.tags))
	unique := make([]string, 0, len(i.tags))
	for _, tag := range i.tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}
	return strings.Join(unique, ",")
}
