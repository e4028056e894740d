package iconjar

import "time"

// ID identifies an entity. IDs are assigned when an entity is created and
// never change.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// Kind names the variant of an Entity.
type Kind int

const (
	KindGroup Kind = iota
	KindSet
	KindIcon
	KindLicense
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindSet:
		return "set"
	case KindIcon:
		return "icon"
	case KindLicense:
		return "license"
	default:
		return "unknown"
	}
}

// Entity is implemented by *Group, *Set, *Icon and *License.
// The interface is sealed; values are created through a Package.
type Entity interface {
	ID() ID
	Kind() Kind
	owner() *arena
}

// Ptr returns a pointer to v. It is a convenience for filling props structs.
func Ptr[T any](v T) *T {
	return &v
}

// GroupProps lists the settable properties of a Group. Nil fields are left
// unchanged by Apply.
type GroupProps struct {
	Name        *string
	Description *string
	Sort        *int
}

// SetProps lists the settable properties of a Set. Nil fields are left
// unchanged by Apply.
type SetProps struct {
	Name        *string
	Description *string
	Date        *time.Time
	Sort        *int
}

// IconProps lists the settable properties of an Icon. Nil fields are left
// unchanged by Apply; a non-nil Tags replaces the icon's tags.
type IconProps struct {
	Name        *string
	Type        *IconType
	Width       *int
	Height      *int
	Date        *time.Time
	Unicode     *string
	Description *string
	Tags        []string
}

// LicenseProps lists the settable properties of a License. Nil fields are
// left unchanged by Apply.
type LicenseProps struct {
	Name        *string
	URL         *string
	Description *string
}

func optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func optionalTime(t *time.Time) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	return *t, true
}
