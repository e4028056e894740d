package iconjar

// License is referenced by sets and icons. It is never owned by them.
type License struct {
	arena       *arena
	id          ID
	name        string
	url         *string
	description *string
}

// ID returns the identifier assigned at creation.
func (l *License) ID() ID { return l.id }

// Kind returns KindLicense.
func (l *License) Kind() Kind { return KindLicense }

func (l *License) owner() *arena {
	if l == nil {
		return nil
	}
	return l.arena
}

// Name returns the display name.
func (l *License) Name() string { return l.name }

// URL returns the license URL and whether one was set.
func (l *License) URL() (string, bool) { return optional(l.url) }

// Description returns the license text and whether one was set.
func (l *License) Description() (string, bool) { return optional(l.description) }

// Apply copies every non-nil field of props onto l.
func (l *License) Apply(props LicenseProps) *License {
	if props.Name != nil {
		l.name = *props.Name
	}
	if props.URL != nil {
		l.url = Ptr(*props.URL)
	}
	if props.Description != nil {
		l.description = Ptr(*props.Description)
	}
	return l
}

// SetURL sets the license URL.
func (l *License) SetURL(url string) *License {
	return l.Apply(LicenseProps{URL: &url})
}

// SetDescription sets the license text.
func (l *License) SetDescription(description string) *License {
	return l.Apply(LicenseProps{Description: &description})
}
