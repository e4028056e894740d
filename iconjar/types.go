package iconjar

import (
	"path/filepath"
	"strings"
)

// IconType is the file format of an icon as stored in package metadata.
type IconType int

const (
	TypeUnknown IconType = -1
	TypeSVG     IconType = 0
	TypePNG     IconType = 1
	TypeGIF     IconType = 2
	TypePDF     IconType = 3
	TypeICNS    IconType = 4
	TypeWEBP    IconType = 5
	TypeICO     IconType = 6
)

// extensionTypes maps lowercase file extensions to icon types.
// ICO files are recognised by the ".icon" extension, not ".ico".
var extensionTypes = map[string]IconType{
	"svg":  TypeSVG,
	"png":  TypePNG,
	"gif":  TypeGIF,
	"pdf":  TypePDF,
	"icns": TypeICNS,
	"webp": TypeWEBP,
	"icon": TypeICO,
}

var typeNames = map[IconType]string{
	TypeUnknown: "unknown",
	TypeSVG:     "svg",
	TypePNG:     "png",
	TypeGIF:     "gif",
	TypePDF:     "pdf",
	TypeICNS:    "icns",
	TypeWEBP:    "webp",
	TypeICO:     "ico",
}

// TypeFromPath derives the icon type from the extension of path.
func TypeFromPath(path string) IconType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return TypeUnknown
}

// ParseIconType returns the type named s ("svg", "png", ...). Unrecognised
// names yield TypeUnknown and false.
func ParseIconType(s string) (IconType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s && t != TypeUnknown {
			return t, true
		}
	}
	return TypeUnknown, false
}

// String returns the lowercase type name, "unknown" for undefined values.
func (t IconType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnknown]
}

// Known reports whether t is one of the defined, non-unknown types.
func (t IconType) Known() bool {
	_, ok := typeNames[t]
	return ok && t != TypeUnknown
}
