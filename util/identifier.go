package util

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IdentifierLength is the length of every identifier returned by NewIdentifier.
const IdentifierLength = 36

var identifierPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

// NewIdentifier returns a globally unique identifier in the uppercase
// 8-4-4-4-12 hexadecimal form that IconJar expects.
func NewIdentifier() string {
	return strings.ToUpper(uuid.NewString())
}

// IsIdentifier reports whether s has the shape produced by NewIdentifier.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
