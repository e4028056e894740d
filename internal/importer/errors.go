package importer

import "errors"

var (
	ErrBadPattern = errors.New("invalid glob pattern")
	ErrNoIcons    = errors.New("no icons found")
)
