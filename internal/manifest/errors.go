package manifest

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
	ErrUnknownLicense    = errors.New("unknown license key")
	ErrUnknownType       = errors.New("unknown icon type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrMissingFile       = errors.New("icon has no file")
)
