package iconjar

import (
	"errors"
	"fmt"
)

// Sentinel errors for package iconjar.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Builder errors
	ErrTypeMismatch    = errors.New("entity type not accepted by parent")
	ErrAlreadyAttached = errors.New("entity is already attached")
	ErrCycle           = errors.New("group cannot be attached beneath itself")
	ErrForeignEntity   = errors.New("entity belongs to another package")

	// Validation errors
	ErrValidation        = errors.New("icon validation failed")
	ErrUnknownType       = fmt.Errorf("%w: unknown icon type", ErrValidation)
	ErrMissingDimensions = fmt.Errorf("%w: non-svg icon needs width and height", ErrValidation)

	// Packaging errors
	ErrCopy     = errors.New("failed to copy icon file")
	ErrCreation = errors.New("failed to create package")

	// Reader errors
	ErrNotPackage = errors.New("not an iconjar package")
)
