package announcement

import (
	"errors"
	"fmt"
)

// ErrDuplicateGuide means an announcement already exists for the submitted
// guide number. Surfaced to the customer with resubmission guidance, never as
// a raw database error.
var ErrDuplicateGuide = errors.New("an announcement with this guide number already exists")

// ErrNotFound is returned by lookups when no announcement matches
var ErrNotFound = errors.New("announcement not found")

// ValidationError is a user-facing rejection of one input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
