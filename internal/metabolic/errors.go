package metabolic

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField means a field is empty or not a number.
	ErrMissingField = errors.New("please fill in all fields")
	// ErrOutOfRange means a numeric field parsed but is not positive.
	ErrOutOfRange = errors.New("please enter valid values")
)

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field string
	Value string
	Err   error // ErrMissingField or ErrOutOfRange
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UserMessage returns the notification text for a validation failure.
// Other errors are returned as-is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return "Please fill in all fields."
	case errors.Is(err, ErrOutOfRange):
		return "Please enter valid values."
	}
	return err.Error()
}
