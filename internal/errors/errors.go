package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a preset, exercise or set id does not exist
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input at the boundary; state is left unchanged
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Msg)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// NewValidation builds a ValidationError for the given field
func NewValidation(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// StateConflictError reports an operation that is not allowed in the current session state
type StateConflictError struct {
	Op    string
	State string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s: session is %s", e.Op, e.State)
}

// ImportFormatError rejects an import file wholesale
type ImportFormatError struct {
	Reason string
	Err    error
}

func (e *ImportFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import rejected: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import rejected: %s", e.Reason)
}

func (e *ImportFormatError) Unwrap() error { return e.Err }

// DataCorruptionError describes a persisted key that failed to decode.
// The repository repairs the key and only logs this error.
type DataCorruptionError struct {
	Key string
	Err error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("corrupt %q data: %v", e.Key, e.Err)
}

func (e *DataCorruptionError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsStateConflict reports whether err is (or wraps) a StateConflictError
func IsStateConflict(err error) bool {
	var c *StateConflictError
	return errors.As(err, &c)
}

// IsImportFormat reports whether err is (or wraps) an ImportFormatError
func IsImportFormat(err error) bool {
	var f *ImportFormatError
	return errors.As(err, &f)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
