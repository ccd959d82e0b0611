// Package errors holds Zenith's error taxonomy. A UserError is something the
// person at the keyboard can fix by changing their input; a SystemError is a
// storage or environment failure. Both unwrap to a sentinel below when one
// applies, so callers match with Is.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels.
var (
	ErrTaskNotFound        = errors.New("agenda item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAmbiguousID         = errors.New("id prefix matches more than one entry")
	ErrSlotOutOfRange      = errors.New("highlight slot out of range")
	ErrRequiredField       = errors.New("required field missing")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidClock        = errors.New("invalid time of day")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrDatabaseLocked      = errors.New("database locked by another process")
	ErrDiskFull            = errors.New("disk full: unable to write to database")
)

// UserError is bad input. Field and Value name the offending input when known.
type UserError struct {
	Message    string
	Suggestion string
	Field      string
	Value      string
	Cause      error
}

func (e *UserError) Error() string {
	if e.Field == "" || e.Value == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
}

func (e *UserError) Unwrap() error { return e.Cause }

// NewUserError returns a UserError with no field or cause.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// NewFieldError returns a UserError about one input field.
func NewFieldError(cause error, field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
		Field:      field,
		Value:      value,
		Cause:      cause,
	}
}

// SystemError is a failure outside the user's input. Op names the command
// that hit it.
type SystemError struct {
	Op      string
	Message string
	Cause   error
}

func (e *SystemError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Message + " during " + e.Op
}

func (e *SystemError) Unwrap() error { return e.Cause }

// NewSystemErrorWithOp returns a SystemError for op.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{Op: op, Message: message, Cause: cause}
}

// AsUserError returns the first UserError in err's chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsUserError reports whether err's chain holds a UserError.
func IsUserError(err error) bool {
	_, ok := AsUserError(err)
	return ok
}

// IsSystemError reports whether err's chain holds a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// Is is errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is errors.As.
func As(err error, target any) bool { return errors.As(err, target) }

// Wrapf prefixes err with a formatted message. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
