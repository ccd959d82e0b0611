package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/zenith/internal/errors"
)

// ParseError represents an input parsing error with helpful examples.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	cause      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap returns the sentinel error for the field.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if suggestion == "" && len(e.Examples) > 0 {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}
	return errors.NewFieldError(e.cause, e.Field, e.Input, e.Message, suggestion)
}

// ClockExamples provides example time-of-day formats.
var ClockExamples = []string{
	"09:00",
	"14:30",
	"9am",
	"5:30pm",
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"today",
	"yesterday",
	"2024-01-05",
	"3 days ago",
}

// MinutesExamples provides example duration formats.
var MinutesExamples = []string{
	"45",
	"45m",
	"1h30m",
	"1.5h",
	"2 hours",
}

// NewClockError creates a time-of-day parse error with standard examples.
func NewClockError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "time",
		Message:    "could not parse time of day",
		Examples:   ClockExamples,
		Suggestion: "Use 24-hour HH:MM (e.g. 14:30) or a clock time like '9am'.",
		cause:      errors.ErrInvalidClock,
	}
}

// NewDateError creates a date parse error with standard examples.
func NewDateError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "date",
		Message:    "could not parse date",
		Examples:   DateExamples,
		Suggestion: "Use YYYY-MM-DD or a relative day like 'yesterday'.",
		cause:      errors.ErrInvalidDate,
	}
}

// NewMinutesError creates a duration parse error with standard examples.
func NewMinutesError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "duration",
		Message:    "could not parse duration",
		Examples:   MinutesExamples,
		Suggestion: "Durations are minutes by default; hours can be given with h.",
		cause:      errors.ErrInvalidDuration,
	}
}
