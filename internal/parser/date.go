package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/zenith/internal/model"
)

// ParseDate parses a calendar date relative to now and returns YYYY-MM-DD.
// An empty input means today.
func ParseDate(input string) (string, error) {
	return ParseDateAt(input, time.Now())
}

// ParseDateAt parses a calendar date relative to ref.
func ParseDateAt(input string, ref time.Time) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, "today") {
		return ref.Format(model.DateLayout), nil
	}

	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t.Format(model.DateLayout), nil
	}

	cfg := &dateparser.Configuration{CurrentTime: ref}
	result, err := dateparser.Parse(cfg, s)
	if err != nil || result.Time.IsZero() {
		return "", NewDateError(input)
	}
	return result.Time.Format(model.DateLayout), nil
}

// IsDate reports whether s is already in canonical YYYY-MM-DD form.
func IsDate(s string) bool {
	if len(s) != len(model.DateLayout) {
		return false
	}
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
