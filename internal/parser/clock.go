package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ClockLayout is the canonical time-of-day format.
const ClockLayout = "15:04"

// clockLayouts are tried in order before falling back to natural language.
var clockLayouts = []string{
	ClockLayout,
	"3:04pm",
	"3:04 pm",
	"3pm",
	"3 pm",
}

// ParseClock parses a time of day and returns it as HH:MM.
func ParseClock(input string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", NewClockError(input)
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}

	// Natural language needs a digit or a named hour.
	if !strings.ContainsAny(s, "0123456789") && s != "noon" && s != "midnight" {
		return "", NewClockError(input)
	}
	cfg := &dateparser.Configuration{CurrentTime: time.Now()}
	result, err := dateparser.Parse(cfg, s)
	if err != nil || result.Time.IsZero() {
		return "", NewClockError(input)
	}
	return result.Time.Format(ClockLayout), nil
}

// IsClock reports whether s is already in canonical HH:MM form.
func IsClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
