// Package parser turns loosely formatted user input into canonical values.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationPattern matches duration expressions like "2h", "30m", "1h30m", "2.5h", etc.
var durationPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)?\s*(?:(\d+(?:\.\d+)?)\s*(m|min|mins|minute|minutes))?$`)

// ParseMinutes parses a human-readable duration into whole minutes.
// Supports formats like:
//   - "45" (minutes)
//   - "45m" or "45 minutes"
//   - "1h30m" or "1 hour 30 minutes"
//   - "1.5h" (90 minutes)
//
// The result is rounded to the nearest minute and must be positive.
func ParseMinutes(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, NewMinutesError(input)
	}

	var total time.Duration
	if d, err := time.ParseDuration(input); err == nil {
		total = d
	} else {
		matches := durationPattern.FindStringSubmatch(input)
		if matches == nil {
			return 0, NewMinutesError(input)
		}

		value, _ := strconv.ParseFloat(matches[1], 64)
		unit := strings.ToLower(matches[2])
		if unit == "" {
			// Bare numbers are minutes
			unit = "m"
		}
		total += unitToDuration(value, unit)

		// Second number and unit (for "1h 30m" style)
		if matches[3] != "" {
			value, _ := strconv.ParseFloat(matches[3], 64)
			total += unitToDuration(value, strings.ToLower(matches[4]))
		}
	}

	minutes := int(math.Round(total.Minutes()))
	if minutes <= 0 {
		return 0, NewMinutesError(input)
	}
	return minutes, nil
}

// unitToDuration converts a value and unit to a duration.
func unitToDuration(value float64, unit string) time.Duration {
	switch unit {
	case "h", "hr", "hrs", "hour", "hours":
		return time.Duration(value * float64(time.Hour))
	default:
		return time.Duration(value * float64(time.Minute))
	}
}

// FormatMinutes renders minutes compactly, e.g. "45m" or "1h30m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return strconv.Itoa(minutes) + "m"
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return strconv.Itoa(h) + "h"
	}
	return strconv.Itoa(h) + "h" + strconv.Itoa(m) + "m"
}
