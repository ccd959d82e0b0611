package validate

import (
	"strings"
	"unicode"
)

// SanitizeLine trims a single-line value and drops control characters.
func SanitizeLine(s string) string {
	s = strings.TrimSpace(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeNotes cleans multi-line text for storage.
func SanitizeNotes(notes string) string {
	notes = strings.TrimSpace(notes)

	// Remove null bytes
	notes = strings.ReplaceAll(notes, "\x00", "")

	// Normalize line endings
	notes = strings.ReplaceAll(notes, "\r\n", "\n")
	notes = strings.ReplaceAll(notes, "\r", "\n")

	return notes
}
