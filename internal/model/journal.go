package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mood is an ordinal rating of the day: awful < sad < neutral < happy < ecstatic.
type Mood int

const (
	MoodAwful Mood = iota
	MoodSad
	MoodNeutral
	MoodHappy
	MoodEcstatic
)

var moodNames = [...]string{"awful", "sad", "neutral", "happy", "ecstatic"}

// Moods lists every mood in ascending order.
var Moods = []Mood{MoodAwful, MoodSad, MoodNeutral, MoodHappy, MoodEcstatic}

// String returns the lowercase mood name.
func (m Mood) String() string {
	if m < MoodAwful || m > MoodEcstatic {
		return fmt.Sprintf("mood(%d)", int(m))
	}
	return moodNames[m]
}

// Emoji returns a face for the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodAwful:
		return "😫"
	case MoodSad:
		return "😢"
	case MoodHappy:
		return "😊"
	case MoodEcstatic:
		return "😄"
	default:
		return "😐"
	}
}

// ParseMood parses a mood name case-insensitively.
func ParseMood(s string) (Mood, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range moodNames {
		if n == name {
			return Mood(i), nil
		}
	}
	return MoodNeutral, fmt.Errorf("invalid mood %q (use awful, sad, neutral, happy or ecstatic)", s)
}

// MarshalText encodes the mood as its name.
func (m Mood) MarshalText() ([]byte, error) {
	if m < MoodAwful || m > MoodEcstatic {
		return nil, fmt.Errorf("invalid mood %d", int(m))
	}
	return []byte(moodNames[m]), nil
}

// UnmarshalText decodes a mood name.
func (m *Mood) UnmarshalText(text []byte) error {
	parsed, err := ParseMood(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// JournalEntry is the single journal record, overwritten on each edit.
type JournalEntry struct {
	Mood       Mood   `json:"mood"`
	MoodReason string `json:"moodReason"`
	Notes      string `json:"notes"`
}

// UnmarshalJSON decodes an entry. A missing mood decodes as neutral.
func (j *JournalEntry) UnmarshalJSON(data []byte) error {
	type plain JournalEntry
	entry := plain{Mood: MoodNeutral}
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	*j = JournalEntry(entry)
	return nil
}

// HasNotes reports whether the entry carries non-blank notes.
func (j JournalEntry) HasNotes() bool {
	return strings.TrimSpace(j.Notes) != ""
}
