package model

import (
	"fmt"
	"strings"
)

// AchievementSlots is the fixed number of daily highlight slots.
const AchievementSlots = 3

// Achievement is one daily highlight slot.
type Achievement struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Filled reports whether the slot holds non-blank text.
func (a Achievement) Filled() bool {
	return strings.TrimSpace(a.Text) != ""
}

// FilledAchievements returns the slots holding non-blank text.
func FilledAchievements(achievements []Achievement) []Achievement {
	var filled []Achievement
	for _, a := range achievements {
		if a.Filled() {
			filled = append(filled, a)
		}
	}
	return filled
}

// ValidateAchievements checks the persisted shape: exactly AchievementSlots
// entries, each with an id.
func ValidateAchievements(achievements []Achievement) error {
	if len(achievements) != AchievementSlots {
		return fmt.Errorf("expected %d achievement slots, got %d", AchievementSlots, len(achievements))
	}
	for i, a := range achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement slot %d has no id", i+1)
		}
	}
	return nil
}
