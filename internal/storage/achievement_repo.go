package storage

import (
	"slices"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
)

// AchievementRepo provides operations for the fixed highlight slots.
type AchievementRepo struct {
	slot *Slot[[]model.Achievement]
}

// NewAchievementRepo creates a new achievement repository.
func NewAchievementRepo(db *DB) *AchievementRepo {
	return &AchievementRepo{
		slot: NewSlot(db, model.KeyAchievements, model.SeedAchievements, model.ValidateAchievements),
	}
}

// Get returns a copy of the highlight slots.
func (r *AchievementRepo) Get() []model.Achievement {
	return slices.Clone(r.slot.Get())
}

// Set replaces all highlight slots.
func (r *AchievementRepo) Set(achievements []model.Achievement) error {
	return r.slot.Set(slices.Clone(achievements))
}

// Reset restores three empty slots.
func (r *AchievementRepo) Reset() error {
	return r.slot.Reset()
}

// SetText updates the text of the slot at a 1-based position.
func (r *AchievementRepo) SetText(position int, text string) (model.Achievement, error) {
	achievements := r.Get()
	if position < 1 || position > len(achievements) {
		return model.Achievement{}, errors.Wrapf(errors.ErrSlotOutOfRange, "slot %d", position)
	}
	achievements[position-1].Text = text
	if err := r.Set(achievements); err != nil {
		return model.Achievement{}, err
	}
	return achievements[position-1], nil
}
