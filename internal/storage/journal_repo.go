package storage

import (
	"github.com/manav03panchal/zenith/internal/model"
)

// JournalRepo provides operations for the singleton journal entry.
type JournalRepo struct {
	slot *Slot[model.JournalEntry]
}

// NewJournalRepo creates a new journal repository.
func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{
		slot: NewSlot(db, model.KeyJournal, model.SeedJournal, nil),
	}
}

// Get returns the journal entry.
func (r *JournalRepo) Get() model.JournalEntry {
	return r.slot.Get()
}

// Set overwrites the journal entry.
func (r *JournalRepo) Set(entry model.JournalEntry) error {
	return r.slot.Set(entry)
}

// Reset restores the blank entry.
func (r *JournalRepo) Reset() error {
	return r.slot.Reset()
}
