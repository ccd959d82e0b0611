package storage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/model"
)

// AgendaRepo provides operations for the agenda collection.
type AgendaRepo struct {
	slot *Slot[[]model.AgendaItem]
}

// NewAgendaRepo creates a new agenda repository.
func NewAgendaRepo(db *DB) *AgendaRepo {
	return &AgendaRepo{
		slot: NewSlot(db, model.KeyAgenda, model.SeedAgenda, validateAgenda),
	}
}

func validateAgenda(items []model.AgendaItem) error {
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("agenda item %d has no id", i)
		}
	}
	return nil
}

// Get returns a copy of the agenda.
func (r *AgendaRepo) Get() []model.AgendaItem {
	return slices.Clone(r.slot.Get())
}

// Set replaces the whole agenda.
func (r *AgendaRepo) Set(items []model.AgendaItem) error {
	return r.slot.Set(slices.Clone(items))
}

// Reset restores the seed agenda.
func (r *AgendaRepo) Reset() error {
	return r.slot.Reset()
}

// Add appends an item and re-sorts the agenda by start time.
func (r *AgendaRepo) Add(item model.AgendaItem) (model.AgendaItem, error) {
	if item.ID == "" {
		item.ID = model.NewID()
	}
	items := append(r.Get(), item)
	model.SortAgenda(items)
	if err := r.Set(items); err != nil {
		return model.AgendaItem{}, err
	}
	return item, nil
}

// Find returns the item whose id equals or uniquely starts with id.
func (r *AgendaRepo) Find(id string) (model.AgendaItem, error) {
	items := r.Get()
	i, err := findByID(items, id, agendaID, errors.ErrTaskNotFound)
	if err != nil {
		return model.AgendaItem{}, err
	}
	return items[i], nil
}

// SetCompleted marks an item completed or not.
func (r *AgendaRepo) SetCompleted(id string, completed bool) (model.AgendaItem, error) {
	return r.update(id, func(it *model.AgendaItem) {
		it.Completed = completed
	})
}

// ToggleCompleted flips an item's completion.
func (r *AgendaRepo) ToggleCompleted(id string) (model.AgendaItem, error) {
	return r.update(id, func(it *model.AgendaItem) {
		it.Completed = !it.Completed
	})
}

// SetReason records why an item was not achieved.
func (r *AgendaRepo) SetReason(id, reason string) (model.AgendaItem, error) {
	return r.update(id, func(it *model.AgendaItem) {
		it.UnachievedReason = strings.TrimSpace(reason)
	})
}

// Delete removes an item.
func (r *AgendaRepo) Delete(id string) (model.AgendaItem, error) {
	items := r.Get()
	i, err := findByID(items, id, agendaID, errors.ErrTaskNotFound)
	if err != nil {
		return model.AgendaItem{}, err
	}
	removed := items[i]
	if err := r.Set(slices.Delete(items, i, i+1)); err != nil {
		return model.AgendaItem{}, err
	}
	return removed, nil
}

func (r *AgendaRepo) update(id string, fn func(*model.AgendaItem)) (model.AgendaItem, error) {
	items := r.Get()
	i, err := findByID(items, id, agendaID, errors.ErrTaskNotFound)
	if err != nil {
		return model.AgendaItem{}, err
	}
	fn(&items[i])
	if err := r.Set(items); err != nil {
		return model.AgendaItem{}, err
	}
	return items[i], nil
}

func agendaID(it model.AgendaItem) string { return it.ID }

// findByID returns the index of the entry whose id equals id, or else the
// single entry whose id starts with it.
func findByID[T any](items []T, id string, idOf func(T) string, notFound error) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, errors.Wrapf(notFound, "empty id")
	}

	match, matches := -1, 0
	for i, it := range items {
		itemID := idOf(it)
		if itemID == id {
			return i, nil
		}
		if strings.HasPrefix(itemID, id) {
			match = i
			matches++
		}
	}
	switch matches {
	case 0:
		return -1, errors.Wrapf(notFound, "%q", id)
	case 1:
		return match, nil
	default:
		return -1, errors.Wrapf(errors.ErrAmbiguousID, "%q", id)
	}
}
