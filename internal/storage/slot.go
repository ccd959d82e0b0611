package storage

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/manav03panchal/zenith/internal/logging"
)

// Validator checks that a decoded slot value has the expected shape.
type Validator[T any] func(T) error

// ReadSlot returns the value stored under key. A missing key yields fallback,
// which is persisted immediately. Undecodable or invalid data yields fallback
// without touching the stored bytes; the next write replaces them. ReadSlot
// never fails: problems are logged.
func ReadSlot[T any](db *DB, key string, fallback T, validate Validator[T]) T {
	data, err := db.ReadRaw(key)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			logging.Warn("slot read failed, using default",
				logging.KeySlot, key, logging.KeyError, err)
			return fallback
		}
		if err := WriteSlot(db, key, fallback); err != nil {
			logging.Warn("cannot persist slot default",
				logging.KeySlot, key, logging.KeyError, err)
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		logging.Warn("slot data is corrupt, using default",
			logging.KeySlot, key, logging.KeyError, err)
		return fallback
	}
	if validate != nil {
		if err := validate(value); err != nil {
			logging.Warn("slot data has unexpected shape, using default",
				logging.KeySlot, key, logging.KeyError, err)
			return fallback
		}
	}
	return value
}

// WriteSlot serializes value and stores it under key, replacing any prior value.
func WriteSlot[T any](db *DB, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return db.WriteRaw(key, data)
}

// Slot is a single named persisted value. It is read from the database on
// first use and kept in memory; every Set writes through.
type Slot[T any] struct {
	db       *DB
	key      string
	fallback func() T
	validate Validator[T]

	mu     sync.RWMutex
	value  T
	loaded bool
}

// NewSlot creates a slot for key. fallback builds the default value.
func NewSlot[T any](db *DB, key string, fallback func() T, validate Validator[T]) *Slot[T] {
	return &Slot[T]{
		db:       db,
		key:      key,
		fallback: fallback,
		validate: validate,
	}
}

// Key returns the slot's database key.
func (s *Slot[T]) Key() string {
	return s.key
}

// Get returns the current value.
func (s *Slot[T]) Get() T {
	s.mu.RLock()
	if s.loaded {
		v := s.value
		s.mu.RUnlock()
		return v
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.value = ReadSlot(s.db, s.key, s.fallback(), s.validate)
		s.loaded = true
	}
	return s.value
}

// Set replaces the value and persists it. On a write error the in-memory
// value is left unchanged.
func (s *Slot[T]) Set(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := WriteSlot(s.db, s.key, value); err != nil {
		logging.Error("slot write failed", logging.KeySlot, s.key, logging.KeyError, err)
		return err
	}
	s.value = value
	s.loaded = true
	return nil
}

// Reset restores the default value and persists it.
func (s *Slot[T]) Reset() error {
	return s.Set(s.fallback())
}
