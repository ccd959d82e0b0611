package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNoValue is returned when nothing is stored under a key.
var ErrNoValue = errors.New("no value stored")

// ReadRaw returns a copy of the bytes stored under key.
func (d *DB) ReadRaw(key string) ([]byte, error) {
	var out []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoValue
		}
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	return out, err
}

// WriteRaw replaces the bytes stored under key.
func (d *DB) WriteRaw(key string, data []byte) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), data))
	})
}

// Has reports whether anything is stored under key.
func (d *DB) Has(key string) (bool, error) {
	_, err := d.ReadRaw(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNoValue):
		return false, nil
	default:
		return false, err
	}
}
