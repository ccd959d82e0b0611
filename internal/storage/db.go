// Package storage provides the database layer for Zenith.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/zenith/internal/errors"
)

const (
	// AppName is the application name used for data directories.
	AppName = "zenith"

	// MemoryPath selects an in-memory database when passed as a path.
	MemoryPath = ":memory:"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path under the XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options

	inMemory := opts.InMemory || opts.Path == "" || opts.Path == MemoryPath
	if inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o755); err != nil {
			return nil, errors.NewSystemErrorWithOp("open", "cannot create data directory "+opts.Path, err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}

	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if strings.Contains(err.Error(), "directory lock") {
			return nil, errors.NewSystemErrorWithOp("open", "database is in use", errors.ErrDatabaseLocked)
		}
		return nil, errors.NewSystemErrorWithOp("open", "cannot open database", err)
	}

	d := &DB{db: db}
	if !inMemory {
		d.path = opts.Path
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" for in-memory databases.
func (d *DB) Path() string {
	return d.path
}
