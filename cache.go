package targa

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Cache stores encoded TGA files keyed by the SHA-1 of the source file and
// the options used to convert it.
type Cache struct {
	db *sql.DB
}

// NewCache opens, creating if necessary, the cache database in file.
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, tga BLOB NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to create schema")
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached TGA for the given source hash and options, or nil
// if there isn't one.
func (c *Cache) Lookup(sha1, options string) ([]byte, error) {
	var b []byte
	switch err := c.db.QueryRow("SELECT tga FROM conversion WHERE sha1 = ? AND options = ?", sha1, options).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, err
	}
}

// Store saves the TGA for the given source hash and options and returns its
// id. If an entry already exists it is kept and its id returned. It is safe
// to call from multiple goroutines with the same key.
func (c *Cache) Store(sha1, options string, b []byte) (int64, error) {
	if _, err := c.db.Exec("INSERT OR IGNORE INTO conversion (sha1, options, tga) VALUES (?, ?, ?)", sha1, options, b); err != nil {
		return 0, errors.Wrap(err, "unable to store conversion")
	}

	var id int64
	if err := c.db.QueryRow("SELECT id FROM conversion WHERE sha1 = ? AND options = ?", sha1, options).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Length returns the number of cached conversions.
func (c *Cache) Length() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
