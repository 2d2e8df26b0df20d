// Package cache provides SQLite-backed content-addressed caching of
// rendered translation units (C11): memoization keyed by the SHA-256 of
// a file's bytes together with the syntax query source, never a mtime or
// a filesystem watch.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache manages the render-cache SQLite database.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database at path, initializing its
// schema if new.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &Cache{db: db, dbPath: path}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Key computes the content-address for a translation unit: the SHA-256
// of its source bytes concatenated with the query source that produced
// the matches in it. A change to either the file or the query invalidates
// the entry.
func Key(source, querySource []byte) string {
	h := sha256.New()
	h.Write(source)
	h.Write([]byte{0})
	h.Write(querySource)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached render for key, if present.
func (c *Cache) Get(key string) (render []byte, ok bool, err error) {
	row := c.db.QueryRow("SELECT render FROM renders WHERE key = ?", key)
	err = row.Scan(&render)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query render cache: %w", err)
	}
	return render, true, nil
}

// Put stores render under key, overwriting any previous entry.
func (c *Cache) Put(key string, render []byte) error {
	_, err := c.db.Exec(
		"INSERT INTO renders (key, render) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET render = excluded.render",
		key, render,
	)
	if err != nil {
		return fmt.Errorf("store render cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM renders")
	if err != nil {
		return fmt.Errorf("clear render cache: %w", err)
	}
	return nil
}
