// Package cache persists per-file check results to SQLite so unchanged
// files are not re-checked. A cached entry is valid only while both the
// file's AST dump and the effective settings are unchanged.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/abramin/annolint/internal/checks"
)

// schema contains the SQL statements to create the cache schema.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    created_at    TEXT NOT NULL,
    files_checked INTEGER NOT NULL,
    files_cached  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS files (
    path          TEXT PRIMARY KEY,
    file_hash     INTEGER NOT NULL,
    settings_hash INTEGER NOT NULL,
    messages      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_files_hashes ON files(file_hash, settings_hash);
`

// Cache is a per-project result cache.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens the cache database at .annolint/cache.db under the
// given project directory.
func Open(projectDir string) (*Cache, error) {
	cacheDir := filepath.Join(projectDir, ".annolint")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("creating .annolint directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "cache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// DBPath returns the path to the cache database file.
func (c *Cache) DBPath() string {
	return c.dbPath
}

// Get returns the cached messages for a file, if the entry matches both
// hashes. The second return is false on any miss.
func (c *Cache) Get(path string, fileHash, settingsHash uint64) ([]checks.Message, bool, error) {
	var raw string
	err := c.db.QueryRow(`
		SELECT messages FROM files
		WHERE path = ? AND file_hash = ? AND settings_hash = ?
	`, path, int64(fileHash), int64(settingsHash)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	var messages []checks.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		// A corrupt entry is a miss; it gets overwritten on Put.
		return nil, false, nil
	}
	return messages, true, nil
}

// Put stores a file's messages, replacing any previous entry for the path.
func (c *Cache) Put(path string, fileHash, settingsHash uint64, messages []checks.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO files (path, file_hash, settings_hash, messages)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			file_hash = excluded.file_hash,
			settings_hash = excluded.settings_hash,
			messages = excluded.messages
	`, path, int64(fileHash), int64(settingsHash), string(raw))
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// RecordRun logs a completed run and returns its ID.
func (c *Cache) RecordRun(filesChecked, filesCached int) (string, error) {
	id := uuid.NewString()
	_, err := c.db.Exec(`
		INSERT INTO runs (id, created_at, files_checked, files_cached)
		VALUES (?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339), filesChecked, filesCached)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// Clear removes all cached data.
func (c *Cache) Clear() error {
	for _, table := range []string{"files", "runs"} {
		if _, err := c.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}
	}
	return nil
}
