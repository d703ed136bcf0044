// Package index provides an optional SQLite full-text search index
// over parsed chat entries. It is separate from the in-memory store;
// reading an export never touches it.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ccollicutt/chatlog/pkg/parser"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS entries (
    source   TEXT NOT NULL,
    position INTEGER NOT NULL,
    date     TEXT NOT NULL DEFAULT '',
    time     TEXT NOT NULL DEFAULT '',
    sender   TEXT NOT NULL DEFAULT '',
    message  TEXT NOT NULL,
    PRIMARY KEY (source, position)
);

CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
    message,
    content=entries,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS entries_ai AFTER INSERT ON entries BEGIN
    INSERT INTO entries_fts(rowid, message) VALUES (new.rowid, new.message);
END;

CREATE TRIGGER IF NOT EXISTS entries_ad AFTER DELETE ON entries BEGIN
    INSERT INTO entries_fts(entries_fts, rowid, message) VALUES('delete', old.rowid, old.message);
END;

CREATE TRIGGER IF NOT EXISTS entries_au AFTER UPDATE ON entries BEGIN
    INSERT INTO entries_fts(entries_fts, rowid, message) VALUES('delete', old.rowid, old.message);
    INSERT INTO entries_fts(rowid, message) VALUES (new.rowid, new.message);
END;
`

// DB wraps the SQLite index database.
type DB struct {
	db *sql.DB
}

// Open opens the index database at dbPath, creating it and its parent
// directory if necessary.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Reindex replaces all indexed entries for the given source with the
// given entry sequence, in one transaction. Position preserves the
// original entry order.
func (d *DB) Reindex(source string, entries []parser.Entry) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries WHERE source = ?", source); err != nil {
		return err
	}

	for i, e := range entries {
		_, err := tx.Exec(
			"INSERT INTO entries (source, position, date, time, sender, message) VALUES (?, ?, ?, ?, ?, ?)",
			source, i, e.Date, e.Time, e.Sender, e.Message,
		)
		if err != nil {
			return fmt.Errorf("index entry %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// DeleteSource removes all indexed entries for the given source.
func (d *DB) DeleteSource(source string) error {
	_, err := d.db.Exec("DELETE FROM entries WHERE source = ?", source)
	return err
}

// EntryCount returns the number of indexed entries across all sources.
func (d *DB) EntryCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}

// SourceCount returns the number of distinct indexed sources.
func (d *DB) SourceCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(DISTINCT source) FROM entries").Scan(&n)
	return n, err
}
