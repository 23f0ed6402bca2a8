// Package database opens and initializes the program's SQLite store.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DBControl holds the opened database handle.
type DBControl struct {
	DB *sql.DB
}

// InitDB opens (or creates) the database at the given path and ensures
// the tables exist.
func InitDB(path string) (*DBControl, error) {
	var dc DBControl

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}
	dc.DB = db

	if err := dc.initTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return &dc, nil
}

// Close closes the underlying database.
func (dc *DBControl) Close() error {
	return dc.DB.Close()
}

// initTables initializes the SQL tables.
func (dc *DBControl) initTables() error {
	tx, err := dc.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := initDownloadsTable(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func initDownloadsTable(tx *sql.Tx) error {
	const query = `
	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		format_spec TEXT NOT NULL DEFAULT '',
		path TEXT NOT NULL DEFAULT '',
		size_bytes INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create downloads table: %w", err)
	}
	return nil
}
