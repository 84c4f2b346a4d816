// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches fetched collection payloads in a local SQLite
// database so read commands can run against the last synced catalog
// without the backend. Only the sync command writes it; nothing falls
// back to the cache implicitly.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/herb-atlas/internal/catalog"
)

// Store manages the collection cache database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating the parent
// directory and schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		path TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// SaveAll replaces the cached payloads in one transaction, stamping each
// with the current time.
func (s *Store) SaveAll(ctx context.Context, raw catalog.Raw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO collections (path, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET body=excluded.body, fetched_at=excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for path, body := range raw {
		if _, err := stmt.ExecContext(ctx, path, body, now); err != nil {
			return fmt.Errorf("caching %s: %w", path, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns every cached payload and the oldest fetch time, for
// staleness warnings. An empty cache returns an empty Raw and a zero
// time, not an error; catalog.Build rejects incomplete caches.
func (s *Store) LoadAll(ctx context.Context) (catalog.Raw, time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, body, fetched_at FROM collections`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading cache: %w", err)
	}
	defer rows.Close()

	raw := make(catalog.Raw)
	var oldest time.Time
	for rows.Next() {
		var (
			path      string
			body      []byte
			fetchedAt string
		)
		if err := rows.Scan(&path, &body, &fetchedAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("scanning cache row: %w", err)
		}
		raw[path] = body

		t, err := time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			continue
		}
		if oldest.IsZero() || t.Before(oldest) {
			oldest = t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("reading cache: %w", err)
	}

	return raw, oldest, nil
}
