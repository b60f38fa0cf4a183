// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists generated summaries and scraped abstracts in a
// SQLite database so repeated queries do not call remote services again.
// Graphs and layouts are never cached; they are rebuilt per request.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the cache database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the cache database at path. Use ":memory:" for a
// private in-memory cache.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating cache directory: %w", err)
			}
		}
		dsn = path + "?_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			key TEXT PRIMARY KEY,
			model TEXT NOT NULL,
			summary TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS abstracts (
			url TEXT PRIMARY KEY,
			abstract TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SummaryKey derives the cache key for a model and input text.
func SummaryKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// Summary returns the cached summary for key.
func (s *Store) Summary(ctx context.Context, key string) (string, bool, error) {
	var out string
	err := s.db.QueryRowContext(ctx, `SELECT summary FROM summaries WHERE key = ?`, key).Scan(&out)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading summary: %w", err)
	}
	return out, true, nil
}

// PutSummary stores or replaces a summary.
func (s *Store) PutSummary(ctx context.Context, key, model, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO summaries (key, model, summary, created_at) VALUES (?, ?, ?, ?)`,
		key, model, summary, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Abstract returns the cached abstract for url. An empty cached abstract
// is a hit: the page was fetched and had none.
func (s *Store) Abstract(ctx context.Context, url string) (string, bool, error) {
	var out string
	err := s.db.QueryRowContext(ctx, `SELECT abstract FROM abstracts WHERE url = ?`, url).Scan(&out)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading abstract: %w", err)
	}
	return out, true, nil
}

// PutAbstract stores or replaces an abstract.
func (s *Store) PutAbstract(ctx context.Context, url, abstract string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO abstracts (url, abstract, fetched_at) VALUES (?, ?, ?)`,
		url, abstract, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing abstract: %w", err)
	}
	return nil
}

// Counts reports how many entries each table holds.
func (s *Store) Counts(ctx context.Context) (summaries, abstracts int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM summaries`).Scan(&summaries); err != nil {
		return 0, 0, fmt.Errorf("counting summaries: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM abstracts`).Scan(&abstracts); err != nil {
		return 0, 0, fmt.Errorf("counting abstracts: %w", err)
	}
	return summaries, abstracts, nil
}

// Purge deletes entries older than maxAge. A zero maxAge deletes everything.
func (s *Store) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-maxAge).Format(time.RFC3339)
	if maxAge == 0 {
		cutoff = "9999"
	}
	var total int64
	for _, q := range []string{
		`DELETE FROM summaries WHERE created_at < ?`,
		`DELETE FROM abstracts WHERE fetched_at < ?`,
	} {
		res, err := s.db.ExecContext(ctx, q, cutoff)
		if err != nil {
			return total, fmt.Errorf("purging cache: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
