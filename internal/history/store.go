// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of acquisition attempts in SQLite so an
// operator can review what a replay fetched, skipped, or failed on.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mjoshi/libshelf/pkg/types"
)

const dbFile = "history.db"

// Attempt statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Attempt is one recorded acquisition attempt.
type Attempt struct {
	ID        int64
	Query     string
	Title     string
	Author    string
	Pages     int
	Size      string
	FileType  string
	DestPath  string
	Status    string
	Error     string
	CreatedAt time.Time
}

// Store manages the acquisition history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at cfg.Dir/history.db,
// creating the directory and schema if they do not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS acquisitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			title TEXT,
			author TEXT,
			pages INTEGER,
			size TEXT,
			file_type TEXT,
			dest_path TEXT,
			status TEXT NOT NULL,
			error TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_acquisitions_created_at ON acquisitions(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_acquisitions_status ON acquisitions(status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one attempt. A zero CreatedAt is stamped with the current
// time.
func (s *Store) Record(ctx context.Context, a Attempt) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO acquisitions
			(query, title, author, pages, size, file_type, dest_path, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Query, a.Title, a.Author, a.Pages, a.Size, a.FileType, a.DestPath,
		a.Status, a.Error, created.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}
	return nil
}

// List returns the most recent attempts, newest first. When failedOnly is
// set only failed attempts are returned. A non-positive limit defaults
// to 20.
func (s *Store) List(ctx context.Context, limit int, failedOnly bool) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	q := `SELECT id, query, title, author, pages, size, file_type, dest_path, status, error, created_at
		FROM acquisitions`
	args := []any{}
	if failedOnly {
		q += ` WHERE status = ?`
		args = append(args, StatusFailed)
	}
	q += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var created string
		if err := rows.Scan(&a.ID, &a.Query, &a.Title, &a.Author, &a.Pages, &a.Size,
			&a.FileType, &a.DestPath, &a.Status, &a.Error, &created); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			a.CreatedAt = t
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading attempts: %w", err)
	}
	return attempts, nil
}
