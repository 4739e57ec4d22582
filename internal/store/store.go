// Package store handles SQLite persistence of drafts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/verte-zerg/textlens/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrNotFound is returned when no draft matches an ID or prefix.
	ErrNotFound = errors.New("draft not found")
	// ErrAmbiguous is returned when a prefix matches more than one draft.
	ErrAmbiguous = errors.New("draft prefix is ambiguous")
)

// Fixed-width UTC timestamps sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const maxTitleRunes = 48

// Store wraps SQLite access for drafts.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS drafts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveDraft inserts a new draft when d.ID is empty and updates it otherwise.
// An empty title is derived from the body.
func (s *Store) SaveDraft(ctx context.Context, d model.Draft) (model.Draft, error) {
	now := s.now().UTC()
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.CreatedAt = now
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if strings.TrimSpace(d.Title) == "" {
		d.Title = DraftTitle(d.Body)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (id, title, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		d.ID, d.Title, d.Body, d.CreatedAt.UTC().Format(timeLayout), d.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return model.Draft{}, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// GetDraft loads a draft by full ID or unique ID prefix.
func (s *Store) GetDraft(ctx context.Context, idOrPrefix string) (model.Draft, error) {
	idOrPrefix = strings.ToLower(strings.TrimSpace(idOrPrefix))
	if idOrPrefix == "" {
		return model.Draft{}, ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, created_at, updated_at
		 FROM drafts
		 WHERE substr(id, 1, ?) = ?
		 ORDER BY id
		 LIMIT 2`,
		utf8.RuneCountInString(idOrPrefix), idOrPrefix,
	)
	if err != nil {
		return model.Draft{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return model.Draft{}, err
	}
	switch len(drafts) {
	case 0:
		return model.Draft{}, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return drafts[0], nil
	default:
		for _, d := range drafts {
			if d.ID == idOrPrefix {
				return d, nil
			}
		}
		return model.Draft{}, fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
	}
}

// ListDrafts returns drafts, most recently updated first. limit <= 0 lists all.
func (s *Store) ListDrafts(ctx context.Context, limit int) ([]model.Draft, error) {
	query := `SELECT id, title, body, created_at, updated_at
		FROM drafts
		ORDER BY updated_at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	return scanDrafts(rows)
}

// DeleteDraft removes the draft matching idOrPrefix and returns its full ID.
func (s *Store) DeleteDraft(ctx context.Context, idOrPrefix string) (string, error) {
	d, err := s.GetDraft(ctx, idOrPrefix)
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, d.ID); err != nil {
		return "", fmt.Errorf("failed to delete draft: %w", err)
	}
	return d.ID, nil
}

func scanDrafts(rows *sql.Rows) ([]model.Draft, error) {
	var drafts []model.Draft
	for rows.Next() {
		var (
			d                  model.Draft
			created, updatedAt string
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &created, &updatedAt); err != nil {
			return nil, err
		}
		var err error
		if d.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, err
		}
		if d.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drafts, nil
}

// DraftTitle derives a title from the first non-blank line of body.
func DraftTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > maxTitleRunes {
			runes := []rune(line)
			line = strings.TrimSpace(string(runes[:maxTitleRunes-1])) + "…"
		}
		return line
	}
	return "Untitled"
}
