// Package drafts persists restaurant form records under a key, so a form can be
// restored on the next start and saved after every change.
package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easylandingweb/easylanding/internal/db"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// DefaultKey is the key the form state is stored under when none is given.
const DefaultKey = "restaurant-data"

// ErrNotFound is returned when no draft exists for a key.
var ErrNotFound = errors.New("draft not found")

// Draft is a stored record with its bookkeeping.
type Draft struct {
	ID        string            `json:"id"`
	Key       string            `json:"key"`
	Record    restaurant.Record `json:"record"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Summary is a draft without its record, for listings.
type Summary struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store provides CRUD operations for drafts.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts or replaces the record stored under key.
func (s *Store) Save(ctx context.Context, key string, rec restaurant.Record) (*Draft, error) {
	if key == "" {
		key = DefaultKey
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (key, id, record) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			record = excluded.record,
			updated_at = datetime('now')`,
		key, uuid.New().String(), string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("saving draft %s: %w", key, err)
	}
	return s.Load(ctx, key)
}

// Load returns the draft stored under key, or ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) (*Draft, error) {
	if key == "" {
		key = DefaultKey
	}
	row := s.db.QueryRowContext(ctx,
		"SELECT id, key, record, created_at, updated_at FROM drafts WHERE key = ?", key)

	var (
		d                Draft
		data             string
		created, updated string
	)
	if err := row.Scan(&d.ID, &d.Key, &data, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("loading draft %s: %w", key, err)
	}

	rec := restaurant.New()
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("decoding draft %s: %w", key, err)
	}
	d.Record = rec
	d.CreatedAt = parseTime(created)
	d.UpdatedAt = parseTime(updated)
	return &d, nil
}

// List returns a summary of every draft, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, json_extract(record, '$.nom'), updated_at
		FROM drafts ORDER BY updated_at DESC, key`)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var (
			sum     Summary
			name    sql.NullString
			updated string
		)
		if err := rows.Scan(&sum.Key, &name, &updated); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		sum.Name = name.String
		sum.UpdatedAt = parseTime(updated)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Delete removes the draft stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM drafts WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting draft %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting draft %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return nil
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
