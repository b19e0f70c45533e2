package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easylandingweb/easylanding/internal/db"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// Store provides access to history entries.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a new history entry. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history_entries (
			id, action, draft_key, restaurant, mode, template,
			size_bytes, sha256, target
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		string(entry.Action),
		entry.DraftKey,
		entry.Restaurant,
		string(entry.Mode),
		entry.Template,
		entry.SizeBytes,
		entry.SHA256,
		entry.Target,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// LogPage records an action on a page rendered from rec.
func (s *Store) LogPage(ctx context.Context, action Action, key string, rec restaurant.Record, html, target string) error {
	entry := Entry{
		Action:     action,
		DraftKey:   key,
		Restaurant: rec.Name,
		Mode:       ModeFor(rec.AIEnabled),
		SizeBytes:  len(html),
		Target:     target,
	}
	if !rec.AIEnabled {
		entry.Template = rec.Template
	}
	if html != "" {
		entry.SHA256 = Checksum(html)
	}
	return s.Log(ctx, entry)
}

// GetByID retrieves a single history entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, action, draft_key, restaurant, mode, template,
			   size_bytes, sha256, target
		FROM history_entries WHERE id = ?`, id)

	return scanInto(row)
}

// QueryFilter controls which history entries are returned by Query.
type QueryFilter struct {
	DraftKey string
	Action   Action
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

// Query returns history entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.DraftKey != "" {
		clauses = append(clauses, "draft_key = ?")
		args = append(args, filter.DraftKey)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, string(filter.Action))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}
	if filter.Until != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, filter.Until.UTC().Format(time.DateTime))
	}

	query := "SELECT id, timestamp, action, draft_key, restaurant, mode, template, size_bytes, sha256, target FROM history_entries"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// DeleteBefore removes all history entries older than the given time.
// Returns the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM history_entries WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old history entries: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Entry, error) {
	var (
		e            Entry
		action, mode string
		ts           string
	)

	err := sc.Scan(
		&e.ID, &ts, &action, &e.DraftKey, &e.Restaurant, &mode, &e.Template,
		&e.SizeBytes, &e.SHA256, &e.Target,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("history entry not found: %w", err)
		}
		return nil, err
	}

	e.Action = Action(action)
	e.Mode = Mode(mode)

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.Timestamp = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		e.Timestamp = t
	}

	return &e, nil
}
