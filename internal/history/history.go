// internal/history/history.go
//
// Append-only log of candidate queries, one row per search or sample.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry is one logged query.
type Entry struct {
	SessionID   string    `json:"-"`
	Kind        string    `json:"kind"`
	Constraints string    `json:"constraints"`
	Matches     int       `json:"matches"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store wraps the history database.
type Store struct{ db *sql.DB }

// Open opens dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Record appends e. A zero CreatedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO searches (session_id, kind, constraints, matches, created_at)
        VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.Kind, e.Constraints, e.Matches, e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to limit entries for a session, newest first.
// Default limit is 20 if not specified.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT session_id, kind, constraints, matches, created_at
        FROM searches
        WHERE session_id=?
        ORDER BY id DESC
        LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.SessionID, &e.Kind, &e.Constraints, &e.Matches, &created); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		e.CreatedAt = ts
		out = append(out, e)
	}
	return out, rows.Err()
}
