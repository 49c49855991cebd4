package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/degreeplan/internal/db"
)

// SQLiteSessionValueRepo implements SessionValueRepo using a SQLite database.
type SQLiteSessionValueRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteSessionValueRepo creates a new SQLiteSessionValueRepo.
func NewSQLiteSessionValueRepo(conn db.DBTX) *SQLiteSessionValueRepo {
	return &SQLiteSessionValueRepo{db: conn, now: time.Now}
}

func (r *SQLiteSessionValueRepo) Get(ctx context.Context, key string) (*SessionValue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM session_values WHERE key = ?`, key)

	var v SessionValue
	var updated string
	if err := row.Scan(&v.Key, &v.Value, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session value %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session value: %w", err)
	}
	v.UpdatedAt = parseTime(updated)
	return &v, nil
}

// Set inserts or replaces the value stored under key.
func (r *SQLiteSessionValueRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, r.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting session value %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SQLiteSessionValueRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting session value %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSessionValueRepo) List(ctx context.Context) ([]*SessionValue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM session_values ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing session values: %w", err)
	}
	defer rows.Close()

	var out []*SessionValue
	for rows.Next() {
		var v SessionValue
		var updated string
		if err := rows.Scan(&v.Key, &v.Value, &updated); err != nil {
			return nil, fmt.Errorf("scanning session value: %w", err)
		}
		v.UpdatedAt = parseTime(updated)
		out = append(out, &v)
	}
	return out, rows.Err()
}

// parseTime reads an RFC3339 column. Rows written before updated_at existed
// hold "" and yield the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
