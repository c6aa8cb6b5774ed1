// store.go - Persistence for adhesion records.
//
// One table, insert-only. The schema is created idempotently at startup;
// there is no migration machinery beyond that.
package server

import (
	"context"
	"database/sql"
	"time"
)

// Adhesion is a stored membership-signup submission.
type Adhesion struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Comment    *string   `json:"comment"`
	Newsletter bool      `json:"newsletter"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAdhesion carries the normalized fields of a submission before
// insert. Comment is nil when absent or empty after trimming.
type NewAdhesion struct {
	Name       string
	Email      string
	Comment    *string
	Newsletter bool
}

// AdhesionStore is the persistence surface the HTTP handlers depend on.
type AdhesionStore interface {
	Insert(ctx context.Context, a NewAdhesion) (*Adhesion, error)
	List(ctx context.Context, page, limit int) ([]Adhesion, int, error)
}

// Store implements AdhesionStore on a pooled Postgres connection.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Pagination bounds for List.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// clampPage floors the page number at 1.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampLimit restricts the page size to [1, maxLimit].
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// EnsureSchema creates the adhesions table if it does not exist. Safe to
// run on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS adhesions (
			id         SERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			email      VARCHAR(255) NOT NULL,
			comment    TEXT,
			newsletter BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// Insert stores a submission and returns the row as persisted, including
// the database-assigned id and created_at.
func (s *Store) Insert(ctx context.Context, a NewAdhesion) (*Adhesion, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO adhesions (name, email, comment, newsletter)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, comment, newsletter, created_at`,
		a.Name, a.Email, a.Comment, a.Newsletter)

	var out Adhesion
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Comment, &out.Newsletter, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of submissions, newest first, plus the total row
// count. Both statements run on a single pooled connection held for the
// duration of the call and released on every path. The count and the
// window are not wrapped in a transaction; an insert landing between
// them can skew total by one, which is acceptable for an admin listing.
func (s *Store) List(ctx context.Context, page, limit int) ([]Adhesion, int, error) {
	page = clampPage(page)
	limit = clampLimit(limit)
	offset := (page - 1) * limit

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	var total int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM adhesions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, email, comment, newsletter, created_at
		FROM adhesions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Adhesion, 0, limit)
	for rows.Next() {
		var a Adhesion
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Comment, &a.Newsletter, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
