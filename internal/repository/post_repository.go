// Package repository declares the persistence ports used by the use cases.
package repository

import (
	"context"
	"database/sql"
	"time"

	"inkwell/internal/domain/entity"
)

// PostFields holds the client-supplied, mutable columns of a post.
// A nil field is written as SQL NULL and rejected by the NOT NULL
// constraint, so a missing field surfaces as a storage error.
type PostFields struct {
	Title   *string
	Content *string
	Author  *string
}

// PostRepository is the post store. Every method is a single SQL statement.
type PostRepository interface {
	// Create inserts a post with created_at = updated_at = now and returns its id.
	Create(ctx context.Context, fields PostFields, now time.Time) (int64, error)
	// List returns all posts, newest first. An empty table yields an empty slice.
	List(ctx context.Context) ([]*entity.Post, error)
	// Get returns (nil, nil) if no row has the given id.
	Get(ctx context.Context, id int64) (*entity.Post, error)
	// Update replaces title, content and author and sets updated_at = now.
	// matched is false when no row has the given id.
	Update(ctx context.Context, id int64, fields PostFields, now time.Time) (matched bool, err error)
	// Delete removes the row. matched is false when no row has the given id.
	Delete(ctx context.Context, id int64) (matched bool, err error)
}

// DBTX is the subset of *sql.DB the SQL adapters need.
// Both *sql.DB and the circuit-breaker wrapper satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
