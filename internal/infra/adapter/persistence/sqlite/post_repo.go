// Package sqlite implements the post store on SQLite via mattn/go-sqlite3.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/observability/metrics"
	"inkwell/internal/repository"
)

type PostRepo struct{ db repository.DBTX }

func NewPostRepo(db repository.DBTX) repository.PostRepository {
	return &PostRepo{db: db}
}

func (repo *PostRepo) Create(ctx context.Context, fields repository.PostFields, now time.Time) (id int64, err error) {
	defer observe("create", time.Now(), &err)

	const query = `
INSERT INTO posts (title, content, author, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`
	now = now.UTC()
	res, err := repo.db.ExecContext(ctx, query,
		fields.Title, fields.Content, fields.Author, now, now)
	if err != nil {
		return 0, fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Create: LastInsertId: %w", err)
	}
	return id, nil
}

func (repo *PostRepo) List(ctx context.Context) (posts []*entity.Post, err error) {
	defer observe("list", time.Now(), &err)

	const query = `
SELECT id, title, content, author, created_at, updated_at
FROM posts
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts = make([]*entity.Post, 0, 50)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		posts = append(posts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return posts, nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (post *entity.Post, err error) {
	defer observe("get", time.Now(), &err)

	const query = `
SELECT id, title, content, author, created_at, updated_at
FROM posts
WHERE id = ?
LIMIT 1`
	var p entity.Post
	err = repo.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &p, nil
}

func (repo *PostRepo) Update(ctx context.Context, id int64, fields repository.PostFields, now time.Time) (matched bool, err error) {
	defer observe("update", time.Now(), &err)

	const query = `
UPDATE posts
SET title = ?, content = ?, author = ?, updated_at = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		fields.Title, fields.Content, fields.Author, now.UTC(), id)
	if err != nil {
		return false, fmt.Errorf("Update: ExecContext: %w", err)
	}
	return rowsMatched(res, "Update")
}

func (repo *PostRepo) Delete(ctx context.Context, id int64) (matched bool, err error) {
	defer observe("delete", time.Now(), &err)

	const query = `DELETE FROM posts WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return rowsMatched(res, "Delete")
}

func rowsMatched(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	return n > 0, nil
}

func observe(op string, start time.Time, err *error) {
	metrics.RecordDBQuery(op, time.Since(start), *err)
}
