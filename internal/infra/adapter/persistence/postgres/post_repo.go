// Package postgres implements the post store on PostgreSQL through the pgx
// stdlib driver. Statements are built with squirrel.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"inkwell/internal/domain/entity"
	"inkwell/internal/observability/metrics"
	"inkwell/internal/repository"
)

const postsTable = "posts"

var postColumns = []string{"id", "title", "content", "author", "created_at", "updated_at"}

// ErrBuildingQuery is returned when squirrel fails to render a statement.
var ErrBuildingQuery = errors.New("error building sql-query")

type PostRepo struct {
	db   repository.DBTX
	psql sq.StatementBuilderType
}

func NewPostRepo(db repository.DBTX) repository.PostRepository {
	return &PostRepo{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (repo *PostRepo) Create(ctx context.Context, fields repository.PostFields, now time.Time) (id int64, err error) {
	defer observe("create", time.Now(), &err)

	now = now.UTC()
	query, args, err := repo.psql.
		Insert(postsTable).
		Columns("title", "content", "author", "created_at", "updated_at").
		Values(fields.Title, fields.Content, fields.Author, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return id, nil
}

func (repo *PostRepo) List(ctx context.Context) (posts []*entity.Post, err error) {
	defer observe("list", time.Now(), &err)

	query, args, err := repo.psql.
		Select(postColumns...).
		From(postsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
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

	query, args, err := repo.psql.
		Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var p entity.Post
	err = repo.db.QueryRowContext(ctx, query, args...).
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

	query, args, err := repo.psql.
		Update(postsTable).
		Set("title", fields.Title).
		Set("content", fields.Content).
		Set("author", fields.Author).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("Update: ExecContext: %w", err)
	}
	return rowsMatched(res, "Update")
}

func (repo *PostRepo) Delete(ctx context.Context, id int64) (matched bool, err error) {
	defer observe("delete", time.Now(), &err)

	query, args, err := repo.psql.
		Delete(postsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	res, err := repo.db.ExecContext(ctx, query, args...)
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
