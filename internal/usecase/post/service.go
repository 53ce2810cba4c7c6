package post

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"inkwell/internal/domain/entity"
	"inkwell/internal/observability/metrics"
	"inkwell/internal/observability/tracing"
	"inkwell/internal/repository"
)

// Input carries the client-supplied fields of a create or update request.
// Nil fields are passed through to storage untouched.
type Input struct {
	Title   *string
	Content *string
	Author  *string
}

func (in Input) fields() repository.PostFields {
	return repository.PostFields{Title: in.Title, Content: in.Content, Author: in.Author}
}

// Service provides post management use cases.
// It delegates persistence to the repository and maps absence to ErrPostNotFound.
type Service struct {
	Repo repository.PostRepository
	// Now is the clock used for created_at and updated_at. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores a new post and returns its ID.
// created_at and updated_at are set to the same instant.
func (s *Service) Create(ctx context.Context, in Input) (id int64, err error) {
	ctx, span := start(ctx, "create")
	defer func() { finish(span, "create", err) }()

	id, err = s.Repo.Create(ctx, in.fields(), s.now())
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	span.SetAttributes(attribute.Int64("post.id", id))
	return id, nil
}

// List returns every post, newest first.
func (s *Service) List(ctx context.Context) (posts []*entity.Post, err error) {
	ctx, span := start(ctx, "list")
	defer func() { finish(span, "list", err) }()

	posts, err = s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	span.SetAttributes(attribute.Int("post.count", len(posts)))
	return posts, nil
}

// Get retrieves a single post by its ID.
// Returns ErrInvalidPostID if the ID is not positive.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Get(ctx context.Context, id int64) (post *entity.Post, err error) {
	ctx, span := start(ctx, "get", attribute.Int64("post.id", id))
	defer func() { finish(span, "get", err) }()

	if id <= 0 {
		return nil, ErrInvalidPostID
	}

	post, err = s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update replaces the title, content and author of an existing post and
// refreshes updated_at. created_at is left untouched.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Update(ctx context.Context, id int64, in Input) (err error) {
	ctx, span := start(ctx, "update", attribute.Int64("post.id", id))
	defer func() { finish(span, "update", err) }()

	if id <= 0 {
		return ErrInvalidPostID
	}

	matched, err := s.Repo.Update(ctx, id, in.fields(), s.now())
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if !matched {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post by its ID. Deleting the same ID twice yields
// ErrPostNotFound the second time.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := start(ctx, "delete", attribute.Int64("post.id", id))
	defer func() { finish(span, "delete", err) }()

	if id <= 0 {
		return ErrInvalidPostID
	}

	matched, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if !matched {
		return ErrPostNotFound
	}
	return nil
}

func start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, "post."+op, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, op string, err error) {
	defer span.End()

	switch {
	case err == nil:
		metrics.RecordPostOperation(op, metrics.OutcomeOK)
	case IsNotFound(err):
		metrics.RecordPostOperation(op, metrics.OutcomeNotFound)
	default:
		metrics.RecordPostOperation(op, metrics.OutcomeError)
		tracing.RecordError(span, err)
	}
}
