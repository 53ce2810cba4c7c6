package post_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/entity"
	"inkwell/internal/repository"
	postUC "inkwell/internal/usecase/post"
)

/* ───────── stub ───────── */

var errNotNull = errors.New("NOT NULL constraint failed")

// minimal in-memory PostRepository that mimics the SQL constraints
type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Post
	nextID int64
	err    error // forced error for every call
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Post{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, f repository.PostFields, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if f.Title == nil || f.Content == nil || f.Author == nil {
		return 0, errNotNull
	}
	id := s.nextID
	s.nextID++
	s.data[id] = &entity.Post{
		ID: id, Title: *f.Title, Content: *f.Content, Author: *f.Author,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Post, 0, len(s.data))
	for _, p := range s.data {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) Update(_ context.Context, id int64, f repository.PostFields, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	p, ok := s.data[id]
	if !ok {
		return false, nil
	}
	if f.Title == nil || f.Content == nil || f.Author == nil {
		return false, errNotNull
	}
	p.Title, p.Content, p.Author, p.UpdatedAt = *f.Title, *f.Content, *f.Author, now
	return true, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[id]
	delete(s.data, id)
	return ok, nil
}

/* ───────── helpers ───────── */

func str(s string) *string { return &s }

func input(title, content, author string) postUC.Input {
	return postUC.Input{Title: str(title), Content: str(content), Author: str(author)}
}

// clock returns a Now func that advances one second per call.
func clock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newService() (*postUC.Service, *stubRepo) {
	repo := newStub()
	return &postUC.Service{
		Repo: repo,
		Now:  clock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, repo
}

/* ───────── tests ───────── */

func TestService_CreateThenGet(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, err := svc.Create(ctx, input("Hello", "World", "Ana"))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Content)
	assert.Equal(t, "Ana", got.Author)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestService_Create_EmptyStringsAllowed(t *testing.T) {
	svc, _ := newService()

	id, err := svc.Create(context.Background(), input("", "", ""))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, got.Title)
}

func TestService_Create_MissingFieldIsStorageError(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), postUC.Input{Title: str("T"), Content: str("C")})
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotNull)
	assert.False(t, postUC.IsNotFound(err))
}

func TestService_List_NewestFirst(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, input(title, "c", "a"))
		require.NoError(t, err)
	}

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "first", posts[2].Title)
}

func TestService_List_Empty(t *testing.T) {
	svc, _ := newService()

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestService_Update(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, err := svc.Create(ctx, input("T", "C", "A"))
	require.NoError(t, err)
	before, err := svc.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, input("T2", "C2", "A2")))

	after, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "T2", after.Title)
	assert.Equal(t, "C2", after.Content)
	assert.Equal(t, "A2", after.Author)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestService_Update_Idempotent(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, err := svc.Create(ctx, input("T", "C", "A"))
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, input("X", "Y", "Z")))
	first, _ := svc.Get(ctx, id)
	require.NoError(t, svc.Update(ctx, id, input("X", "Y", "Z")))
	second, _ := svc.Get(ctx, id)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Author, second.Author)
}

func TestService_NotFound(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, postUC.ErrPostNotFound)

	err = svc.Update(ctx, 999, input("T", "C", "A"))
	assert.ErrorIs(t, err, postUC.ErrPostNotFound)

	err = svc.Delete(ctx, 999)
	assert.ErrorIs(t, err, postUC.ErrPostNotFound)
}

func TestService_InvalidID(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	repo.err = errors.New("repository must not be called")

	for _, id := range []int64{0, -1} {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, postUC.ErrInvalidPostID)
		assert.True(t, postUC.IsNotFound(err))

		assert.ErrorIs(t, svc.Update(ctx, id, input("T", "C", "A")), postUC.ErrInvalidPostID)
		assert.ErrorIs(t, svc.Delete(ctx, id), postUC.ErrInvalidPostID)
	}
}

func TestService_DeleteTwice(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, err := svc.Create(ctx, input("T", "C", "A"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), postUC.ErrPostNotFound)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, postUC.ErrPostNotFound)
	assert.ErrorIs(t, svc.Update(ctx, id, input("T", "C", "A")), postUC.ErrPostNotFound)
}

func TestService_StorageErrorsAreWrapped(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	repo.err = errors.New("database is locked")

	_, err := svc.Create(ctx, input("T", "C", "A"))
	assert.ErrorIs(t, err, repo.err)
	assert.Contains(t, err.Error(), "create post")

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, repo.err)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, repo.err)
	assert.False(t, postUC.IsNotFound(err))

	assert.ErrorIs(t, svc.Update(ctx, 1, input("T", "C", "A")), repo.err)
	assert.ErrorIs(t, svc.Delete(ctx, 1), repo.err)
}

func TestService_DefaultClock(t *testing.T) {
	repo := newStub()
	svc := &postUC.Service{Repo: repo}

	before := time.Now()
	id, err := svc.Create(context.Background(), input("T", "C", "A"))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.Before(before))
}

func TestService_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	const n = 20
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.Create(ctx, input("T", "C", "A"))
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
