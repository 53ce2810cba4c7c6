package post_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/entity"
	"inkwell/internal/handler/http/post"
	"inkwell/internal/repository"
	postUC "inkwell/internal/usecase/post"
)

/* ───────── stub ───────── */

type memRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Post
	nextID int64
	err    error
}

func newRepo() *memRepo {
	return &memRepo{data: map[int64]*entity.Post{}, nextID: 1}
}

func (m *memRepo) Create(_ context.Context, f repository.PostFields, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if f.Title == nil || f.Content == nil || f.Author == nil {
		return 0, errors.New("NOT NULL constraint failed: posts.title")
	}
	id := m.nextID
	m.nextID++
	m.data[id] = &entity.Post{ID: id, Title: *f.Title, Content: *f.Content, Author: *f.Author, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (m *memRepo) List(_ context.Context) ([]*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*entity.Post{}
	for id := m.nextID - 1; id > 0; id-- {
		if p, ok := m.data[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) Update(_ context.Context, id int64, f repository.PostFields, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	p, ok := m.data[id]
	if !ok {
		return false, nil
	}
	if f.Title == nil || f.Content == nil || f.Author == nil {
		return false, errors.New("NOT NULL constraint failed: posts.title")
	}
	p.Title, p.Content, p.Author, p.UpdatedAt = *f.Title, *f.Content, *f.Author, now
	return true, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.data[id]; !ok {
		return false, nil
	}
	delete(m.data, id)
	return true, nil
}

/* ───────── helpers ───────── */

var t0 = time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)

func newServer(repo *memRepo) http.Handler {
	var tick int
	svc := postUC.Service{Repo: repo, Now: func() time.Time {
		tick++
		return t0.Add(time.Duration(tick) * time.Second)
	}}
	mux := http.NewServeMux()
	post.Register(mux, svc)
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

const samplePost = `{"title":"Hello","content":"World","author":"Ada"}`

/* ───────── create ───────── */

func TestCreate_Success(t *testing.T) {
	repo := newRepo()
	h := newServer(repo)

	rr := do(t, h, http.MethodPost, "/posts", samplePost)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decodeMap(t, rr)
	assert.Equal(t, "Blog post created successfully", body["message"])
	assert.Equal(t, float64(1), body["postId"])

	stored := repo.data[1]
	require.NotNil(t, stored)
	assert.Equal(t, "Hello", stored.Title)
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestCreate_EmptyStringsAccepted(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodPost, "/posts", `{"title":"","content":"","author":""}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreate_MissingFieldIsStorageError(t *testing.T) {
	repo := newRepo()
	rr := do(t, newServer(repo), http.MethodPost, "/posts", `{"title":"only"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "NOT NULL constraint failed: posts.title", decodeMap(t, rr)["error"])
	assert.Empty(t, repo.data)
}

func TestCreate_EmptyBodyIsStorageError(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodPost, "/posts", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCreate_MalformedJSON(t *testing.T) {
	repo := newRepo()
	rr := do(t, newServer(repo), http.MethodPost, "/posts", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeMap(t, rr), "error")
	assert.Empty(t, repo.data)
}

func TestCreate_LegacyPath(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodPost, "/api/blogs", samplePost)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

/* ───────── list ───────── */

func TestList_EmptyIsArray(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestList_NewestFirst(t *testing.T) {
	h := newServer(newRepo())
	for _, title := range []string{"first", "second", "third"} {
		require.Equal(t, http.StatusCreated,
			do(t, h, http.MethodPost, "/posts", `{"title":"`+title+`","content":"c","author":"a"}`).Code)
	}

	rr := do(t, h, http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []post.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestList_StorageError(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("database is locked")

	rr := do(t, newServer(repo), http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "database is locked", decodeMap(t, rr)["error"])
}

/* ───────── get ───────── */

func TestGet(t *testing.T) {
	h := newServer(newRepo())
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/posts", samplePost).Code)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"existing", "/posts/1", http.StatusOK},
		{"legacy path", "/api/blogs/1", http.StatusOK},
		{"missing", "/posts/99", http.StatusNotFound},
		{"non numeric", "/posts/abc", http.StatusNotFound},
		{"zero", "/posts/0", http.StatusNotFound},
		{"negative", "/posts/-1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, tt.path, "")
			require.Equal(t, tt.code, rr.Code)

			if tt.code == http.StatusNotFound {
				assert.Equal(t, "Blog post not found", decodeMap(t, rr)["message"])
				return
			}
			var dto post.DTO
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
			assert.Equal(t, int64(1), dto.ID)
			assert.Equal(t, "Ada", dto.Author)
			assert.Equal(t, t0.Add(time.Second), dto.CreatedAt)
		})
	}
}

/* ───────── update ───────── */

func TestUpdate_Success(t *testing.T) {
	repo := newRepo()
	h := newServer(repo)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/posts", samplePost).Code)
	created := repo.data[1].CreatedAt

	rr := do(t, h, http.MethodPut, "/posts/1", `{"title":"New","content":"Body","author":"Grace"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Blog post updated successfully", decodeMap(t, rr)["message"])
	p := repo.data[1]
	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "Grace", p.Author)
	assert.Equal(t, created, p.CreatedAt)
	assert.True(t, p.UpdatedAt.After(created))
}

func TestUpdate_NotFound(t *testing.T) {
	for _, path := range []string{"/posts/42", "/posts/abc"} {
		rr := do(t, newServer(newRepo()), http.MethodPut, path, samplePost)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, "Blog post not found", decodeMap(t, rr)["message"], path)
	}
}

func TestUpdate_MissingFieldIsStorageError(t *testing.T) {
	repo := newRepo()
	h := newServer(repo)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/posts", samplePost).Code)

	rr := do(t, h, http.MethodPut, "/posts/1", `{"title":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Hello", repo.data[1].Title)
}

func TestUpdate_MalformedJSON(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodPut, "/posts/1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

/* ───────── delete ───────── */

func TestDelete(t *testing.T) {
	repo := newRepo()
	h := newServer(repo)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/posts", samplePost).Code)

	rr := do(t, h, http.MethodDelete, "/posts/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Blog post deleted successfully", decodeMap(t, rr)["message"])

	rr = do(t, h, http.MethodDelete, "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDelete_StorageError(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("disk I/O error")

	rr := do(t, newServer(repo), http.MethodDelete, "/posts/1", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "disk I/O error", decodeMap(t, rr)["error"])
}

func TestUnsupportedMethod(t *testing.T) {
	rr := do(t, newServer(newRepo()), http.MethodPatch, "/posts/1", samplePost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
