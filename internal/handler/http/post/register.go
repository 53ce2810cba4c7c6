package post

import (
	"net/http"

	postUC "inkwell/internal/usecase/post"
)

// Register registers the post handlers on mux, under both /posts and the
// legacy /api/blogs prefix.
func Register(mux *http.ServeMux, svc postUC.Service) {
	for _, prefix := range []string{"/posts", "/api/blogs"} {
		mux.Handle("POST   "+prefix, CreateHandler{svc})
		mux.Handle("GET    "+prefix, ListHandler{svc})
		mux.Handle("GET    "+prefix+"/{id}", GetHandler{svc})
		mux.Handle("PUT    "+prefix+"/{id}", UpdateHandler{svc})
		mux.Handle("DELETE "+prefix+"/{id}", DeleteHandler{svc})
	}
}
