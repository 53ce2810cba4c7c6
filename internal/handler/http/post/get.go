package post

import (
	"net/http"

	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	postUC "inkwell/internal/usecase/post"
)

type GetHandler struct{ Svc postUC.Service }

// ServeHTTP returns one post
// @Summary      Get post
// @Description  Returns the post with the given ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} DTO
// @Failure      404 {object} MessageResponse "Blog post not found"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /posts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Message(w, http.StatusNotFound, msgNotFound)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

// writeError maps a use case error to 404 or a storage failure.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if postUC.IsNotFound(err) {
		respond.Message(w, http.StatusNotFound, msgNotFound)
		return
	}
	respond.StorageError(w, r, err)
}
