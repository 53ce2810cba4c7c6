package post

import (
	"net/http"

	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	postUC "inkwell/internal/usecase/post"
)

type DeleteHandler struct{ Svc postUC.Service }

// ServeHTTP deletes a post
// @Summary      Delete post
// @Description  Removes the post with the given ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} MessageResponse "Blog post not found"
// @Failure      500 {object} ErrorResponse   "Storage error"
// @Router       /posts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Message(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respond.Message(w, http.StatusOK, msgDeleted)
}
