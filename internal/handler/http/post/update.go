package post

import (
	"net/http"

	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/reqbody"
	"inkwell/internal/handler/http/respond"
	postUC "inkwell/internal/usecase/post"
)

type UpdateHandler struct{ Svc postUC.Service }

// ServeHTTP replaces a post
// @Summary      Update post
// @Description  Replaces title, content and author and refreshes updated_at
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id   path int          true "Post ID"
// @Param        post body WriteRequest true "Post"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse   "Malformed JSON"
// @Failure      404 {object} MessageResponse "Blog post not found"
// @Failure      413 {object} ErrorResponse   "Body too large"
// @Failure      500 {object} ErrorResponse   "Storage error"
// @Router       /posts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req WriteRequest
	if !reqbody.Decode(w, r, &req) {
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Message(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.Svc.Update(r.Context(), id, req.input()); err != nil {
		writeError(w, r, err)
		return
	}
	respond.Message(w, http.StatusOK, msgUpdated)
}
