package post

import (
	"net/http"

	"inkwell/internal/handler/http/reqbody"
	"inkwell/internal/handler/http/respond"
	postUC "inkwell/internal/usecase/post"
)

type CreateHandler struct{ Svc postUC.Service }

// ServeHTTP creates a post
// @Summary      Create post
// @Description  Stores a new post. Fields are not validated; storage rejects missing ones.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body WriteRequest true "Post"
// @Success      201 {object} CreatedResponse
// @Failure      400 {object} ErrorResponse "Malformed JSON"
// @Failure      413 {object} ErrorResponse "Body too large"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /posts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req WriteRequest
	if !reqbody.Decode(w, r, &req) {
		return
	}

	id, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		respond.StorageError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, CreatedResponse{Message: msgCreated, PostID: id})
}
