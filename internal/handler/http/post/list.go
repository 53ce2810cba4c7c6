package post

import (
	"net/http"

	"inkwell/internal/handler/http/respond"
	postUC "inkwell/internal/usecase/post"
)

type ListHandler struct{ Svc postUC.Service }

// ServeHTTP lists posts
// @Summary      List posts
// @Description  Returns every post, newest first
// @Tags         posts
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /posts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.StorageError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
