// Package suggestion provides the HTTP handler that asks the configured
// language model for writing suggestions on a draft.
package suggestion

import (
	"context"
	"net/http"

	"inkwell/internal/handler/http/reqbody"
	"inkwell/internal/handler/http/respond"
)

// Suggester produces suggestions for a draft.
type Suggester interface {
	Suggest(ctx context.Context, title, content string) ([]string, error)
}

// Request is the draft sent by the client. Missing fields are treated as empty.
type Request struct {
	Title   string `json:"title" example:"Getting started with Go"`
	Content string `json:"content" example:"Go is a small language..."`
}

// Response wraps the suggestions returned by the model.
type Response struct {
	Suggestions []string `json:"suggestions" example:"Related topic: Error handling,Related topic: Modules,Intro paragraph: ..."`
}

// ErrorResponse is returned when no suggestions could be produced.
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to generate suggestions."`
}

const msgFailed = "Failed to generate suggestions."

type Handler struct{ Svc Suggester }

// ServeHTTP generates suggestions
// @Summary      Generate suggestions
// @Description  Sends the draft to the language model and returns its suggestions
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        draft body Request true "Draft"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse "Malformed JSON"
// @Failure      500 {object} ErrorResponse "Failed to generate suggestions."
// @Router       /suggestions [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if !reqbody.Decode(w, r, &req) {
		return
	}

	out, err := h.Svc.Suggest(r.Context(), req.Title, req.Content)
	if err != nil {
		respond.ErrorMessage(w, http.StatusInternalServerError, msgFailed)
		return
	}
	if out == nil {
		out = []string{}
	}
	respond.JSON(w, http.StatusOK, Response{Suggestions: out})
}

// Register registers the handler under /suggestions and the legacy
// /api/ai-suggestions path.
func Register(mux *http.ServeMux, svc Suggester) {
	mux.Handle("POST   /suggestions", Handler{svc})
	mux.Handle("POST   /api/ai-suggestions", Handler{svc})
}
