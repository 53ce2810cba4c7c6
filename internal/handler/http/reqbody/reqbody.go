// Package reqbody decodes JSON request bodies and writes the matching
// client error when a body cannot be used.
package reqbody

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"inkwell/internal/handler/http/respond"
)

var (
	// ErrMalformed is reported for bodies that are not valid JSON for the target.
	ErrMalformed = errors.New("malformed JSON request body")
	// ErrTooLarge is reported when the body exceeds the server's size limit.
	ErrTooLarge = errors.New("request body too large")
)

// Decode reads r.Body into v. An empty body leaves v untouched.
// On failure it writes 400 (malformed) or 413 (too large) and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.Error(w, http.StatusRequestEntityTooLarge, ErrTooLarge)
		return false
	}
	respond.Error(w, http.StatusBadRequest, ErrMalformed)
	return false
}
