package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		data           any
		expectedCode   int
		expectedBody   string
		expectedHeader string
	}{
		{
			name:           "success with map",
			code:           http.StatusOK,
			data:           map[string]string{"message": "success"},
			expectedCode:   http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeader: "application/json",
		},
		{
			name:           "success with struct",
			code:           http.StatusCreated,
			data:           struct{ ID int }{ID: 123},
			expectedCode:   http.StatusCreated,
			expectedBody:   `{"ID":123}`,
			expectedHeader: "application/json",
		},
		{
			name:           "success with nil",
			code:           http.StatusNoContent,
			data:           nil,
			expectedCode:   http.StatusNoContent,
			expectedBody:   "",
			expectedHeader: "application/json",
		},
		{
			name:           "empty slice stays an array",
			code:           http.StatusOK,
			data:           []string{},
			expectedCode:   http.StatusOK,
			expectedBody:   `[]`,
			expectedHeader: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.expectedCode {
				t.Errorf("Code = %v, want %v", w.Code, tt.expectedCode)
			}

			if ct := w.Header().Get("Content-Type"); ct != tt.expectedHeader {
				t.Errorf("Content-Type = %v, want %v", ct, tt.expectedHeader)
			}

			body := strings.TrimSpace(w.Body.String())
			if body != tt.expectedBody {
				t.Errorf("Body = %v, want %v", body, tt.expectedBody)
			}
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusOK {
		t.Errorf("Code = %v, want %v", w.Code, http.StatusOK)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusInternalServerError, errors.New("dial postgres://app:hunter2@db:5432/blog"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Code = %v, want 500", w.Code)
	}
	if got := decode(t, w)["error"]; got != "dial postgres://app:****@db:5432/blog" {
		t.Errorf("error = %q", got)
	}
}

func TestMessageHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	Message(w, http.StatusOK, "Blog post updated successfully")
	if got := decode(t, w)["message"]; got != "Blog post updated successfully" {
		t.Errorf("message = %q", got)
	}

	w = httptest.NewRecorder()
	ErrorMessage(w, http.StatusInternalServerError, "Failed to generate suggestions.")
	if got := decode(t, w)["error"]; got != "Failed to generate suggestions." {
		t.Errorf("error = %q", got)
	}
}

func TestStorageError_UsesDriverMessage(t *testing.T) {
	driverErr := errors.New("NOT NULL constraint failed: posts.author")
	err := fmt.Errorf("create post: %w", fmt.Errorf("Create: ExecContext: %w", driverErr))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/posts", nil)
	StorageError(w, r, err)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Code = %v, want 500", w.Code)
	}
	if got := decode(t, w)["error"]; got != driverErr.Error() {
		t.Errorf("error = %q, want %q", got, driverErr.Error())
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("base")
	if got := RootCause(fmt.Errorf("a: %w", fmt.Errorf("b: %w", base))); got != base {
		t.Errorf("RootCause = %v, want base", got)
	}
	if got := RootCause(base); got != base {
		t.Errorf("RootCause(base) = %v", got)
	}
	if RootCause(nil) != nil {
		t.Error("RootCause(nil) must be nil")
	}
}
