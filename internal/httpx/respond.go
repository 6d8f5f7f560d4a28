package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
)

const msgInternal = "internal server error"

// envelope is the body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, envelope{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, data any, n int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Total: &n})
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, envelope{Success: false, Message: message})
}

// writeError maps an error kind to its status code. Unknown errors are logged
// and hidden behind a generic 500.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeFailure(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrInsufficientStock),
		errors.Is(err, apperr.ErrEmptyCart):
		writeFailure(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeBody reads a JSON object into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return apperr.Validation("invalid json body")
	}
	return nil
}
