package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sundayezeilo/linkshort/internal/errx"
)

// ErrorResponse represents a JSON error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent.
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// WriteKindError derives status and code from the kind carried by err.
func WriteKindError(w http.ResponseWriter, err error, message string) {
	kind := errx.KindOf(err)
	WriteError(w, ErrorKindToStatus(kind), ErrorKindToCode(kind), message)
}
