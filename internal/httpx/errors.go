package httpx

import (
	"net/http"

	"github.com/sundayezeilo/linkshort/internal/errx"
)

// ErrorKindToStatus maps errx.Kind to HTTP status codes. A taken custom code
// is a client error, so Duplicate shares 400 with Invalid.
func ErrorKindToStatus(kind errx.Kind) int {
	switch kind {
	case errx.Invalid, errx.Duplicate:
		return http.StatusBadRequest
	case errx.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKindToCode maps errx.Kind to error codes for JSON responses.
func ErrorKindToCode(kind errx.Kind) string {
	switch kind {
	case errx.Invalid:
		return "invalid_input"
	case errx.Duplicate:
		return "duplicate_code"
	case errx.NotFound:
		return "not_found"
	case errx.Storage:
		return "storage_error"
	default:
		return "internal_error"
	}
}
