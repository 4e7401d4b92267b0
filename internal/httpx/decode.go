package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sundayezeilo/linkshort/internal/errx"
)

const (
	// MaxRequestBodySize is the maximum allowed request body size (64KB).
	MaxRequestBodySize = 64 << 10
)

// DecodeJSON decodes a single JSON object from the request body. Unknown
// fields are ignored. Every failure is reported as errx.Invalid.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	const op = "httpx.DecodeJSON"
	var zero T

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	defer func() {
		_ = r.Body.Close()
	}()

	decoder := json.NewDecoder(r.Body)

	var v T
	if err := decoder.Decode(&v); err != nil {
		var syntaxErr *json.SyntaxError
		var unmarshalErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxErr):
			return zero, errx.E(op, errx.Invalid, fmt.Errorf("malformed JSON at position %d", syntaxErr.Offset))
		case errors.As(err, &unmarshalErr):
			return zero, errx.E(op, errx.Invalid, fmt.Errorf("invalid value for field %q", unmarshalErr.Field))
		case errors.As(err, &maxBytesErr):
			return zero, errx.E(op, errx.Invalid, fmt.Errorf("request body too large (max %d bytes)", MaxRequestBodySize))
		case errors.Is(err, io.EOF):
			return zero, errx.E(op, errx.Invalid, errors.New("request body is empty"))
		case errors.Is(err, io.ErrUnexpectedEOF):
			return zero, errx.E(op, errx.Invalid, errors.New("malformed JSON: unexpected end of input"))
		default:
			return zero, errx.E(op, errx.Invalid, fmt.Errorf("failed to decode JSON: %w", err))
		}
	}

	if decoder.More() {
		return zero, errx.E(op, errx.Invalid, errors.New("request body contains multiple JSON objects"))
	}

	return v, nil
}

// QueryInt reads an integer query parameter, returning def when it is absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	const op = "httpx.QueryInt"

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errx.E(op, errx.Invalid, fmt.Errorf("query parameter %q must be an integer", name))
	}
	return n, nil
}
