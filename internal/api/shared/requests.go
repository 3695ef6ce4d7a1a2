package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// maxBodyBytes bounds request payloads. Task titles and descriptions are
// short strings, so a body anywhere near this limit is malformed.
const maxBodyBytes = 1 << 20

// ErrTrailingData is returned when a request body carries data after the
// JSON payload.
var ErrTrailingData = errors.New("unexpected data after JSON payload")

// DecodeJSON decodes the request body into the given struct. The body is
// capped at maxBodyBytes and must contain exactly one JSON value.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// ValidateRequest validates the given struct: tag-based rules first, then
// the request's own Validate hook for rules the tags cannot express, such
// as rejecting whitespace-only titles.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return err
	}

	if hook, ok := v.(interface{ Validate() error }); ok {
		return hook.Validate()
	}

	return nil
}
