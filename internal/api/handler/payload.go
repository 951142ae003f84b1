package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"github.com/petowners/petregistry/internal/core/domain"
)

// maxBodyBytes caps how much of a request body is read for decoding.
const maxBodyBytes = 1 << 20

// requestPayload reads the request body only when a service asks for it, so
// authorization failures are reported before a malformed body.
type requestPayload struct {
	body io.Reader
	raw  []byte
	read bool
}

func newPayload(body io.Reader) *requestPayload {
	return &requestPayload{body: body}
}

// Decode unmarshals the body into dst. Unreadable, malformed, non-object
// and empty-object bodies are all domain.ErrInvalidJSON. A value of the
// wrong JSON type is reported against its field.
func (p *requestPayload) Decode(dst any) error {
	if !p.read {
		p.read = true
		if p.body != nil {
			raw, err := io.ReadAll(io.LimitReader(p.body, maxBodyBytes))
			if err != nil {
				return domain.ErrInvalidJSON
			}
			p.raw = raw
		}
	}

	raw := bytes.TrimSpace(p.raw)
	if len(raw) == 0 || raw[0] != '{' {
		return domain.ErrInvalidJSON
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil || len(keys) == 0 {
		return domain.ErrInvalidJSON
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" && te.Type != nil {
			return domain.ValidationFailed(map[string]string{
				te.Field: te.Field + " must be " + jsonKind(te.Type),
			})
		}
		return domain.ErrInvalidJSON
	}
	return nil
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
