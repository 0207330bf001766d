package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/coopkeeper-backend/internal/result"
)

// maxBodyBytes caps request bodies. Every payload in the API is a handful of
// scalar fields.
const maxBodyBytes = 64 << 10

type successBody struct {
	Success bool `json:"success"`
	Value   any  `json:"value"`
}

type failureBody struct {
	Success bool          `json:"success"`
	Error   *result.Error `json:"error"`
}

// statusFor maps a failure kind onto the HTTP status code.
func statusFor(kind result.Kind) int {
	switch kind {
	case result.KindUnauthorized:
		return http.StatusUnauthorized
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respond writes res as an envelope. On success the value is converted with
// conv and written with status.
func respond[T, R any](w http.ResponseWriter, res result.Result[T], status int, conv func(T) R) {
	if !res.IsSuccess() {
		writeFailure(w, res.Error())
		return
	}
	writeJSON(w, status, successBody{Success: true, Value: conv(res.Value())})
}

func writeFailure(w http.ResponseWriter, e *result.Error) {
	writeJSON(w, statusFor(e.Kind), failureBody{Error: e})
}

func invalid(field, message string) *result.Error {
	return &result.Error{
		Kind:    result.KindValidation,
		Code:    "validation." + field,
		Message: message,
	}
}

// decodeBody reads a JSON object into dst. Unknown fields and trailing data
// are rejected. On failure a validation envelope has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeFailure(w, invalid("body", "invalid request body"))
		return false
	}
	if dec.More() {
		writeFailure(w, invalid("body", "invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// identity is the conv func for values that are already response-shaped.
func identity[T any](v T) T { return v }

type empty struct{}

func noContent(struct{}) empty { return empty{} }
