package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/coopkeeper-backend/internal/result"
)

// failureBody mirrors the REST envelope so middleware rejections look the
// same as handler failures.
type failureBody struct {
	Success bool          `json:"success"`
	Error   *result.Error `json:"error"`
}

func writeFailure(w http.ResponseWriter, status int, e *result.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureBody{Error: e})
}

func unauthorized() *result.Error {
	return &result.Error{Kind: result.KindUnauthorized, Code: "unauthorized", Message: "authentication required"}
}
