package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/coopkeeper-backend/internal/result"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with a 500 failure envelope.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					writeFailure(w, http.StatusInternalServerError, &result.Error{
						Kind:    result.KindFailure,
						Code:    "internal",
						Message: result.GenericFailureMessage,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
