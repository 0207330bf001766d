package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

type identityVerifier interface {
	Verify(ctx context.Context, token string) (ctxutil.Identity, error)
}

// Auth verifies the bearer token, if any, and stores the caller's identity
// in the request context. Requests without a token pass through anonymously
// and are rejected later by the use case; an invalid token is rejected here.
func Auth(verifier identityVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, unauthorized())
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token from an "Authorization: Bearer"
// header. The scheme is matched case-insensitively.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
