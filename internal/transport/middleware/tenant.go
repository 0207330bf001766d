package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

type tenantResolver interface {
	Resolve(ctx context.Context, subject, email string) (uuid.UUID, error)
}

// Tenant maps the authenticated identity to its tenant and stores the tenant
// ID in the request context. It must run after Auth. Anonymous requests pass
// through without a tenant.
func Tenant(resolver tenantResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := ctxutil.IdentityFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			tenantID, err := resolver.Resolve(r.Context(), id.Subject, id.Email)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrValidation):
				// Token claims that cannot identify a tenant.
				writeFailure(w, http.StatusUnauthorized, unauthorized())
				return
			default:
				writeFailure(w, http.StatusInternalServerError, result.FromError(r.Context(), logger, err))
				return
			}

			ctx := ctxutil.WithTenantID(r.Context(), tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
