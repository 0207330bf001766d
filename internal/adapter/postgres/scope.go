package postgres

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/pkg/ctxutil"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// TenantFromCtx returns the tenant every tenant-scoped repository call must
// filter by. Repositories never accept a tenant parameter; a context
// without a tenant yields domain.ErrUnauthorized.
func TenantFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// ContainsPattern turns an autocomplete query into an ILIKE pattern,
// escaping the LIKE metacharacters it contains.
func ContainsPattern(q string) string {
	r := likeEscaper.Replace(q)
	return "%" + r + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
