package security

import (
	"context"
	"slices"

	"github.com/kirinyoku/parkgo/internal/domain"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID int64
	Email  string
	Roles  []domain.Role
}

func (p *Principal) HasRole(role domain.Role) bool {
	return p != nil && slices.Contains(p.Roles, role)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
