package domain

import "context"

// Identity is the authenticated caller, extracted once from the access token
// by the auth middleware and passed down explicitly. Business logic never
// re-derives it.
type Identity struct {
	VolunteerID int64
	Email       string
	Role        Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type identityKey struct{}

func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(Identity)
	return ident, ok
}
