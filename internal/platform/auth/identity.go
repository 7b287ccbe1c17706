package auth

import (
	"context"
	"strings"
)

// Roles recognised by the authorisation middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated principal from a verified access token.
type Identity struct {
	UID   string
	Email string
	Role  string
}

// HasRole reports whether the identity carries the role, ignoring case.
func (i *Identity) HasRole(role string) bool {
	role = strings.TrimSpace(role)
	if i == nil || role == "" {
		return false
	}
	return strings.EqualFold(i.Role, role)
}

type identityKey struct{}

// WithIdentity attaches the identity to the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity set by the authentication
// middleware, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
