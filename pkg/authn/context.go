package authn

import "context"

// identityCtxKey is the context key for the authenticated identity.
type identityCtxKey struct{}

// SetIdentity binds the authenticated identity to the request context.
func SetIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return identity, ok
}
