package authn

import (
	"context"
	"slices"
)

// User is the subject record returned by the external user-lookup
// collaborator. Persistence, password handling, and registration live behind
// UserProvider; the authentication core only reads these fields.
type User struct {
	ID        string
	Groups    []string
	Banned    bool
	Activated bool
}

// UserProvider resolves a token subject to a User. Implementations should
// return ErrUserNotFound (possibly wrapped) for unknown subjects; any other
// error is treated the same way by the authenticator, so a slow or failing
// backend degrades to a rejection instead of escaping the auth boundary.
type UserProvider interface {
	FindByID(ctx context.Context, id string) (*User, error)
}

// Identity is the request-scoped result of successful authentication. It must
// never be shared across concurrent requests.
type Identity struct {
	SubjectID string
	Groups    []string
	Banned    bool
	Activated bool
}

// InGroup reports whether the identity belongs to any of the given groups.
func (id *Identity) InGroup(aliases ...string) bool {
	for _, alias := range aliases {
		if slices.Contains(id.Groups, alias) {
			return true
		}
	}
	return false
}
