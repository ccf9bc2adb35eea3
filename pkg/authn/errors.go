package authn

import "errors"

var (
	// ErrUserNotFound is the sentinel a UserProvider returns for unknown
	// subject ids.
	ErrUserNotFound = errors.New("authn: user not found")

	// ErrMissingVerifier is returned by New when no token verifier is given.
	ErrMissingVerifier = errors.New("authn: missing token verifier")

	// ErrMissingUserProvider is returned by New when no user provider is given.
	ErrMissingUserProvider = errors.New("authn: missing user provider")
)
