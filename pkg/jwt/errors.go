package jwt

import "errors"

var (
	ErrMalformedToken          = errors.New("jwt: malformed token")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrNotYetValid             = errors.New("jwt: token is not valid yet")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrInvalidTTL              = errors.New("jwt: token lifetime must be positive")
)
