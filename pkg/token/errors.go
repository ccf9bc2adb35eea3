package token

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrSignatureInvalid = errors.New("signature mismatch")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidTTL       = errors.New("token lifetime must be positive")
)
