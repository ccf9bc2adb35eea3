// Package jwt implements the stateless bearer-token codec used by the shield
// authentication core.
//
// The implementation covers the HS256 (HMAC-SHA256) subset of RFC 7519. A
// Service issues tokens carrying the registered claims (jti, sub, iss, iat,
// exp) plus arbitrary extra claims, and verifies them in a fixed order:
// structure, signature, signing algorithm, then temporal claims with a
// configurable clock-skew leeway. The time source is injectable so expiry
// behavior can be tested deterministically.
//
// # Usage
//
//	svc, err := jwt.NewFromString("super-secret",
//	    jwt.WithIssuer("shield"),
//	    jwt.WithLeeway(time.Minute),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Issue("user-42", time.Hour, nil)
//
//	claims, err := svc.Verify(token)
//	if err != nil {
//	    // errors.Is against ErrExpiredToken, ErrInvalidSignature, ...
//	}
//
// # Error Handling
//
// Verification failures are sentinel errors (ErrMalformedToken,
// ErrInvalidSignature, ErrUnexpectedSigningMethod, ErrExpiredToken,
// ErrNotYetValid) comparable with errors.Is. Changing the signing key
// invalidates all previously issued tokens; key rotation windows are policy
// for the caller, not this codec.
package jwt
