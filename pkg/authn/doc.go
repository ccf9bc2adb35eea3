// Package authn authenticates inbound HTTP requests against stateless bearer
// tokens.
//
// The Authenticator is a fixed check sequence: extract the bearer token,
// verify it with the jwt codec, resolve the subject through the external
// UserProvider, then apply ban and activation checks. Every stage
// short-circuits to a Result carrying a rejection Reason; success binds a
// request-scoped Identity. The Result is a plain value and no error ever
// crosses the authentication boundary.
//
// Middleware adapts the Authenticator to an http.Handler chain. Rejected
// requests get a uniform 401 regardless of reason so unauthenticated callers
// learn nothing about why a token failed; the reason is available to
// structured logging only. Public routes opt out via SkipFunc.
//
//	authenticator, err := authn.New(jwtService, userProvider,
//	    authn.WithActivationRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	mux.Handle("/api/", authn.Middleware(authenticator)(apiHandler))
//
//	// Downstream handlers:
//	identity, ok := authn.GetIdentity(r.Context())
//
// The authenticator deliberately re-verifies every request from scratch.
// Caching verified tokens across requests would require an invalidation
// design this core does not have.
package authn
