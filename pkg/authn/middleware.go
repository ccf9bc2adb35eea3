package authn

import "net/http"

// SkipFunc decides whether a request bypasses authentication entirely.
// Public routes are expected to use it; everything that does not skip must
// authenticate before the handler runs.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures the authentication filter.
type MiddlewareConfig struct {
	Authenticator *Authenticator
	Skip          SkipFunc // Optional bypass for public routes
}

// Middleware creates the request filter: it authenticates every request and
// either binds the resolved Identity into the request context or
// short-circuits with a uniform 401. The rejection reason is logged by the
// authenticator but never leaks into the response body.
func Middleware(authenticator *Authenticator) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Authenticator: authenticator})
}

// MiddlewareWithConfig creates the request filter with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			result := config.Authenticator.Authenticate(r)
			if !result.Authorized() {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentity(r.Context(), result.Identity)))
		})
	}
}
