package authn

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CosDiabos/shield/pkg/jwt"
)

// TokenVerifier verifies a bearer token string and returns its claims.
// *jwt.Service satisfies it; the indirection keeps the codec swappable.
type TokenVerifier interface {
	Verify(tokenString string) (jwt.Claims, error)
}

// Authenticator turns an inbound request into a terminal authentication
// Result. Each request is verified from scratch; there is no cross-request
// token caching, which is what makes the tokens stateless.
type Authenticator struct {
	tokens            TokenVerifier
	users             UserProvider
	logger            *slog.Logger
	requireActivation bool
}

// AuthenticatorOption is a functional option for Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithLogger sets a custom logger; rejections are logged at debug level.
func WithLogger(logger *slog.Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithActivationRequired makes the authenticator reject subjects that have
// not activated their account yet.
func WithActivationRequired(required bool) AuthenticatorOption {
	return func(a *Authenticator) {
		a.requireActivation = required
	}
}

// New creates an Authenticator from a token verifier and a user provider.
func New(tokens TokenVerifier, users UserProvider, opts ...AuthenticatorOption) (*Authenticator, error) {
	if tokens == nil {
		return nil, ErrMissingVerifier
	}
	if users == nil {
		return nil, ErrMissingUserProvider
	}

	a := &Authenticator{
		tokens: tokens,
		users:  users,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // noop logger by default
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Authenticate walks the full check sequence for one request: bearer token
// extraction, token verification, subject lookup, ban check, activation
// check. Every failure short-circuits to a rejection; nothing is thrown past
// this boundary.
func (a *Authenticator) Authenticate(r *http.Request) Result {
	tokenString, ok := bearerToken(r)
	if !ok {
		return a.reject(r, ReasonNoToken, nil)
	}

	claims, err := a.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return a.reject(r, ReasonOldToken, err)
		}
		return a.reject(r, ReasonBadToken, err)
	}

	if claims.Subject == "" {
		return a.reject(r, ReasonBadToken, nil)
	}

	user, err := a.users.FindByID(r.Context(), claims.Subject)
	if err != nil || user == nil {
		// Provider failures and timeouts degrade to a rejection rather than
		// escaping the authentication boundary.
		return a.reject(r, ReasonInvalidUser, err)
	}

	if user.Banned {
		return a.reject(r, ReasonBannedUser, nil)
	}
	if a.requireActivation && !user.Activated {
		return a.reject(r, ReasonNotActivated, nil)
	}

	groups := make([]string, len(user.Groups))
	copy(groups, user.Groups)

	return authorized(&Identity{
		SubjectID: user.ID,
		Groups:    groups,
		Banned:    user.Banned,
		Activated: user.Activated,
	})
}

func (a *Authenticator) reject(r *http.Request, reason Reason, err error) Result {
	attrs := []any{
		slog.String("reason", string(reason)),
		slog.String("path", r.URL.Path),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	a.logger.DebugContext(r.Context(), "authentication rejected", attrs...)

	return rejected(reason)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header per RFC 6750.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
