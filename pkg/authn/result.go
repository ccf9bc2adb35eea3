package authn

// Reason identifies why authentication was rejected. Reasons are for logging
// and metrics only; the HTTP surface must respond with a uniform message so
// callers cannot distinguish a bad signature from an expired token.
type Reason string

const (
	// ReasonNone marks a successful authentication.
	ReasonNone Reason = ""

	ReasonNoToken      Reason = "no_token"
	ReasonBadToken     Reason = "bad_token"
	ReasonOldToken     Reason = "old_token"
	ReasonInvalidUser  Reason = "invalid_user"
	ReasonBannedUser   Reason = "banned_user"
	ReasonNotActivated Reason = "not_activated"
)

// Result is the terminal outcome of one authentication attempt: either an
// Identity or a rejection Reason, propagated by value. No error ever crosses
// the authenticator boundary.
type Result struct {
	Identity *Identity
	Reason   Reason
}

// Authorized reports whether authentication succeeded.
func (r Result) Authorized() bool {
	return r.Reason == ReasonNone && r.Identity != nil
}

func authorized(identity *Identity) Result {
	return Result{Identity: identity}
}

func rejected(reason Reason) Result {
	return Result{Reason: reason}
}
