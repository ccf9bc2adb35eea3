// Package token provides compact, single-purpose action tokens for flows like
// email-change confirmation and magic links.
//
// Unlike the session-bearing tokens in pkg/jwt, these are short throwaway
// credentials: a JSON payload wrapped in an expiry envelope and signed with a
// truncated HMAC-SHA256. The 8-byte signature keeps tokens short enough for
// URLs while still making forgery impractical for their short lifetimes.
//
//	type emailChange struct {
//	    ID  string `json:"id"`
//	    New string `json:"new"`
//	}
//
//	tok, err := token.GenerateExpiring(emailChange{ID: "42", New: "a@b.c"}, secret, time.Hour)
//	payload, err := token.Parse[emailChange](tok, secret)
//
// Delivery of these tokens (email sending) is outside this package.
package token
