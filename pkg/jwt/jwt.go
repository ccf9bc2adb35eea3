package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Claims carries the registered JWT claims this codec works with plus any
// application-defined extras. Extra claims are flattened into the payload on
// issue and collected back on verify; registered claim names always win over
// extras carrying the same key.
type Claims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`

	Extra map[string]any `json:"-"`
}

// MarshalJSON flattens registered and extra claims into one JSON object.
func (c Claims) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(c.Extra)+5)
	for k, v := range c.Extra {
		payload[k] = v
	}
	if c.ID != "" {
		payload["jti"] = c.ID
	}
	if c.Subject != "" {
		payload["sub"] = c.Subject
	}
	if c.Issuer != "" {
		payload["iss"] = c.Issuer
	}
	if c.IssuedAt != 0 {
		payload["iat"] = c.IssuedAt
	}
	if c.ExpiresAt != 0 {
		payload["exp"] = c.ExpiresAt
	}
	return json.Marshal(payload)
}

// UnmarshalJSON splits registered claims out of the payload and keeps the
// remainder in Extra.
func (c *Claims) UnmarshalJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["jti"].(string); ok {
		c.ID = v
		delete(raw, "jti")
	}
	if v, ok := raw["sub"].(string); ok {
		c.Subject = v
		delete(raw, "sub")
	}
	if v, ok := raw["iss"].(string); ok {
		c.Issuer = v
		delete(raw, "iss")
	}
	if v, ok := asInt64(raw["iat"]); ok {
		c.IssuedAt = v
		delete(raw, "iat")
	}
	if v, ok := asInt64(raw["exp"]); ok {
		c.ExpiresAt = v
		delete(raw, "exp")
	}

	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// asInt64 normalizes JSON numbers, which decode as float64 by default.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// Service issues and verifies HS256-signed bearer tokens. The signing key is
// kept in memory only; rotating it invalidates every outstanding token.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	leeway     time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIssuer sets the "iss" claim stamped into issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// WithTTL sets the default token lifetime used when Issue is called with a
// non-positive TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

// WithLeeway sets the clock-skew allowance applied to temporal checks on both
// the issued-at and expiry bounds.
func WithLeeway(leeway time.Duration) Option {
	return func(s *Service) {
		s.leeway = leeway
	}
}

// WithClock injects the time source, enabling deterministic expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString creates a token service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}
	return New([]byte(signingKey), opts...)
}

// Issue creates a signed token for the given subject. The token carries a
// fresh "jti", "iat" set to the current time, and "exp" set to now+ttl; a
// non-positive ttl falls back to the service default. Extra claims are merged
// flat into the payload. No token is emitted on any failure.
func (s *Service) Issue(subject string, ttl time.Duration, extra map[string]any) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	now := s.now()
	claims := Claims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
		Extra:     extra,
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: HeaderAlgorithm})
	if err != nil {
		return "", fmt.Errorf("jwt: marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("jwt: marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Verify checks a token's structure, signature, and temporal claims, in that
// order, and returns the decoded claims. Failures map to the sentinel errors
// ErrMalformedToken, ErrInvalidSignature, ErrUnexpectedSigningMethod,
// ErrExpiredToken, and ErrNotYetValid.
func (s *Service) Verify(tokenString string) (Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	// Signature first, constant-time, so timing does not depend on payload
	// contents.
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return Claims{}, ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return Claims{}, ErrMalformedToken
	}

	// Pin the algorithm to prevent confusion attacks.
	if header.Algorithm != HeaderAlgorithm {
		return Claims{}, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Claims{}, ErrMalformedToken
	}

	now := s.now().Unix()
	leeway := int64(s.leeway / time.Second)

	if claims.ExpiresAt != 0 && now >= claims.ExpiresAt+leeway {
		return Claims{}, ErrExpiredToken
	}
	if claims.IssuedAt != 0 && claims.IssuedAt > now+leeway {
		return Claims{}, ErrNotYetValid
	}

	return claims, nil
}

// sign creates a base64url-encoded HMAC-SHA256 signature for the payload.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
