package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// envelope wraps the caller's payload so every action token carries its own
// deadline. A zero deadline means the token never expires.
type envelope[T any] struct {
	Payload   T     `json:"p"`
	ExpiresAt int64 `json:"exp,omitempty"`
}

// Generate creates a non-expiring action token: the JSON-encoded payload plus
// an 8-byte truncated HMAC-SHA256 signature. Suitable only for payloads that
// carry their own validity rules.
func Generate[T any](payload T, secret string) (string, error) {
	return encode(envelope[T]{Payload: payload}, secret)
}

// GenerateExpiring creates an action token that Parse rejects with
// ErrTokenExpired once ttl has elapsed.
func GenerateExpiring[T any](payload T, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}
	return encode(envelope[T]{
		Payload:   payload,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}, secret)
}

// Parse verifies the token's signature and expiry, then decodes the payload.
func Parse[T any](tokenString string, secret string) (T, error) {
	var zero T

	parts := strings.Split(tokenString, ".")
	if len(parts) != 2 {
		return zero, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return zero, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return zero, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare(sig, signature(data, secret)) != 1 {
		return zero, ErrSignatureInvalid
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, ErrInvalidToken
	}

	if env.ExpiresAt > 0 && time.Now().Unix() > env.ExpiresAt {
		return zero, ErrTokenExpired
	}

	return env.Payload, nil
}

func encode[T any](env envelope[T], secret string) (string, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return "", err
	}

	payloadEnc := base64.RawURLEncoding.EncodeToString(data)
	sigEnc := base64.RawURLEncoding.EncodeToString(signature(data, secret))

	return payloadEnc + "." + sigEnc, nil
}

func signature(data []byte, secret string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return h.Sum(nil)[:8]
}
