package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosDiabos/shield/pkg/token"
)

type emailChangePayload struct {
	ID       string `json:"id"`
	OldEmail string `json:"old"`
	NewEmail string `json:"new"`
}

const testSecret = "test-secret"

func TestGenerateParseRoundTrip(t *testing.T) {
	t.Parallel()

	payload := emailChangePayload{ID: "42", OldEmail: "a@example.com", NewEmail: "b@example.com"}

	tok, err := token.Generate(payload, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := token.Parse[emailChangePayload](tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := token.Generate(emailChangePayload{ID: "42"}, testSecret)
	require.NoError(t, err)

	_, err = token.Parse[emailChangePayload](tok, "other-secret")
	assert.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()

	tok, err := token.Generate(emailChangePayload{ID: "42"}, testSecret)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 2)

	_, err = token.Parse[emailChangePayload]("eyJwIjp7ImlkIjoiOTkifX0."+parts[1], testSecret)
	assert.ErrorIs(t, err, token.ErrSignatureInvalid)
}

func TestParse_MalformedToken(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "one-part", "a.b.c", "!!!.!!!"} {
		_, err := token.Parse[emailChangePayload](tok, testSecret)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "token %q", tok)
	}
}

func TestGenerateExpiring(t *testing.T) {
	t.Parallel()

	payload := emailChangePayload{ID: "42"}

	t.Run("valid before deadline", func(t *testing.T) {
		tok, err := token.GenerateExpiring(payload, testSecret, time.Hour)
		require.NoError(t, err)

		got, err := token.Parse[emailChangePayload](tok, testSecret)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := token.GenerateExpiring(payload, testSecret, -time.Minute)
		assert.ErrorIs(t, err, token.ErrInvalidTTL)
		assert.Empty(t, tok)

		// Build one that expires immediately via the smallest positive TTL.
		tok, err = token.GenerateExpiring(payload, testSecret, time.Nanosecond)
		require.NoError(t, err)

		// The envelope stores whole seconds, so back-date past the boundary.
		time.Sleep(1100 * time.Millisecond)
		_, err = token.Parse[emailChangePayload](tok, testSecret)
		assert.ErrorIs(t, err, token.ErrTokenExpired)
	})
}
