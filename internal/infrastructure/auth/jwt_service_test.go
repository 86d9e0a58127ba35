package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachinkumar2222/Productr/domain"
)

func TestJWTService_MintAndValidate(t *testing.T) {
	lifetime := time.Hour
	svc := NewJWTService("test-secret", "productr", lifetime)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Mint("identity-42", issued)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("valid until just before expiry", func(t *testing.T) {
		claims, err := svc.Validate(token, issued.Add(lifetime-time.Second))
		require.NoError(t, err)
		assert.Equal(t, "identity-42", claims.IdentityID)
		assert.Equal(t, issued.Unix(), claims.IssuedAt)
		assert.Equal(t, issued.Add(lifetime).Unix(), claims.ExpiresAt)
	})

	t.Run("expired exactly at the expiry instant", func(t *testing.T) {
		_, err := svc.Validate(token, issued.Add(lifetime))
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("expired after the expiry instant", func(t *testing.T) {
		_, err := svc.Validate(token, issued.Add(lifetime+time.Hour))
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", "productr", lifetime)
		tampered, err := other.Mint("identity-42", issued)
		require.NoError(t, err)

		_, err = svc.Validate(tampered, issued.Add(time.Minute))
		assert.ErrorIs(t, err, domain.ErrTokenSignature)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-token", issued)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Validate("", issued)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed)
	})
}
