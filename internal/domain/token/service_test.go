package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	raw, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	userID, err := svc.Verify(raw)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	raw, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	raw, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "garbage", raw: "not-a-token"},
		{name: "truncated", raw: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestService_Verify_BadSubject(t *testing.T) {
	secret := "test-secret"
	svc := NewService(secret, time.Hour)

	tests := []struct {
		name    string
		subject string
	}{
		{name: "non numeric", subject: "abc"},
		{name: "zero", subject: "0"},
		{name: "negative", subject: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwt.RegisteredClaims{
				Subject:   tt.subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
			require.NoError(t, err)

			_, err = svc.Verify(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestService_Verify_NoneAlgorithmRejected(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
