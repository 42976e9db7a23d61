package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	svc, err := NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	token, err := svc.Issue("alice", models.RoleSuperadmin, time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, models.RoleSuperadmin, claims.Role)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenService("issuer-secret", "HS256")
	require.NoError(t, err)
	verifier, err := NewTokenService("other-secret", "HS256")
	require.NoError(t, err)

	token, err := issuer.Issue("alice", models.RoleAdmin, time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsMissingSubject(t *testing.T) {
	svc, err := NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	signed, err := anonymous.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceDefaultsMissingRole(t *testing.T) {
	svc, err := NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := bare.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestNewTokenServiceRejectsNonHMAC(t *testing.T) {
	_, err := NewTokenService("test-secret", "RS256")
	require.Error(t, err)

	_, err = NewTokenService("test-secret", "bogus")
	require.Error(t, err)

	_, err = NewTokenService("", "HS256")
	require.Error(t, err)
}
