package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("BIOSCI_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("BIOSCI_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "BiosciZone API", cfg.AppName)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "HS256", cfg.JWTAlgorithm)
	require.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, "*", cfg.CORSOrigins)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.False(t, cfg.SMTPConfigured())
	require.False(t, cfg.FallbackConfigured())
}

func TestLoadRejectsNonHMACAlgorithm(t *testing.T) {
	t.Setenv("BIOSCI_JWT_SECRET", "test-secret")
	t.Setenv("BIOSCI_JWT_ALGORITHM", "RS256")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("BIOSCI_JWT_SECRET", "test-secret")
	t.Setenv("BIOSCI_APP_PORT", ":9090")
	t.Setenv("BIOSCI_ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("BIOSCI_ADMIN_USERNAME", "root")
	t.Setenv("BIOSCI_ADMIN_PASSWORD", "bootstrap")
	t.Setenv("BIOSCI_SMTP_USER", "bot@example.com")
	t.Setenv("BIOSCI_SMTP_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.True(t, cfg.FallbackConfigured())
	require.True(t, cfg.SMTPConfigured())
}
