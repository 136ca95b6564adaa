package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargotrack/cargotrack/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			JWTSecret:     "test-secret",
			JWTExpiration: time.Hour,
			AdminUsername: "admin",
			AdminPassword: "s3cret",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, expiresAt, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "cargotrack", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	other := NewJWTService(&config.Config{
		Security: config.SecurityConfig{JWTSecret: "different", JWTExpiration: time.Hour},
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.Security.JWTExpiration = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyCredentialsPlaintext(t *testing.T) {
	cfg := testConfig()

	assert.NoError(t, VerifyCredentials(cfg, "admin", "s3cret"))
	assert.ErrorIs(t, VerifyCredentials(cfg, "admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, VerifyCredentials(cfg, "intruder", "s3cret"), ErrInvalidCredentials)
}

func TestVerifyCredentialsHash(t *testing.T) {
	cfg := testConfig()
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	cfg.Security.AdminPasswordHash = hash

	assert.NoError(t, VerifyCredentials(cfg, "admin", "hunter2"))

	// The hash wins over any plaintext setting.
	assert.ErrorIs(t, VerifyCredentials(cfg, "admin", "s3cret"), ErrInvalidCredentials)
}
