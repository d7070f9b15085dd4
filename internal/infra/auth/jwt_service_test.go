package auth

import (
	"testing"
	"time"

	"sitter/config"
	domainerrors "sitter/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.TTL = time.Hour
	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	svc := tokenService.(*jwtService)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	// Just before expiry the token still verifies.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	userID, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	// Past expiry it is rejected as expired, not merely invalid.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.JWT.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
