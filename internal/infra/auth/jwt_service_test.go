package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pagecast/config"
	"pagecast/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Trigger = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokens, err := NewJWTService(testConfig("test_trigger_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := tokens.GenerateServiceToken("scheduler", []string{service.ScopeExpire}, time.Hour)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "scheduler", claims.Subject)
	assert.Equal(t, "pagecast", claims.Issuer)
	assert.True(t, claims.HasScope(service.ScopeExpire))
	assert.False(t, claims.HasScope(service.ScopePublish))
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	tokens, err := NewJWTService(testConfig("secret-a"))
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		claims, err := tokens.ValidateToken("clearly-not-a-jwt-token-format")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewJWTService(testConfig("secret-b"))
		require.NoError(t, err)
		token, err := other.GenerateServiceToken("x", nil, time.Hour)
		require.NoError(t, err)

		_, err = tokens.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := tokens.GenerateServiceToken("x", nil, -time.Minute)
		require.NoError(t, err)

		_, err = tokens.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "pagecast",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokens, err := NewJWTService(testConfig(""))
	assert.Nil(t, tokens)
	assert.ErrorContains(t, err, "trigger secret must be provided")
}

func TestHasScope_NilClaims(t *testing.T) {
	var claims *service.Claims
	assert.False(t, claims.HasScope(service.ScopeGenerate))
}

type stubValidator struct {
	payload  *idtoken.Payload
	err      error
	audience string
}

func (s *stubValidator) Validate(_ context.Context, _, audience string) (*idtoken.Payload, error) {
	s.audience = audience

	return s.payload, s.err
}

func TestOIDCVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("verified email", func(t *testing.T) {
		stub := &stubValidator{payload: &idtoken.Payload{Claims: map[string]any{
			"email":          "scheduler@project.iam.gserviceaccount.com",
			"email_verified": true,
		}}}
		verifier := newOIDCVerifier(stub, "https://pages.example.com", logger)

		email, err := verifier.Verify(context.Background(), "token")
		require.NoError(t, err)
		assert.Equal(t, "scheduler@project.iam.gserviceaccount.com", email)
		assert.Equal(t, "https://pages.example.com", stub.audience)
	})

	t.Run("unverified email", func(t *testing.T) {
		stub := &stubValidator{payload: &idtoken.Payload{Claims: map[string]any{"email": "a@b.c"}}}
		_, err := newOIDCVerifier(stub, "aud", logger).Verify(context.Background(), "token")
		assert.Error(t, err)
	})

	t.Run("validator error", func(t *testing.T) {
		stub := &stubValidator{err: assert.AnError}
		_, err := newOIDCVerifier(stub, "aud", logger).Verify(context.Background(), "token")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("disabled without audience", func(t *testing.T) {
		verifier, err := NewIDTokenVerifier(context.Background(), &config.Config{}, logger)
		require.NoError(t, err)
		assert.Nil(t, verifier)
	})
}
