package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/delivery/http/response"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/service"
	mockSvc "pagecast/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, deliverycontext.GetCaller(c.Request().Context()))
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)

	return resp.Error.Code
}

func authConfig(enabled bool) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: enabled}}
}

func bearer(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/pages/publish", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return req
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	e := newTestEcho()
	m := NewAuthMiddleware(AuthMiddlewareParams{Config: authConfig(false), Tokens: mockSvc.NewMockTokenService(t), Logger: discardLogger()})
	e.POST("/api/pages/publish", okHandler, m.RequireScope(service.ScopePublish))

	rec := serve(e, bearer(""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_ServiceToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	e := newTestEcho()
	m := NewAuthMiddleware(AuthMiddlewareParams{Config: authConfig(true), Tokens: tokens, Logger: discardLogger()})
	e.POST("/api/pages/publish", okHandler, m.RequireScope(service.ScopePublish))

	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
		Scopes:           []string{service.ScopeGenerate, service.ScopePublish},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "scheduler"},
	}, nil)
	tokens.EXPECT().ValidateToken("narrow").Return(&service.Claims{
		Scopes:           []string{service.ScopeExpire},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "janitor"},
	}, nil)
	tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

	rec := serve(e, bearer("good"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "scheduler", rec.Body.String())

	rec = serve(e, bearer("narrow"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), errorCode(t, rec))

	rec = serve(e, bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, bearer(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), errorCode(t, rec))
}

func TestAuthMiddleware_OIDCFallback(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	verifier := mockSvc.NewMockIDTokenVerifier(t)
	e := newTestEcho()
	m := NewAuthMiddleware(AuthMiddlewareParams{Config: authConfig(true), Tokens: tokens, Verifier: verifier, Logger: discardLogger()})
	e.POST("/api/pages/publish", okHandler, m.RequireScope(service.ScopeExpire))

	tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("token is malformed"))
	verifier.EXPECT().Verify(mock.Anything, "oidc-token").Return("scheduler@project.iam.gserviceaccount.com", nil).Once()
	verifier.EXPECT().Verify(mock.Anything, "stale").Return("", errors.New("token expired")).Once()

	rec := serve(e, bearer("oidc-token"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "scheduler@project.iam.gserviceaccount.com", rec.Body.String())

	rec = serve(e, bearer("stale"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Requests: 2, Interval: time.Hour}}
	e := newTestEcho()
	e.POST("/api/pages/generate", okHandler, NewRateLimitMiddleware(cfg).Limit)

	for range 2 {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/pages/generate", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/pages/generate", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, domainerrors.ErrRateLimited.ErrorCode(), errorCode(t, rec))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := newTestEcho()
	e.POST("/api/pages/generate", okHandler, NewRateLimitMiddleware(&config.Config{}).Limit)

	for range 5 {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/pages/generate", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newTestEcho()
	e.Use(NewRequestIDMiddleware(discardLogger()).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := serve(e, req)
	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))

	for _, bad := range []string{"id with spaces", "<script>", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, bad)
		rec := serve(e, req)
		assert.NotEqual(t, bad, rec.Body.String())
		assert.Len(t, rec.Body.String(), 36, "replaced with a uuid")
	}
}

func TestErrorMiddleware(t *testing.T) {
	e := newTestEcho()
	e.GET("/app", func(echo.Context) error {
		return domainerrors.ErrValidationFailed.WithDetails("hours must be positive")
	})
	e.GET("/store", func(echo.Context) error {
		return errors.Wrap(domainerrors.NewStoreError(errors.New("bucket timeout"), "put"), "publish")
	})
	e.GET("/plain", func(echo.Context) error {
		return errors.New("database exploded")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "hours must be positive")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/store", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_ERROR", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "bucket timeout")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "exploded")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorCode(t, rec))
}
