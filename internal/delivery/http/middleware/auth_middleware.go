package middleware

import (
	"log/slog"
	"strings"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config   *config.Config
	Tokens   service.TokenService
	Verifier service.IDTokenVerifier `optional:"true"`
	Logger   *slog.Logger
}

// AuthMiddleware guards the trigger endpoints. Callers present either an
// HS256 service token carrying the route's scope, or a Google-signed OIDC
// token when an audience is configured.
type AuthMiddleware struct {
	enabled  bool
	tokens   service.TokenService
	verifier service.IDTokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		enabled:  params.Config.Auth.Enabled,
		tokens:   params.Tokens,
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// RequireScope admits callers whose credentials grant scope.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.enabled {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				return domainerrors.ErrUnauthorized.WithDetails("bearer token required")
			}

			caller, err := m.authenticate(c, tokenString, scope)
			if err != nil {
				return err
			}

			ctx := deliverycontext.WithCaller(c.Request().Context(), caller)
			logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("caller", caller))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, tokenString, scope string) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	claims, err := m.tokens.ValidateToken(tokenString)
	if err == nil {
		if !claims.HasScope(scope) {
			return "", domainerrors.ErrForbidden.WithDetails("missing scope " + scope)
		}

		return claims.Subject, nil
	}

	if m.verifier == nil {
		logger.Debug("Service token rejected", slog.Any("error", err))

		return "", domainerrors.ErrUnauthorized
	}

	email, oidcErr := m.verifier.Verify(c.Request().Context(), tokenString)
	if oidcErr != nil {
		logger.Debug("Caller rejected",
			slog.Any("error", err),
			slog.Any("oidc_error", oidcErr),
		)

		return "", domainerrors.ErrUnauthorized
	}

	return email, nil
}
