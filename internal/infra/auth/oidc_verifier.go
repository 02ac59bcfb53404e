package auth

import (
	"context"
	"log/slog"

	"pagecast/config"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"

	"google.golang.org/api/idtoken"
)

// payloadValidator is satisfied by *idtoken.Validator.
type payloadValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

type oidcVerifier struct {
	validator payloadValidator
	audience  string
	logger    *slog.Logger
}

// NewIDTokenVerifier verifies Google-signed OIDC tokens for the configured
// audience. It returns nil when no audience is configured.
func NewIDTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IDTokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.OIDCAudience == "" {
		return nil, nil //nolint:nilnil
	}

	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create id token validator")
	}

	return newOIDCVerifier(validator, cfg.Auth.OIDCAudience, logger), nil
}

func newOIDCVerifier(validator payloadValidator, audience string, logger *slog.Logger) *oidcVerifier {
	return &oidcVerifier{validator: validator, audience: audience, logger: logger}
}

// Verify validates idToken and returns the verified caller email.
func (v *oidcVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	payload, err := v.validator.Validate(ctx, idToken, v.audience)
	if err != nil {
		return "", errors.Wrap(err, "invalid id token")
	}

	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); email == "" || !verified {
		return "", errors.New("id token carries no verified email")
	}

	v.logger.Debug("OIDC caller verified", slog.String("email", email))

	return email, nil
}
