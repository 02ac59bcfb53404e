// Package auth provides the credential checks guarding the trigger endpoints.
package auth

import (
	"time"

	"pagecast/config"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "pagecast"

// jwtService signs and validates HS256 service tokens.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService builds the token service from the trigger secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Trigger == "" {
		return nil, errors.New("trigger secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Trigger),
		now:    time.Now,
	}, nil
}

// GenerateServiceToken creates a token for subject with the given scopes.
func (s *jwtService) GenerateServiceToken(subject string, scopes []string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := service.Claims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign service token")
	}

	return signed, nil
}

// ValidateToken checks signature, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid service token")
	}

	return claims, nil
}
