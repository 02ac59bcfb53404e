package service

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Trigger scopes carried in service tokens.
const (
	ScopeGenerate = "pages:generate"
	ScopePublish  = "pages:publish"
	ScopeExpire   = "pages:expire"
)

// Claims identifies the caller of a trigger endpoint.
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// HasScope reports whether the claims grant scope.
func (c *Claims) HasScope(scope string) bool {
	return c != nil && slices.Contains(c.Scopes, scope)
}

// TokenService issues and validates the HS256 service tokens used by trigger callers.
type TokenService interface {
	// GenerateServiceToken creates a token for subject with the given scopes.
	GenerateServiceToken(subject string, scopes []string, ttl time.Duration) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
