package service

import "context"

// IDTokenVerifier verifies Google-signed OIDC tokens, such as those Cloud
// Scheduler attaches to the expiration trigger.
type IDTokenVerifier interface {
	// Verify checks idToken against the configured audience and returns the caller email.
	Verify(ctx context.Context, idToken string) (string, error)
}
