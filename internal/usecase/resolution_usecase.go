package usecase

import (
	"context"
	"time"
)

// ResolutionSource names the chain step that answered a request.
type ResolutionSource string

const (
	SourceStatic   ResolutionSource = "static"
	SourceDatabase ResolutionSource = "database"
	SourceLive     ResolutionSource = "live"
	SourceFallback ResolutionSource = "fallback"
)

// Resolution is the serving-path answer for one request path.
type Resolution struct {
	Body         []byte
	Found        bool
	Source       ResolutionSource
	ContentType  string
	CacheControl string
	ETag         string

	// Cached is true when the response came from the downstream cache.
	Cached bool

	// ExpiresAt is when the served page expires; nil when it never does.
	ExpiresAt *time.Time
}

// ResolutionUsecase answers content requests through the ordered lookup chain.
// It always produces a document; Found is false only for the fallback.
type ResolutionUsecase interface {
	Resolve(ctx context.Context, requestPath string) *Resolution
}
