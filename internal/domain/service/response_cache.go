package service

import (
	"context"
	"time"
)

// CachedResponse is a serving-path response kept in the downstream cache.
type CachedResponse struct {
	HTML         string     `json:"html"`
	ContentType  string     `json:"content_type"`
	CacheControl string     `json:"cache_control"`
	Source       string     `json:"source"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"` // Entry must not outlive this.
}

// TagInvalidator drops every downstream cache entry carrying a tag. There is
// no per-path granularity.
type TagInvalidator interface {
	InvalidateTag(ctx context.Context, tag string) error
}

// ResponseCache is the read-through cache in front of the resolution chain.
type ResponseCache interface {
	TagInvalidator

	// Get returns the cached response for path, or nil on a miss.
	Get(ctx context.Context, path string) (*CachedResponse, error)

	// Set caches resp for path under tags. An entry never outlives
	// resp.ExpiresAt.
	Set(ctx context.Context, path string, resp *CachedResponse, tags ...string) error
}
