// Package constants holds string identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// CacheTagPublishedPages is the single coarse tag every served page response is
// cached under. Invalidating it drops all cached responses at once.
const CacheTagPublishedPages = "published-pages"

// Object store layout.
const (
	IndexDocument  = "index.html"
	QRCodeDocument = "qr.png"
	SitemapKey     = "sitemap.xml"
	RobotsKey      = "robots.txt"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXML  = "application/xml; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypePNG  = "image/png"

	// MetadataExpiresAt stamps a stored object with its page's expiry (RFC3339).
	MetadataExpiresAt = "expires-at"
	MetadataPageID    = "page-id"
)

// Default Cache-Control values.
const (
	CacheControlStatic   = "public, max-age=31536000, immutable"
	CacheControlDatabase = "public, max-age=300, s-maxage=3600"
	CacheControlLive     = "public, max-age=60"
	CacheControlNoStore  = "no-store"
)
