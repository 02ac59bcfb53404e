package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedPage is one rendered artifact for a (Business, Update, intent) triple.
type GeneratedPage struct {
	ID              uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the page.
	BusinessID      uuid.UUID  `json:"businessId"`      // Owning business.
	UpdateID        uuid.UUID  `json:"updateId"`        // Source update.
	FilePath        string     `json:"filePath"`        // Canonical address the page is served under.
	Title           string     `json:"title"`           // SEO title.
	IntentType      IntentType `json:"intentType"`      // Which of the six variants.
	PageVariant     string     `json:"pageVariant"`     // Variant tag within the intent.
	CompressedData  []byte     `json:"-"`               // Codec payload (compact JSON).
	EstimatedSizeKB int        `json:"estimatedSizeKB"` // Estimated rendered HTML size.
	BatchID         uuid.UUID  `json:"batchId"`         // Groups all pages of one generation run.
	Published       bool       `json:"published"`       // Served by the live chain when true and not expired.
	PublishedAt     *time.Time `json:"publishedAt"`     // Last publish time.
	Expired         bool       `json:"expired"`         // Flipped by the expiration engine.
	ExpiresAt       *time.Time `json:"expiresAt"`       // Optional expiry; never before CreatedAt.
	CreatedAt       time.Time  `json:"createdAt"`       // Timestamp of when this page was generated.
	UpdatedAt       time.Time  `json:"updatedAt"`       // Timestamp of the last modification.
}

// IsLive reports whether the page may be served by the database step of the chain.
func (p *GeneratedPage) IsLive() bool {
	return p.Published && !p.Expired
}

// IsDue reports whether the page's expiry has passed at now.
func (p *GeneratedPage) IsDue(now time.Time) bool {
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}
