package entity

import "time"

// PageData is everything a renderer needs for one page. The codec stores it in
// compact form on each GeneratedPage.
type PageData struct {
	Business BusinessProfile `json:"business"`
	Update   UpdateContent   `json:"update"`
	SEO      SEOData         `json:"seo"`
	Intent   IntentData      `json:"intent"`
	FAQs     []FAQ           `json:"faqs,omitempty"` // Update-level FAQs, merged with the business FAQs on render.

	// GeneratedAt is the reference time for relative facts such as years in
	// business. Unset, those facts are left out.
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// UpdateContent is the update section of PageData.
type UpdateContent struct {
	ContentText       string         `json:"content_text"`
	DealTerms         string         `json:"deal_terms,omitempty"`
	SpecialHoursToday string         `json:"special_hours_today,omitempty"`
	Category          UpdateCategory `json:"category,omitempty"`
	ExpiresAt         *time.Time     `json:"expires_at,omitempty"`
	EventDates        []string       `json:"event_dates,omitempty"`
}

// SEOData holds the computed title, description and keywords.
type SEOData struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords,omitempty"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
}

// IntentData describes which variant a page is and where it lives.
type IntentData struct {
	Type     IntentType `json:"type"`
	FilePath string     `json:"file_path"`
	Slug     string     `json:"slug"`
	Variant  string     `json:"variant,omitempty"`
}
