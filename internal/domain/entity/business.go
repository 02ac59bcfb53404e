// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Business is the stable profile of a local business. The generation pipeline
// only ever reads it; profile edits happen elsewhere.
type Business struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the business.
	OwnerEmail string    // Email of the owning account.
	Slug       string    // Routing slug, unique across businesses.
	Profile    BusinessProfile
	CreatedAt  time.Time // Timestamp of when this business was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// BusinessProfile carries every descriptive field a rendered page can use.
// It is also the business section of PageData, so the codec round-trips it field for field.
type BusinessProfile struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	EstablishedYear int            `json:"established_year,omitempty"`
	Description     string         `json:"description,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	Address         Address        `json:"address"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	Phone           string         `json:"phone"`
	PhoneCountry    string         `json:"phone_country,omitempty"` // Dialing prefix, e.g. "+1".
	Email           string         `json:"email,omitempty"`
	Website         string         `json:"website,omitempty"`
	Hours           string         `json:"hours,omitempty"` // Free-text hours, e.g. "Mon-Fri 9-5".
	WeeklyHours     []DayHours     `json:"weekly_hours,omitempty"`
	Services        []string       `json:"services,omitempty"`
	Specialties     []string       `json:"specialties,omitempty"`
	PaymentMethods  []string       `json:"payment_methods,omitempty"`
	Languages       []string       `json:"languages,omitempty"`
	Accessibility   []string       `json:"accessibility,omitempty"`
	FAQs            []FAQ          `json:"faqs,omitempty"`
	FeaturedItems   []FeaturedItem `json:"featured_items,omitempty"`
	SocialLinks     []SocialLink   `json:"social_links,omitempty"`
	Awards          []string       `json:"awards,omitempty"`
	Certifications  []string       `json:"certifications,omitempty"`
	Reviews         *ReviewSummary `json:"reviews,omitempty"`
	ParkingInfo     string         `json:"parking_info,omitempty"`
	PriceRange      string         `json:"price_range,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// DayHours is one day of structured opening hours. Opens/Closes use "HH:MM".
type DayHours struct {
	Day    string `json:"day"`
	Opens  string `json:"opens,omitempty"`
	Closes string `json:"closes,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FeaturedItem is a highlighted product or menu item.
type FeaturedItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// SocialLink points at a business profile on another platform.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ReviewSummary aggregates third-party reviews.
type ReviewSummary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
	Source string  `json:"source,omitempty"`
}

// HasGeo reports whether both coordinates are present.
func (p *BusinessProfile) HasGeo() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// MissingRequired lists the required generation fields that are blank.
func (p *BusinessProfile) MissingRequired() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("name", p.Name)
	check("city", p.Address.City)
	check("state", p.Address.State)
	check("category", p.Category)

	return missing
}
