package impl

import (
	"encoding/json"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"pagecast/internal/domain/codec"
	"pagecast/internal/domain/entity"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/errors"

	"github.com/google/uuid"
)

const (
	headlineMaxRunes    = 60
	descriptionMaxRunes = 155
)

// pageBuilder turns business and update content into page data and rows.
// It holds no mutable state and is safe for concurrent use.
type pageBuilder struct {
	baseOverheadKB int
	baseURL        string
}

func newPageBuilder(baseOverheadKB int, baseURL string) *pageBuilder {
	return &pageBuilder{baseOverheadKB: baseOverheadKB, baseURL: baseURL}
}

// pageData assembles the renderer input for one intent.
func (b *pageBuilder) pageData(
	profile entity.BusinessProfile,
	content entity.UpdateContent,
	intent entity.IntentType,
	filePath string,
	now time.Time,
) *entity.PageData {
	segments := pagepath.Segments(filePath)
	slug := ""
	if len(segments) > 0 {
		slug = segments[len(segments)-1]
	}

	variant := string(content.Category)
	if variant == "" {
		variant = string(entity.UpdateCategoryGeneral)
	}

	data := &entity.PageData{
		Business: profile,
		Update:   content,
		SEO: entity.SEOData{
			Title:       seoTitle(intent, &profile, content.ContentText),
			Description: seoDescription(&profile, content.ContentText),
			Keywords:    seoKeywords(intent, &profile),
		},
		Intent: entity.IntentData{
			Type:     intent,
			FilePath: pagepath.Normalize(filePath),
			Slug:     slug,
			Variant:  variant,
		},
		GeneratedAt: &now,
	}
	if b.baseURL != "" {
		data.SEO.CanonicalURL = pagepath.PublicURL(b.baseURL, filePath)
	}

	return data
}

// buildPage computes the unpublished row for one intent, payload included.
func (b *pageBuilder) buildPage(
	business *entity.Business,
	updateID uuid.UUID,
	content entity.UpdateContent,
	intent entity.IntentType,
	batchID uuid.UUID,
	now time.Time,
) (*entity.GeneratedPage, error) {
	filePath := pagepath.FilePath(&business.Profile, intent, updateID, content.ContentText)
	data := b.pageData(business.Profile, content, intent, filePath, now)

	payload, err := codec.Encode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s page", intent)
	}

	sizeKB, err := b.estimateSizeKB(content.ContentText, &business.Profile)
	if err != nil {
		return nil, err
	}

	return &entity.GeneratedPage{
		ID:              uuid.New(),
		BusinessID:      business.ID,
		UpdateID:        updateID,
		FilePath:        data.Intent.FilePath,
		Title:           data.SEO.Title,
		IntentType:      intent,
		PageVariant:     data.Intent.Variant,
		CompressedData:  payload,
		EstimatedSizeKB: sizeKB,
		BatchID:         batchID,
		ExpiresAt:       clampExpiry(content.ExpiresAt, now),
		CreatedAt:       now,
	}, nil
}

// estimateSizeKB is base overhead + content/1024 + serialized business/1024, rounded up.
func (b *pageBuilder) estimateSizeKB(contentText string, profile *entity.BusinessProfile) (int, error) {
	businessJSON, err := json.Marshal(profile)
	if err != nil {
		return 0, errors.Wrap(err, "serialize business for size estimate")
	}

	kb := float64(b.baseOverheadKB) + float64(len(contentText))/1024 + float64(len(businessJSON))/1024

	return int(math.Ceil(kb)), nil
}

// livePageData builds profile-only page data for a request path that has no
// generated page behind it.
func (b *pageBuilder) livePageData(profile entity.BusinessProfile, requestPath string, now time.Time) *entity.PageData {
	content := entity.UpdateContent{
		ContentText: profileSummary(&profile),
		Category:    entity.UpdateCategoryGeneral,
	}
	data := b.pageData(profile, content, pagepath.IntentFromPath(requestPath), requestPath, now)
	data.Intent.Variant = "profile"

	return data
}

// clampExpiry keeps an expiry from preceding the page's creation.
func clampExpiry(expiresAt *time.Time, now time.Time) *time.Time {
	if expiresAt == nil {
		return nil
	}
	clamped := expiresAt.UTC()
	if clamped.Before(now) {
		clamped = now
	}

	return &clamped
}

func seoTitle(intent entity.IntentType, p *entity.BusinessProfile, content string) string {
	category := strings.ToLower(p.Category)
	city := p.Address.City + ", " + p.Address.State
	headline := headline(content)

	switch intent {
	case entity.IntentLocal:
		return p.Name + " near me in " + city + ": " + headline
	case entity.IntentCategory:
		return "Best " + category + " in " + city + ": " + p.Name
	case entity.IntentBrandedLocal:
		return p.Name + " " + p.Address.City + ": " + headline
	case entity.IntentServiceUrgent:
		return p.Name + " open now in " + p.Address.City + ": " + headline
	case entity.IntentCompetitive:
		return "Why choose " + p.Name + " for " + category + " in " + city
	default:
		return p.Name + ": " + headline
	}
}

func seoDescription(p *entity.BusinessProfile, content string) string {
	desc := strings.TrimSpace(content)
	if desc == "" {
		desc = profileSummary(p)
	} else {
		desc = p.Name + " in " + p.Address.City + ", " + p.Address.State + ": " + desc
	}

	return truncateRunes(desc, descriptionMaxRunes)
}

func seoKeywords(intent entity.IntentType, p *entity.BusinessProfile) []string {
	category := strings.ToLower(p.Category)
	city := strings.ToLower(p.Address.City)
	keywords := []string{
		strings.ToLower(p.Name),
		category,
		category + " " + city,
	}

	switch intent {
	case entity.IntentLocal:
		keywords = append(keywords, category+" near me")
	case entity.IntentCategory:
		keywords = append(keywords, "best "+category+" "+city)
	case entity.IntentBrandedLocal:
		keywords = append(keywords, strings.ToLower(p.Name)+" "+city)
	case entity.IntentServiceUrgent:
		keywords = append(keywords, category+" open now")
	case entity.IntentCompetitive:
		keywords = append(keywords, "top rated "+category+" "+city)
	}

	return keywords
}

// profileSummary is the content text of a page rendered from the profile alone.
func profileSummary(p *entity.BusinessProfile) string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}

	summary := p.Name + " is a " + strings.ToLower(p.Category) + " in " + p.Address.City + ", " + p.Address.State + "."
	if p.Hours != "" {
		summary += " Hours: " + p.Hours + "."
	}

	return summary
}

// headline is the first sentence of content, cut at a word boundary.
func headline(content string) string {
	content = strings.TrimSpace(content)
	if i := strings.IndexAny(content, ".!?\n"); i > 0 {
		content = content[:i]
	}

	return truncateRunes(content, headlineMaxRunes)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,;:-") + "…"
}
