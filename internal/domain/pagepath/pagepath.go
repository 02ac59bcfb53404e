// Package pagepath derives the addresses generated pages are served and
// stored under.
package pagepath

import (
	"path"
	"strings"
	"unicode"

	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	updateSlugWords  = 6
	updateSlugMaxLen = 48
	idSuffixLen      = 8
)

// Intent path segments.
const (
	segmentDirect        = "update"
	segmentLocal         = "near-me"
	segmentCategory      = "best-"
	segmentBrandedInfix  = "-in-"
	segmentServiceUrgent = "open-now"
	segmentCompetitive   = "why-choose"
)

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’':
			// "Joe's" -> "joes"
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}

// BusinessSlug is the routing slug of a business, derived from its name when
// the profile has none.
func BusinessSlug(profile *entity.BusinessProfile) string {
	if slug := Slugify(profile.Slug); slug != "" {
		return slug
	}

	return Slugify(profile.Name)
}

// LocationSegment is the leading "{city}-{state}" segment.
func LocationSegment(addr entity.Address) string {
	return Slugify(addr.City + " " + addr.State)
}

// IntentSegment distinguishes the variants of one update.
func IntentSegment(intent entity.IntentType, profile *entity.BusinessProfile) string {
	switch intent {
	case entity.IntentLocal:
		return segmentLocal
	case entity.IntentCategory:
		return segmentCategory + Slugify(profile.Category)
	case entity.IntentBrandedLocal:
		return BusinessSlug(profile) + segmentBrandedInfix + Slugify(profile.Address.City)
	case entity.IntentServiceUrgent:
		return segmentServiceUrgent
	case entity.IntentCompetitive:
		return segmentCompetitive
	default:
		return segmentDirect
	}
}

// UpdateSlug is the first words of the content followed by the first eight
// hex characters of the update id, so two updates never share a slug.
func UpdateSlug(content string, updateID uuid.UUID) string {
	words := strings.Split(Slugify(content), "-")
	if len(words) > updateSlugWords {
		words = words[:updateSlugWords]
	}
	slug := strings.Join(words, "-")
	for len(slug) > updateSlugMaxLen {
		cut := strings.LastIndex(slug, "-")
		if cut <= 0 {
			runes := []rune(slug)
			slug = string(runes[:min(len(runes), updateSlugMaxLen/4)])

			break
		}
		slug = slug[:cut]
	}

	suffix := strings.ReplaceAll(updateID.String(), "-", "")[:idSuffixLen]
	if slug == "" {
		return suffix
	}

	return slug + "-" + suffix
}

// FilePath builds "/{city}-{state}/{business}/{intent}/{update}". It is
// deterministic and differs per intent for the same business and update.
func FilePath(profile *entity.BusinessProfile, intent entity.IntentType, updateID uuid.UUID, content string) string {
	return "/" + strings.Join([]string{
		LocationSegment(profile.Address),
		BusinessSlug(profile),
		IntentSegment(intent, profile),
		UpdateSlug(content, updateID),
	}, "/")
}

// Normalize cleans a request path into the form file paths are stored in.
func Normalize(requestPath string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(requestPath))
	if cleaned == "/" {
		return cleaned
	}

	return strings.TrimSuffix(strings.ToLower(cleaned), "/")
}

// IsReserved reports whether p addresses the sitemap or robots document.
func IsReserved(p string) bool {
	trimmed := strings.Trim(p, "/")

	return trimmed == constants.SitemapKey || trimmed == constants.RobotsKey
}

// StorageKey is the object-store key of the index document for filePath.
// The two reserved documents are stored under their own names.
func StorageKey(filePath string) string {
	return documentKey(filePath, constants.IndexDocument)
}

// QRCodeKey is the object-store key of the storefront QR code for filePath.
func QRCodeKey(filePath string) string {
	return documentKey(filePath, constants.QRCodeDocument)
}

func documentKey(filePath, document string) string {
	trimmed := strings.Trim(Normalize(filePath), "/")
	if IsReserved(trimmed) && document == constants.IndexDocument {
		return trimmed
	}
	if trimmed == "" {
		return document
	}

	return trimmed + "/" + document
}

// RoutingSlug extracts the business slug from a request path: the second
// segment, or the only one for single-segment paths.
func RoutingSlug(requestPath string) string {
	segments := Segments(requestPath)
	switch len(segments) {
	case 0:
		return ""
	case 1:
		return segments[0]
	default:
		return segments[1]
	}
}

// IntentFromPath reads the intent segment of a request path, defaulting to direct.
func IntentFromPath(requestPath string) entity.IntentType {
	segments := Segments(requestPath)
	if len(segments) < 3 {
		return entity.IntentDirect
	}

	segment := segments[2]
	switch {
	case strings.HasPrefix(segment, segments[1]+segmentBrandedInfix):
		return entity.IntentBrandedLocal
	case segment == segmentLocal:
		return entity.IntentLocal
	case segment == segmentServiceUrgent:
		return entity.IntentServiceUrgent
	case segment == segmentCompetitive:
		return entity.IntentCompetitive
	case strings.HasPrefix(segment, segmentCategory):
		return entity.IntentCategory
	default:
		return entity.IntentDirect
	}
}

// Segments splits a normalized path into its non-empty segments.
func Segments(requestPath string) []string {
	trimmed := strings.Trim(Normalize(requestPath), "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

// PublicURL joins the public base URL and a file path.
func PublicURL(baseURL, filePath string) string {
	return strings.TrimSuffix(baseURL, "/") + Normalize(filePath)
}
