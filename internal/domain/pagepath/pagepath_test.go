package pagepath

import (
	"testing"

	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testUpdateID = uuid.MustParse("3f2a9c4e-1b2d-4e5f-8a9b-0c1d2e3f4a5b")

func joesPizza() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		Name:     "Joe's Pizza",
		Category: "Pizza Restaurant",
		Address:  entity.Address{City: "Seattle", State: "WA"},
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Joe's Pizza":        "joes-pizza",
		"  New   fall menu ": "new-fall-menu",
		"Sept 7-14!":         "sept-7-14",
		"Café Olé":           "café-olé",
		"---":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestFilePath_DistinctPerIntent(t *testing.T) {
	biz := joesPizza()
	content := "New fall menu available Sept 7-14"

	want := map[entity.IntentType]string{
		entity.IntentDirect:        "/seattle-wa/joes-pizza/update/new-fall-menu-available-sept-7-3f2a9c4e",
		entity.IntentLocal:         "/seattle-wa/joes-pizza/near-me/new-fall-menu-available-sept-7-3f2a9c4e",
		entity.IntentCategory:      "/seattle-wa/joes-pizza/best-pizza-restaurant/new-fall-menu-available-sept-7-3f2a9c4e",
		entity.IntentBrandedLocal:  "/seattle-wa/joes-pizza/joes-pizza-in-seattle/new-fall-menu-available-sept-7-3f2a9c4e",
		entity.IntentServiceUrgent: "/seattle-wa/joes-pizza/open-now/new-fall-menu-available-sept-7-3f2a9c4e",
		entity.IntentCompetitive:   "/seattle-wa/joes-pizza/why-choose/new-fall-menu-available-sept-7-3f2a9c4e",
	}

	seen := make(map[string]bool)
	for _, intent := range entity.AllIntents {
		got := FilePath(biz, intent, testUpdateID, content)
		assert.Equal(t, want[intent], got)
		assert.False(t, seen[got], "duplicate path %s", got)
		seen[got] = true

		// Paths round-trip through the request-side parsers.
		assert.Equal(t, intent, IntentFromPath(got))
		assert.Equal(t, "joes-pizza", RoutingSlug(got))
	}
}

func TestFilePath_UsesProfileSlug(t *testing.T) {
	biz := joesPizza()
	biz.Slug = "joes-pizza-capitol-hill"

	assert.Equal(t, "/seattle-wa/joes-pizza-capitol-hill/update/3f2a9c4e",
		FilePath(biz, entity.IntentDirect, testUpdateID, "  "))
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "seattle-wa/joes-pizza/update/x/index.html", StorageKey("/seattle-wa/joes-pizza/update/x"))
	assert.Equal(t, "seattle-wa/joes-pizza/update/x/index.html", StorageKey("/Seattle-WA/joes-pizza/update/x/"))
	assert.Equal(t, "index.html", StorageKey("/"))
	assert.Equal(t, "sitemap.xml", StorageKey("/sitemap.xml"))
	assert.Equal(t, "robots.txt", StorageKey("robots.txt"))
	assert.Equal(t, "seattle-wa/joes-pizza/update/x/qr.png", QRCodeKey("/seattle-wa/joes-pizza/update/x"))
}

func TestRoutingSlug(t *testing.T) {
	assert.Equal(t, "joes-pizza", RoutingSlug("/joes-pizza"))
	assert.Equal(t, "joes-pizza", RoutingSlug("/seattle-wa/joes-pizza"))
	assert.Equal(t, "", RoutingSlug("/"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/a/b", Normalize("a//b/"))
	assert.Equal(t, "/a", Normalize("/a/../a"))
	assert.Equal(t, "/etc", Normalize("/../../etc"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://pages.example/seattle-wa/x", PublicURL("https://pages.example/", "seattle-wa/x"))
}

func TestIntentFromPath_BrandedBeatsCategoryPrefix(t *testing.T) {
	biz := &entity.BusinessProfile{Name: "Best Buy", Category: "electronics", Address: entity.Address{City: "Seattle", State: "WA"}}

	assert.Equal(t, entity.IntentBrandedLocal, IntentFromPath(FilePath(biz, entity.IntentBrandedLocal, testUpdateID, "sale")))
	assert.Equal(t, entity.IntentCategory, IntentFromPath(FilePath(biz, entity.IntentCategory, testUpdateID, "sale")))
	assert.Equal(t, entity.IntentDirect, IntentFromPath("/seattle-wa/best-buy"))
}
