package impl

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"pagecast/internal/domain/codec"
	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBuilder_EstimateSizeKB(t *testing.T) {
	b := newPageBuilder(15, "")
	profile := &entity.BusinessProfile{Name: "A"}

	kb, err := b.estimateSizeKB("", profile)
	require.NoError(t, err)
	assert.Equal(t, 16, kb, "any serialized profile rounds up to a whole KB")

	kb, err = b.estimateSizeKB(strings.Repeat("x", 4096), profile)
	require.NoError(t, err)
	assert.Equal(t, 20, kb)
}

func TestPageBuilder_BuildPage(t *testing.T) {
	b := newPageBuilder(15, "https://pages.example.com")
	business := testBusiness()
	update := testUpdate(business.ID)
	expires := fixedNow.Add(48 * time.Hour)
	content := entity.UpdateContent{ContentText: update.ContentText, Category: update.Category, ExpiresAt: &expires}
	batchID := uuid.New()

	page, err := b.buildPage(business, update.ID, content, entity.IntentCategory, batchID, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, business.ID, page.BusinessID)
	assert.Equal(t, batchID, page.BatchID)
	assert.Equal(t, "special", page.PageVariant)
	assert.True(t, strings.HasPrefix(page.FilePath, "/austin-tx/joes-pizza/"), page.FilePath)
	assert.Equal(t, "Best pizza in Austin, TX: Joe's Pizza", page.Title)
	assert.Equal(t, expires, *page.ExpiresAt)
	assert.Equal(t, fixedNow, page.CreatedAt)
	assert.False(t, page.Published)
	assert.NotEmpty(t, page.CompressedData)

	data, err := codec.Decode(page.CompressedData)
	require.NoError(t, err)
	require.NotNil(t, data.GeneratedAt)
	assert.True(t, data.GeneratedAt.Equal(fixedNow))
}

func TestPageBuilder_PageData(t *testing.T) {
	b := newPageBuilder(15, "https://pages.example.com/")
	business := testBusiness()
	content := entity.UpdateContent{ContentText: "Fresh basil arrived. Come taste it."}

	data := b.pageData(business.Profile, content, entity.IntentServiceUrgent, "/austin-tx/joes-pizza/open-now/fresh-basil", fixedNow)
	assert.Equal(t, "Joe's Pizza open now in Austin: Fresh basil arrived", data.SEO.Title)
	assert.Equal(t, "https://pages.example.com/austin-tx/joes-pizza/open-now/fresh-basil", data.SEO.CanonicalURL)
	assert.Equal(t, "fresh-basil", data.Intent.Slug)
	assert.Equal(t, "general", data.Intent.Variant)
	assert.Contains(t, data.SEO.Keywords, "pizza open now")
	require.NotNil(t, data.GeneratedAt)
	assert.Equal(t, fixedNow, *data.GeneratedAt)
}

func TestPageBuilder_LivePageData(t *testing.T) {
	b := newPageBuilder(15, "")
	business := testBusiness()

	data := b.livePageData(business.Profile, "/austin-tx/joes-pizza", fixedNow)
	assert.Equal(t, entity.IntentDirect, data.Intent.Type)
	assert.Equal(t, "profile", data.Intent.Variant)
	assert.Equal(t, "Joe's Pizza is a pizza in Austin, TX. Hours: Mon-Sun 11-22.", data.Update.ContentText)
}

func TestClampExpiry(t *testing.T) {
	assert.Nil(t, clampExpiry(nil, fixedNow))

	past := fixedNow.Add(-time.Hour)
	assert.Equal(t, fixedNow, *clampExpiry(&past, fixedNow))

	future := fixedNow.Add(time.Hour)
	assert.Equal(t, future, *clampExpiry(&future, fixedNow))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))

	cut := truncateRunes("the quick brown fox jumps over the lazy dog", 20)
	assert.Equal(t, "the quick brown fox…", cut)

	accented := truncateRunes(strings.Repeat("é", 30), 10)
	assert.Equal(t, 11, utf8.RuneCountInString(accented))
}

func TestSEOTitle_DistinctPerIntent(t *testing.T) {
	profile := testBusiness().Profile
	seen := make(map[string]entity.IntentType)

	for _, intent := range entity.AllIntents {
		title := seoTitle(intent, &profile, "Half price slices")
		if other, ok := seen[title]; ok {
			t.Fatalf("%s and %s share title %q", intent, other, title)
		}
		seen[title] = intent
	}
}
