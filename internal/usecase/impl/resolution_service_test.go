package impl

import (
	"context"
	"testing"
	"time"

	"pagecast/config"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/domain/repository"
	"pagecast/internal/domain/service"
	mockRepo "pagecast/internal/mocks/repository"
	mockSvc "pagecast/internal/mocks/service"
	"pagecast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolutionMocks struct {
	siteDeps
	pageRepo     *mockRepo.MockPageRepository
	businessRepo *mockRepo.MockBusinessRepository
	cache        *mockSvc.MockResponseCache
}

func newTestResolutionService(t *testing.T, cfg *config.Config) (*resolutionService, resolutionMocks) {
	t.Helper()

	m := resolutionMocks{
		pageRepo:     mockRepo.NewMockPageRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		cache:        mockSvc.NewMockResponseCache(t),
	}
	site, deps := newTestSite(t, cfg, m.pageRepo)
	m.siteDeps = deps

	srv := NewResolutionService(cfg, m.pageRepo, m.businessRepo, deps.store, stubRenderer{}, m.cache, site, discardLogger()).(*resolutionService)
	srv.now = func() time.Time { return fixedNow }

	return srv, m
}

func (m resolutionMocks) expectCacheMiss(path string) {
	m.cache.EXPECT().Get(mock.Anything, path).Return(nil, nil).Once()
}

func (m resolutionMocks) expectCacheWrite(path string, source usecase.ResolutionSource) {
	m.cache.EXPECT().
		Set(mock.Anything, path, mock.MatchedBy(func(resp *service.CachedResponse) bool {
			return resp.Source == string(source)
		}), constants.CacheTagPublishedPages).
		Return(nil).
		Once()
}

func stamped(body string, expiresAt time.Time) *service.StoredObject {
	return &service.StoredObject{
		Body:         []byte(body),
		ContentType:  constants.ContentTypeHTML,
		CacheControl: constants.CacheControlStatic,
		Metadata:     map[string]string{constants.MetadataExpiresAt: expiresAt.Format(time.RFC3339)},
	}
}

func TestResolutionService_Resolve_StaticObject(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	path := "/austin-tx/joes-pizza/offer/half-price"

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(path)).Return(stamped("<html>static</html>", fixedNow.Add(time.Hour)), nil)
	m.expectCacheWrite(path, usecase.SourceStatic)

	res := srv.Resolve(context.Background(), "/Austin-TX/joes-pizza/offer/half-price/")
	assert.True(t, res.Found)
	assert.Equal(t, usecase.SourceStatic, res.Source)
	assert.Equal(t, "<html>static</html>", string(res.Body))
	assert.Equal(t, constants.CacheControlStatic, res.CacheControl)
	assert.NotEmpty(t, res.ETag)
	assert.False(t, res.Cached)
}

func TestResolutionService_Resolve_CacheEntryCarriesExpiry(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	page := testPage(t, entity.IntentDirect)
	page.Published = true
	expiresAt := fixedNow.Add(2 * time.Hour)
	page.ExpiresAt = &expiresAt
	path := page.FilePath

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(path)).Return(nil, nil)
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(page, nil)
	m.cache.EXPECT().
		Set(mock.Anything, path, mock.MatchedBy(func(resp *service.CachedResponse) bool {
			return resp.ExpiresAt != nil && resp.ExpiresAt.Equal(expiresAt)
		}), constants.CacheTagPublishedPages).
		Return(nil).
		Once()

	res := srv.Resolve(context.Background(), path)
	assert.Equal(t, usecase.SourceDatabase, res.Source)
	require.NotNil(t, res.ExpiresAt)
	assert.True(t, res.ExpiresAt.Equal(expiresAt))
}

func TestResolutionService_Resolve_StaticEntryUsesStamp(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	path := "/austin-tx/joes-pizza/offer/half-price"
	expiresAt := fixedNow.Add(time.Hour)

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(path)).Return(stamped("<html>static</html>", expiresAt), nil)
	m.cache.EXPECT().
		Set(mock.Anything, path, mock.MatchedBy(func(resp *service.CachedResponse) bool {
			return resp.ExpiresAt != nil && resp.ExpiresAt.Equal(expiresAt)
		}), constants.CacheTagPublishedPages).
		Return(nil).
		Once()

	res := srv.Resolve(context.Background(), path)
	assert.Equal(t, usecase.SourceStatic, res.Source)
}

func TestResolutionService_Resolve_CacheHit(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	path := "/austin-tx/joes-pizza"

	m.cache.EXPECT().Get(mock.Anything, path).Return(&service.CachedResponse{
		HTML:         "<html>cached</html>",
		ContentType:  constants.ContentTypeHTML,
		CacheControl: constants.CacheControlDatabase,
		Source:       string(usecase.SourceDatabase),
	}, nil)

	res := srv.Resolve(context.Background(), path)
	assert.True(t, res.Found)
	assert.True(t, res.Cached)
	assert.Equal(t, usecase.SourceDatabase, res.Source)
	assert.Equal(t, "<html>cached</html>", string(res.Body))
}

func TestResolutionService_Resolve_ExpiredStampFallsThroughToDatabase(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	page := testPage(t, entity.IntentLocal)
	page.Published = true
	path := page.FilePath

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(path)).Return(stamped("<html>old</html>", fixedNow), nil)
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(page, nil)
	m.expectCacheWrite(path, usecase.SourceDatabase)

	res := srv.Resolve(context.Background(), path)
	assert.True(t, res.Found)
	assert.Equal(t, usecase.SourceDatabase, res.Source)
	assert.Equal(t, constants.CacheControlDatabase, res.CacheControl)
	assert.Contains(t, string(res.Body), "local|"+page.Title)
}

func TestResolutionService_Resolve_StoreErrorFallsThrough(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	page := testPage(t, entity.IntentDirect)
	path := page.FilePath

	m.cache.EXPECT().Get(mock.Anything, path).Return(nil, errors.New("redis down"))
	m.store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("bucket down"))
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(page, nil)
	m.cache.EXPECT().Set(mock.Anything, path, mock.Anything, constants.CacheTagPublishedPages).Return(errors.New("redis down"))

	res := srv.Resolve(context.Background(), path)
	assert.True(t, res.Found)
	assert.Equal(t, usecase.SourceDatabase, res.Source)
}

func TestResolutionService_Resolve_LiveFromBusiness(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	business := testBusiness()
	path := "/austin-tx/joes-pizza/near-me"

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(nil, repository.ErrPageNotFound)
	m.businessRepo.EXPECT().FindBusinessBySlug(mock.Anything, "joes-pizza").Return(business, nil)

	res := srv.Resolve(context.Background(), path)
	assert.True(t, res.Found)
	assert.Equal(t, usecase.SourceLive, res.Source)
	assert.Equal(t, constants.CacheControlLive, res.CacheControl)
	assert.Contains(t, string(res.Body), "Joe's Pizza")
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolutionService_Resolve_DuePageIsSkipped(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	page := testPage(t, entity.IntentDirect)
	due := fixedNow.Add(-time.Minute)
	page.ExpiresAt = &due
	path := page.FilePath

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(page, nil)
	m.businessRepo.EXPECT().FindBusinessBySlug(mock.Anything, "joes-pizza").Return(nil, repository.ErrBusinessNotFound)

	res := srv.Resolve(context.Background(), path)
	assert.False(t, res.Found)
	assert.Equal(t, usecase.SourceFallback, res.Source)
}

func TestResolutionService_Resolve_Fallback(t *testing.T) {
	srv, m := newTestResolutionService(t, testConfig())
	incomplete := testBusiness()
	incomplete.Profile.Category = ""
	path := "/nowhere-zz/joes-pizza/offer/gone"

	m.expectCacheMiss(path)
	m.store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, path).Return(nil, errors.New("connection refused"))
	m.businessRepo.EXPECT().FindBusinessBySlug(mock.Anything, "joes-pizza").Return(incomplete, nil)

	res := srv.Resolve(context.Background(), path)
	assert.False(t, res.Found)
	assert.Equal(t, usecase.SourceFallback, res.Source)
	assert.Equal(t, constants.CacheControlNoStore, res.CacheControl)
	assert.Contains(t, string(res.Body), path)
}

func TestResolutionService_Resolve_ReservedDocuments(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.PublicBaseURL = "https://pages.example.com"
	srv, m := newTestResolutionService(t, cfg)

	m.expectCacheMiss("/robots.txt")
	m.store.EXPECT().Get(mock.Anything, constants.RobotsKey).Return(nil, nil)

	res := srv.Resolve(context.Background(), "/robots.txt")
	require.True(t, res.Found)
	assert.Equal(t, constants.ContentTypeText, res.ContentType)
	assert.Contains(t, string(res.Body), "https://pages.example.com/sitemap.xml")

	m.expectCacheMiss("/sitemap.xml")
	m.store.EXPECT().Get(mock.Anything, constants.SitemapKey).Return(&service.StoredObject{
		Body:        []byte("<urlset/>"),
		ContentType: constants.ContentTypeXML,
	}, nil)
	m.expectCacheWrite("/sitemap.xml", usecase.SourceStatic)

	res = srv.Resolve(context.Background(), "/sitemap.xml")
	require.True(t, res.Found)
	assert.Equal(t, constants.ContentTypeXML, res.ContentType)
	assert.Equal(t, "<urlset/>", string(res.Body))
}

func TestStampExpired(t *testing.T) {
	obj := func(stamp string) *service.StoredObject {
		return &service.StoredObject{Metadata: map[string]string{constants.MetadataExpiresAt: stamp}}
	}

	assert.False(t, stampExpired(&service.StoredObject{}, fixedNow))
	assert.False(t, stampExpired(obj("not a time"), fixedNow))
	assert.False(t, stampExpired(obj(fixedNow.Add(time.Second).Format(time.RFC3339)), fixedNow))
	assert.True(t, stampExpired(obj(fixedNow.Format(time.RFC3339)), fixedNow))
}
