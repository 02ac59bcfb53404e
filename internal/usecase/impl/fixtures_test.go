package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"pagecast/config"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"
	"pagecast/internal/domain/repository"
	mockRepo "pagecast/internal/mocks/repository"
	mockSvc "pagecast/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			CacheControl: constants.CacheControlStatic,
		},
		Cache: &config.CacheConfig{
			PurgeTimeout: time.Second,
		},
		Generation: &config.GenerationConfig{
			BaseOverheadKB: 15,
			Concurrency:    4,
		},
		QRCode: &config.QRCodeConfig{},
	}
}

func testBusiness() *entity.Business {
	return &entity.Business{
		ID:   uuid.MustParse("9b1c2d3e-4f50-4a6b-8c7d-0e1f2a3b4c5d"),
		Slug: "joes-pizza",
		Profile: entity.BusinessProfile{
			Name:     "Joe's Pizza",
			Category: "Pizza",
			Slug:     "joes-pizza",
			Address:  entity.Address{Street: "12 Main St", City: "Austin", State: "TX"},
			Phone:    "5125550100",
			Hours:    "Mon-Sun 11-22",
		},
	}
}

func testUpdate(businessID uuid.UUID) *entity.Update {
	return &entity.Update{
		ID:          uuid.MustParse("3f2a9c4e-1b2d-4e5f-8a9b-0c1d2e3f4a5b"),
		BusinessID:  businessID,
		ContentText: "Half price slices every Tuesday. Bring a friend!",
		Category:    entity.UpdateCategorySpecial,
		Status:      entity.UpdateStatusDraft,
	}
}

// testPage builds an unpublished page with a valid payload.
func testPage(t *testing.T, intent entity.IntentType) *entity.GeneratedPage {
	t.Helper()

	business := testBusiness()
	update := testUpdate(business.ID)
	content := entity.UpdateContent{ContentText: update.ContentText, Category: update.Category}

	page, err := newPageBuilder(15, "").buildPage(business, update.ID, content, intent, uuid.New(), fixedNow)
	require.NoError(t, err)

	return page
}

// stubRenderer renders predictable one-line documents.
type stubRenderer struct{}

func (stubRenderer) Render(intent entity.IntentType, data *entity.PageData) (string, error) {
	return "<html>" + string(intent) + "|" + data.SEO.Title + "</html>", nil
}

func (stubRenderer) RenderFallback(requestPath string) string {
	return "<html>not here: " + requestPath + "</html>"
}

func (stubRenderer) RenderSitemap(baseURL string, pages []*entity.GeneratedPage) ([]byte, error) {
	return []byte("<urlset count=\"" + strconv.Itoa(len(pages)) + "\"/>"), nil
}

func (stubRenderer) RenderRobots(baseURL string) []byte {
	return []byte("Sitemap: " + baseURL + "/sitemap.xml\n")
}

// inlineTx runs transaction bodies directly against pageRepo.
func inlineTx(t *testing.T, pageRepo repository.PageRepository) *mockRepo.MockTransactionManager {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPageRepository().Return(pageRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

type siteDeps struct {
	store       *mockSvc.MockObjectStore
	invalidator *mockSvc.MockTagInvalidator
}

// newTestSite builds a SiteWriter over mocks. Pending invalidations are
// drained before the mocks assert their expectations.
func newTestSite(t *testing.T, cfg *config.Config, pageRepo repository.PageRepository) (*SiteWriter, siteDeps) {
	t.Helper()

	deps := siteDeps{
		store:       mockSvc.NewMockObjectStore(t),
		invalidator: mockSvc.NewMockTagInvalidator(t),
	}
	site := newSiteWriter(cfg, pageRepo, deps.store, stubRenderer{}, deps.invalidator, discardLogger())
	t.Cleanup(func() { site.Drain(context.Background()) })

	return site, deps
}

func (d siteDeps) expectInvalidation() {
	d.invalidator.EXPECT().
		InvalidateTag(mock.Anything, constants.CacheTagPublishedPages).
		Return(nil).
		Once()
}
