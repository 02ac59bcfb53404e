package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/domain/repository"
	"pagecast/internal/domain/service"
	mockRepo "pagecast/internal/mocks/repository"
	mockSvc "pagecast/internal/mocks/service"
	"pagecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publishMocks struct {
	siteDeps
	pageRepo   *mockRepo.MockPageRepository
	updateRepo *mockRepo.MockUpdateRepository
	publisher  *mockSvc.MockEventPublisher
	qrcodes    *mockSvc.MockQRCodeService
}

func newTestPublishService(t *testing.T, cfg *config.Config) (*publishService, publishMocks) {
	t.Helper()

	m := publishMocks{
		pageRepo:   mockRepo.NewMockPageRepository(t),
		updateRepo: mockRepo.NewMockUpdateRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		qrcodes:    mockSvc.NewMockQRCodeService(t),
	}
	site, deps := newTestSite(t, cfg, m.pageRepo)
	m.siteDeps = deps

	srv := NewPublishService(PublishParams{
		Config:     cfg,
		TxManager:  inlineTx(t, m.pageRepo),
		PageRepo:   m.pageRepo,
		UpdateRepo: m.updateRepo,
		Site:       site,
		Store:      deps.store,
		Publisher:  m.publisher,
		QRCodes:    m.qrcodes,
		Logger:     discardLogger(),
	}).(*publishService)
	srv.now = func() time.Time { return fixedNow }

	return srv, m
}

func (m publishMocks) expectPublish(page *entity.GeneratedPage, superseded int64) {
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil).Once()
	m.store.EXPECT().
		Put(mock.Anything, pagepath.StorageKey(page.FilePath), mock.Anything, mock.MatchedBy(func(opts service.PutOptions) bool {
			return opts.ContentType == constants.ContentTypeHTML &&
				opts.Metadata[constants.MetadataPageID] == page.ID.String()
		})).
		Return(nil).
		Once()
	m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, page.FilePath, page.ID).Return(superseded, nil).Once()
	m.pageRepo.EXPECT().MarkPublished(mock.Anything, page.ID, fixedNow).Return(nil).Once()
}

func TestPublishService_Publish(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	local := testPage(t, entity.IntentLocal)
	direct := testPage(t, entity.IntentDirect)

	m.expectPublish(local, 0)
	m.expectPublish(direct, 1)
	m.updateRepo.EXPECT().UpdateStatus(mock.Anything, local.UpdateID, entity.UpdateStatusPublished).Return(nil).Once()
	m.expectInvalidation()
	m.publisher.EXPECT().
		PublishPagesEvent(mock.Anything, mock.MatchedBy(func(event *service.PagesPublishedEvent) bool {
			return event.RequestID == "req-42" && event.PublishedBy == "scheduler" &&
				assert.ObjectsAreEqual([]string{local.ID.String(), direct.ID.String()}, event.PageIDs)
		})).
		Return(nil).
		Once()

	ctx := deliverycontext.WithCaller(deliverycontext.WithRequestID(context.Background(), "req-42"), "scheduler")
	result, err := srv.Publish(ctx, &usecase.PageSelection{PageIDs: []uuid.UUID{local.ID, direct.ID}})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.Len(t, result.PublishedPages, 2)
	assert.Equal(t, local.ID, result.PublishedPages[0].ID)
	assert.Equal(t, direct.ID, result.PublishedPages[1].ID)
	assert.Equal(t, local.FilePath, result.PublishedPages[0].URL)
	assert.Equal(t, fixedNow, result.PublishedPages[1].PublishedAt)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"errors":[]`)
}

func TestPublishService_Publish_PartialFailure(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	good := testPage(t, entity.IntentCategory)
	bad := testPage(t, entity.IntentCompetitive)
	expired := testPage(t, entity.IntentLocal)
	expired.Expired = true

	m.expectPublish(good, 0)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, bad.ID).Return(bad, nil)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, expired.ID).Return(expired, nil)
	m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, bad.FilePath, bad.ID).Return(0, nil)
	m.pageRepo.EXPECT().MarkPublished(mock.Anything, bad.ID, fixedNow).Return(nil)
	m.store.EXPECT().
		Put(mock.Anything, pagepath.StorageKey(bad.FilePath), mock.Anything, mock.Anything).
		Return(domainerrors.NewStoreError(errors.New("503"), "put object"))
	m.updateRepo.EXPECT().UpdateStatus(mock.Anything, good.UpdateID, entity.UpdateStatusPublished).Return(nil)
	m.expectInvalidation()
	m.publisher.EXPECT().PublishPagesEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{
		PageIDs: []uuid.UUID{good.ID, bad.ID, expired.ID},
	})
	require.NoError(t, err)
	require.Len(t, result.PublishedPages, 1)
	assert.Equal(t, good.ID, result.PublishedPages[0].ID)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, bad.ID.String(), result.Errors[0].ID)
	assert.Equal(t, "STORE_ERROR", result.Errors[0].Code)
	assert.Equal(t, expired.ID.String(), result.Errors[1].ID)
	assert.Equal(t, "VALIDATION_FAILED", result.Errors[1].Code)
}

func TestPublishService_Publish_RowFailureWritesNoObject(t *testing.T) {
	tests := map[string]struct {
		markErr error
		code    string
	}{
		"path conflict": {domainerrors.ErrPathConflict, "PATH_CONFLICT"},
		"database down": {errors.New("db down"), "STORE_ERROR"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv, m := newTestPublishService(t, testConfig())
			page := testPage(t, entity.IntentDirect)

			m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)
			m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, page.FilePath, page.ID).Return(0, nil)
			m.pageRepo.EXPECT().MarkPublished(mock.Anything, page.ID, mock.Anything).Return(tt.markErr)

			result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
			require.NoError(t, err)
			assert.Empty(t, result.PublishedPages)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.code, result.Errors[0].Code)
			m.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// commitFailingTx runs the transaction body and then fails as a commit would.
func commitFailingTx(t *testing.T, pageRepo repository.PageRepository) *mockRepo.MockTransactionManager {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPageRepository().Return(pageRepo)

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			if err := fn(factory); err != nil {
				return err
			}

			return errors.New("commit failed")
		})

	return txManager
}

func TestPublishService_Publish_CommitFailureRestoresPreviousObject(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	srv.txManager = commitFailingTx(t, m.pageRepo)
	page := testPage(t, entity.IntentDirect)
	previous := testPage(t, entity.IntentDirect)
	previous.Published = true

	key := pagepath.StorageKey(page.FilePath)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)
	m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, page.FilePath, page.ID).Return(1, nil)
	m.pageRepo.EXPECT().MarkPublished(mock.Anything, page.ID, fixedNow).Return(nil)
	m.store.EXPECT().
		Put(mock.Anything, key, mock.Anything, mock.MatchedBy(func(opts service.PutOptions) bool {
			return opts.Metadata[constants.MetadataPageID] == page.ID.String()
		})).
		Return(nil).
		Once()
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, page.FilePath).Return(previous, nil)
	m.store.EXPECT().
		Put(mock.Anything, key, mock.Anything, mock.MatchedBy(func(opts service.PutOptions) bool {
			return opts.Metadata[constants.MetadataPageID] == previous.ID.String()
		})).
		Return(nil).
		Once()

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
	require.NoError(t, err)
	assert.Empty(t, result.PublishedPages)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "STORE_ERROR", result.Errors[0].Code)
}

func TestPublishService_Publish_CommitFailureRemovesObject(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	srv.txManager = commitFailingTx(t, m.pageRepo)
	page := testPage(t, entity.IntentLocal)

	key := pagepath.StorageKey(page.FilePath)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)
	m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, page.FilePath, page.ID).Return(0, nil)
	m.pageRepo.EXPECT().MarkPublished(mock.Anything, page.ID, fixedNow).Return(nil)
	m.store.EXPECT().Put(mock.Anything, key, mock.Anything, mock.Anything).Return(nil).Once()
	m.pageRepo.EXPECT().FindLivePageByPath(mock.Anything, page.FilePath).Return(nil, repository.ErrPageNotFound)
	m.store.EXPECT().Get(mock.Anything, key).Return(ownedObject(page), nil)
	m.store.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	m.store.EXPECT().Delete(mock.Anything, pagepath.QRCodeKey(page.FilePath)).Return(nil).Once()

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
	require.NoError(t, err)
	assert.Empty(t, result.PublishedPages)
	assert.Len(t, result.Errors, 1)
}

func TestPublishService_Publish_RepublishIsIdempotent(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	page := testPage(t, entity.IntentDirect)
	page.Published = true
	earlier := fixedNow.Add(-time.Hour)
	page.PublishedAt = &earlier

	var bodies [][]byte
	for range 2 {
		m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil).Once()
		m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, page.FilePath, page.ID).Return(0, nil).Once()
		m.pageRepo.EXPECT().MarkPublished(mock.Anything, page.ID, fixedNow).Return(nil).Once()
		m.store.EXPECT().
			Put(mock.Anything, pagepath.StorageKey(page.FilePath), mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ string, body []byte, _ service.PutOptions) { bodies = append(bodies, body) }).
			Return(nil).
			Once()
		m.updateRepo.EXPECT().UpdateStatus(mock.Anything, page.UpdateID, entity.UpdateStatusPublished).Return(nil).Once()
		m.expectInvalidation()
		m.publisher.EXPECT().PublishPagesEvent(mock.Anything, mock.Anything).Return(nil).Once()
	}

	for range 2 {
		result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
		require.NoError(t, err)
		assert.Empty(t, result.Errors)
		assert.NotNil(t, result.Errors)
		require.Len(t, result.PublishedPages, 1)
		assert.Equal(t, fixedNow, result.PublishedPages[0].PublishedAt)
	}

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestPublishService_Publish_ByBatch(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	first := testPage(t, entity.IntentDirect)
	second := testPage(t, entity.IntentLocal)
	batchID := uuid.New()

	m.expectPublish(first, 0)
	m.pageRepo.EXPECT().FindPagesByBatch(mock.Anything, batchID).Return([]*entity.GeneratedPage{first, second}, nil)
	m.store.EXPECT().Put(mock.Anything, pagepath.StorageKey(second.FilePath), mock.Anything, mock.Anything).Return(nil)
	m.pageRepo.EXPECT().UnpublishOtherLive(mock.Anything, second.FilePath, second.ID).Return(0, nil)
	m.pageRepo.EXPECT().MarkPublished(mock.Anything, second.ID, fixedNow).Return(nil)
	m.updateRepo.EXPECT().UpdateStatus(mock.Anything, first.UpdateID, entity.UpdateStatusPublished).Return(nil).Once()
	m.expectInvalidation()
	m.publisher.EXPECT().
		PublishPagesEvent(mock.Anything, mock.MatchedBy(func(event *service.PagesPublishedEvent) bool {
			return event.BatchID == batchID.String() && len(event.PageIDs) == 2
		})).
		Return(nil)

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{
		PageIDs: []uuid.UUID{first.ID},
		BatchID: &batchID,
	})
	require.NoError(t, err)
	assert.Len(t, result.PublishedPages, 2)
}

func TestPublishService_Publish_WritesQRCode(t *testing.T) {
	cfg := testConfig()
	cfg.QRCode.Enabled = true
	cfg.Storage.PublicBaseURL = "https://pages.example.com"
	srv, m := newTestPublishService(t, cfg)
	page := testPage(t, entity.IntentDirect)

	m.expectPublish(page, 0)
	m.qrcodes.EXPECT().GeneratePageQR("https://pages.example.com"+page.FilePath).Return([]byte("png"), nil)
	m.store.EXPECT().
		Put(mock.Anything, pagepath.QRCodeKey(page.FilePath), []byte("png"), mock.MatchedBy(func(opts service.PutOptions) bool {
			return opts.ContentType == constants.ContentTypePNG
		})).
		Return(nil)
	m.updateRepo.EXPECT().UpdateStatus(mock.Anything, page.UpdateID, entity.UpdateStatusPublished).Return(nil)
	m.pageRepo.EXPECT().ListLivePages(mock.Anything, sitemapLimit).Return([]*entity.GeneratedPage{page}, nil)
	m.store.EXPECT().Put(mock.Anything, constants.SitemapKey, mock.Anything, mock.Anything).Return(nil)
	m.store.EXPECT().Put(mock.Anything, constants.RobotsKey, mock.Anything, mock.Anything).Return(nil)
	m.expectInvalidation()
	m.publisher.EXPECT().PublishPagesEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
	require.NoError(t, err)
	require.Len(t, result.PublishedPages, 1)
	assert.Equal(t, "https://pages.example.com"+page.FilePath, result.PublishedPages[0].URL)
}

func TestPublishService_Publish_Selection(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())

	_, err := srv.Publish(context.Background(), &usecase.PageSelection{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	missing := uuid.New()
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, missing).Return(nil, repository.ErrPageNotFound)

	result, err := srv.Publish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{missing}})
	require.NoError(t, err)
	assert.Empty(t, result.PublishedPages)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "PAGE_NOT_FOUND", result.Errors[0].Code)
}

func ownedObject(page *entity.GeneratedPage) *service.StoredObject {
	return &service.StoredObject{
		Body:        []byte("<html></html>"),
		ContentType: constants.ContentTypeHTML,
		Metadata:    objectMetadata(page),
	}
}

func TestPublishService_Unpublish(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	page := testPage(t, entity.IntentDirect)
	page.Published = true

	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(page.FilePath)).Return(ownedObject(page), nil)
	m.store.EXPECT().Delete(mock.Anything, pagepath.StorageKey(page.FilePath)).Return(nil).Once()
	m.store.EXPECT().Delete(mock.Anything, pagepath.QRCodeKey(page.FilePath)).Return(nil).Once()
	m.pageRepo.EXPECT().MarkUnpublished(mock.Anything, page.ID).Return(nil)
	m.expectInvalidation()

	result, err := srv.Unpublish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{page.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{page.ID}, result.Succeeded)
	assert.Empty(t, result.Errors)
}

func TestPublishService_Unpublish_LeavesObjectOfNewerPage(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	stale := testPage(t, entity.IntentDirect)
	newer := testPage(t, entity.IntentDirect)

	m.pageRepo.EXPECT().FindPageByID(mock.Anything, stale.ID).Return(stale, nil)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(stale.FilePath)).Return(ownedObject(newer), nil)
	m.pageRepo.EXPECT().MarkUnpublished(mock.Anything, stale.ID).Return(nil)
	m.expectInvalidation()

	result, err := srv.Unpublish(context.Background(), &usecase.PageSelection{PageIDs: []uuid.UUID{stale.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{stale.ID}, result.Succeeded)
	m.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPublishService_Delete(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	page := testPage(t, entity.IntentLocal)
	broken := testPage(t, entity.IntentCategory)
	gone := uuid.New()

	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, broken.ID).Return(broken, nil)
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, gone).Return(nil, repository.ErrPageNotFound)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(page.FilePath)).Return(nil, nil)
	m.store.EXPECT().Get(mock.Anything, pagepath.StorageKey(broken.FilePath)).Return(nil, errors.New("bucket unavailable"))
	m.pageRepo.EXPECT().DeletePage(mock.Anything, page.ID).Return(true, nil)
	m.expectInvalidation()

	result, err := srv.Delete(context.Background(), &usecase.PageSelection{
		PageIDs: []uuid.UUID{page.ID, broken.ID, gone},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{gone, page.ID}, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, broken.ID.String(), result.Errors[0].ID)
}

func TestPublishService_Preview(t *testing.T) {
	srv, m := newTestPublishService(t, testConfig())
	page := testPage(t, entity.IntentServiceUrgent)

	m.pageRepo.EXPECT().FindPageByID(mock.Anything, page.ID).Return(page, nil)

	html, err := srv.Preview(context.Background(), page.ID)
	require.NoError(t, err)
	assert.Contains(t, html, "service_urgent|"+page.Title)

	corrupt := testPage(t, entity.IntentDirect)
	corrupt.CompressedData = []byte("{not json")
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, corrupt.ID).Return(corrupt, nil)

	_, err = srv.Preview(context.Background(), corrupt.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPayloadCorrupt)

	missing := uuid.New()
	m.pageRepo.EXPECT().FindPageByID(mock.Anything, missing).Return(nil, repository.ErrPageNotFound)

	_, err = srv.Preview(context.Background(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)
}
