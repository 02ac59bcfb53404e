package impl

import (
	"context"
	"log/slog"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/domain/repository"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"
	"pagecast/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// publishService implements the PublishUsecase interface.
type publishService struct {
	txManager   repository.TransactionManager
	pageRepo    repository.PageRepository
	updateRepo  repository.UpdateRepository
	site        *SiteWriter
	store       service.ObjectStore
	publisher   service.EventPublisher
	qrcodes     service.QRCodeService
	baseURL     string
	concurrency int
	now         func() time.Time
	logger      *slog.Logger
}

// PublishParams holds dependencies for the publish service, injected by Fx
type PublishParams struct {
	fx.In

	Config     *config.Config
	TxManager  repository.TransactionManager
	PageRepo   repository.PageRepository
	UpdateRepo repository.UpdateRepository
	Site       *SiteWriter
	Store      service.ObjectStore
	Publisher  service.EventPublisher
	QRCodes    service.QRCodeService
	Logger     *slog.Logger
}

// NewPublishService is the constructor for publishService.
func NewPublishService(params PublishParams) usecase.PublishUsecase {
	srv := &publishService{
		txManager:   params.TxManager,
		pageRepo:    params.PageRepo,
		updateRepo:  params.UpdateRepo,
		site:        params.Site,
		store:       params.Store,
		publisher:   params.Publisher,
		baseURL:     params.Config.Storage.PublicBaseURL,
		concurrency: params.Config.Generation.Concurrency,
		now:         time.Now,
		logger:      params.Logger,
	}
	if params.Config.QRCode.Enabled && srv.baseURL != "" {
		srv.qrcodes = params.QRCodes
	}

	return srv
}

func (srv *publishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish writes every selected page to the object store and marks it live.
// Pages are processed concurrently; one failing page never cancels another.
func (srv *publishService) Publish(ctx context.Context, sel *usecase.PageSelection) (*usecase.PublishResult, error) {
	pages, _, itemErrs, err := srv.selectPages(ctx, sel, false)
	if err != nil {
		return nil, err
	}

	published := make([]*usecase.PublishedPage, len(pages))
	failures := make([]error, len(pages))

	g := srv.group()
	for i, page := range pages {
		g.Go(func() error {
			published[i], failures[i] = srv.publishOne(ctx, page)

			return nil
		})
	}
	_ = g.Wait()

	result := &usecase.PublishResult{
		PublishedPages: make([]usecase.PublishedPage, 0, len(pages)),
		Errors:         append([]domainerrors.ItemError{}, itemErrs...),
	}
	var livePages []*entity.GeneratedPage
	for i, page := range pages {
		if failures[i] != nil {
			srv.log(ctx).Warn("[Publish] Page failed",
				slog.String("page_id", page.ID.String()),
				slog.Any("error", failures[i]),
			)
			result.Errors = append(result.Errors, domainerrors.NewItemError(page.ID.String(), failures[i]))

			continue
		}
		result.PublishedPages = append(result.PublishedPages, *published[i])
		livePages = append(livePages, page)
	}

	if len(livePages) > 0 {
		srv.markUpdatesPublished(ctx, livePages)
		srv.site.LiveSetChanged(ctx)
		srv.announce(ctx, sel, livePages, result.PublishedPages)
	}

	srv.log(ctx).Info("[Publish] Batch published",
		slog.Int("published", len(result.PublishedPages)),
		slog.Int("failed", len(result.Errors)),
	)

	return result, nil
}

func (srv *publishService) publishOne(ctx context.Context, page *entity.GeneratedPage) (*usecase.PublishedPage, error) {
	if page.Expired {
		return nil, domainerrors.ErrValidationFailed.WithDetails("page has expired, extend it before publishing")
	}

	publishedAt := srv.now().UTC()
	written := false
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		pageRepo := factory.NewPageRepository()

		superseded, err := pageRepo.UnpublishOtherLive(ctx, page.FilePath, page.ID)
		if err != nil {
			return err
		}
		if superseded > 0 {
			srv.log(ctx).Info("[Publish] Superseded live pages at path",
				slog.String("file_path", page.FilePath),
				slog.Int64("count", superseded),
			)
		}

		if err := pageRepo.MarkPublished(ctx, page.ID, publishedAt); err != nil {
			return err
		}

		// The object is written last so a failed write rolls the rows back.
		if err := srv.site.PutPage(ctx, page); err != nil {
			return err
		}
		written = true

		return nil
	})
	if err != nil {
		if written {
			srv.restorePath(ctx, page)
		}

		return nil, mapRepoErr(err, "publish page")
	}

	pageURL := pagepath.PublicURL(srv.baseURL, page.FilePath)
	srv.writeQRCode(ctx, page, pageURL)

	return &usecase.PublishedPage{
		ID:          page.ID,
		URL:         pageURL,
		PublishedAt: publishedAt,
	}, nil
}

// restorePath undoes an object write whose transaction did not commit. The
// page still live at the path gets its object back; with none, the write is
// removed.
func (srv *publishService) restorePath(ctx context.Context, page *entity.GeneratedPage) {
	previous, err := srv.pageRepo.FindLivePageByPath(ctx, page.FilePath)
	switch {
	case err == nil && previous.ID == page.ID:
		// Republish of a live page; the rewritten object matches its row.
	case err == nil:
		err = srv.site.PutPage(ctx, previous)
	case errors.Is(err, repository.ErrPageNotFound):
		err = srv.site.RemovePage(ctx, page)
	}
	if err != nil {
		srv.log(ctx).Error("[Publish] Failed to restore path after rollback",
			slog.String("page_id", page.ID.String()),
			slog.String("file_path", page.FilePath),
			slog.Any("error", err),
		)
	}
}

// writeQRCode stores a storefront QR code next to the page. Failures only log.
func (srv *publishService) writeQRCode(ctx context.Context, page *entity.GeneratedPage, pageURL string) {
	if srv.qrcodes == nil {
		return
	}

	png, err := srv.qrcodes.GeneratePageQR(pageURL)
	if err == nil {
		err = srv.store.Put(ctx, pagepath.QRCodeKey(page.FilePath), png, service.PutOptions{
			ContentType:  constants.ContentTypePNG,
			CacheControl: constants.CacheControlStatic,
			Metadata:     objectMetadata(page),
		})
	}
	if err != nil {
		srv.log(ctx).Warn("[Publish] Failed to write QR code",
			slog.String("page_id", page.ID.String()),
			slog.Any("error", err),
		)
	}
}

// markUpdatesPublished moves each source update of the batch to published.
func (srv *publishService) markUpdatesPublished(ctx context.Context, pages []*entity.GeneratedPage) {
	seen := make(map[uuid.UUID]bool)
	for _, page := range pages {
		if seen[page.UpdateID] {
			continue
		}
		seen[page.UpdateID] = true

		if err := srv.updateRepo.UpdateStatus(ctx, page.UpdateID, entity.UpdateStatusPublished); err != nil {
			srv.log(ctx).Warn("[Publish] Failed to mark update published",
				slog.String("update_id", page.UpdateID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (srv *publishService) announce(ctx context.Context, sel *usecase.PageSelection, pages []*entity.GeneratedPage, published []usecase.PublishedPage) {
	event := &service.PagesPublishedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		PublishedBy: deliverycontext.GetCaller(ctx),
		PageIDs:     make([]string, 0, len(pages)),
		FilePaths:   make([]string, 0, len(pages)),
		PublishedAt: published[len(published)-1].PublishedAt.Format(time.RFC3339),
	}
	if sel.BatchID != nil {
		event.BatchID = sel.BatchID.String()
	}
	for _, page := range pages {
		event.PageIDs = append(event.PageIDs, page.ID.String())
		event.FilePaths = append(event.FilePaths, page.FilePath)
	}

	if err := srv.publisher.PublishPagesEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("[Publish] Failed to publish pages event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

// Unpublish removes stored objects and clears published, keeping the rows.
func (srv *publishService) Unpublish(ctx context.Context, sel *usecase.PageSelection) (*usecase.BatchResult, error) {
	return srv.runBatch(ctx, sel, false, "Unpublish", func(ctx context.Context, page *entity.GeneratedPage) error {
		if err := srv.site.RemovePage(ctx, page); err != nil {
			return err
		}

		return mapRepoErr(srv.pageRepo.MarkUnpublished(ctx, page.ID), "mark page unpublished")
	})
}

// Delete removes stored objects and rows. Pages that no longer exist count
// as deleted.
func (srv *publishService) Delete(ctx context.Context, sel *usecase.PageSelection) (*usecase.BatchResult, error) {
	return srv.runBatch(ctx, sel, true, "Delete", func(ctx context.Context, page *entity.GeneratedPage) error {
		if err := srv.site.RemovePage(ctx, page); err != nil {
			return err
		}

		_, err := srv.pageRepo.DeletePage(ctx, page.ID)

		return mapRepoErr(err, "delete page")
	})
}

func (srv *publishService) runBatch(
	ctx context.Context,
	sel *usecase.PageSelection,
	missingOK bool,
	action string,
	fn func(ctx context.Context, page *entity.GeneratedPage) error,
) (*usecase.BatchResult, error) {
	pages, missing, itemErrs, err := srv.selectPages(ctx, sel, missingOK)
	if err != nil {
		return nil, err
	}

	failures := make([]error, len(pages))
	g := srv.group()
	for i, page := range pages {
		g.Go(func() error {
			failures[i] = fn(ctx, page)

			return nil
		})
	}
	_ = g.Wait()

	result := &usecase.BatchResult{
		Succeeded: make([]uuid.UUID, 0, len(pages)),
		Errors:    append([]domainerrors.ItemError{}, itemErrs...),
	}
	result.Succeeded = append(result.Succeeded, missing...)
	for i, page := range pages {
		if failures[i] != nil {
			srv.log(ctx).Warn("[Publish] "+action+" failed",
				slog.String("page_id", page.ID.String()),
				slog.Any("error", failures[i]),
			)
			result.Errors = append(result.Errors, domainerrors.NewItemError(page.ID.String(), failures[i]))

			continue
		}
		result.Succeeded = append(result.Succeeded, page.ID)
	}

	if len(pages) > 0 {
		srv.site.LiveSetChanged(ctx)
	}

	srv.log(ctx).Info("[Publish] Batch "+action,
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Errors)),
	)

	return result, nil
}

// Preview renders a page from its payload without touching the object store.
func (srv *publishService) Preview(ctx context.Context, pageID uuid.UUID) (string, error) {
	page, err := srv.pageRepo.FindPageByID(ctx, pageID)
	if err != nil {
		return "", mapRepoErr(err, "find page")
	}

	return srv.site.RenderPage(page)
}

// selectPages loads the selection: explicit ids in order, then batch pages
// not already named. Unknown ids are returned as missing when missingOK,
// otherwise as item errors.
func (srv *publishService) selectPages(
	ctx context.Context,
	sel *usecase.PageSelection,
	missingOK bool,
) (pages []*entity.GeneratedPage, missing []uuid.UUID, itemErrs []domainerrors.ItemError, err error) {
	if sel.IsEmpty() {
		return nil, nil, nil, domainerrors.ErrValidationFailed.WithDetails("pageIds or batchId is required")
	}

	seen := make(map[uuid.UUID]bool)
	for _, id := range sel.PageIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		page, findErr := srv.pageRepo.FindPageByID(ctx, id)
		if findErr != nil {
			findErr = mapRepoErr(findErr, "find page")
			if missingOK && errors.Is(findErr, domainerrors.ErrPageNotFound) {
				missing = append(missing, id)

				continue
			}
			itemErrs = append(itemErrs, domainerrors.NewItemError(id.String(), findErr))

			continue
		}
		pages = append(pages, page)
	}

	if sel.BatchID != nil {
		batch, findErr := srv.pageRepo.FindPagesByBatch(ctx, *sel.BatchID)
		if findErr != nil {
			return nil, nil, nil, mapRepoErr(findErr, "find batch pages")
		}
		for _, page := range batch {
			if !seen[page.ID] {
				seen[page.ID] = true
				pages = append(pages, page)
			}
		}
	}

	return pages, missing, itemErrs, nil
}

func (srv *publishService) group() *errgroup.Group {
	g := new(errgroup.Group)
	if srv.concurrency > 0 {
		g.SetLimit(srv.concurrency)
	}

	return g
}
