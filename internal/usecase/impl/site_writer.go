package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/codec"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/domain/repository"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"
	"pagecast/internal/util"

	"go.uber.org/fx"
)

// Sitemaps hold at most 50,000 URLs.
const sitemapLimit = 50000

const indexCacheControl = "public, max-age=3600"

// SiteWriter owns every object-store write of the pipeline and the side
// effects that follow a change of the live page set.
type SiteWriter struct {
	pageRepo     repository.PageRepository
	store        service.ObjectStore
	renderer     service.PageRenderer
	invalidator  service.TagInvalidator
	cacheControl string
	baseURL      string
	purgeTimeout time.Duration
	logger       *slog.Logger

	pending sync.WaitGroup
}

// SiteWriterParams holds dependencies for SiteWriter, injected by Fx
type SiteWriterParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	PageRepo    repository.PageRepository
	Store       service.ObjectStore
	Renderer    service.PageRenderer
	Invalidator service.TagInvalidator
	Logger      *slog.Logger
}

// NewSiteWriter builds the writer and drains pending invalidations on stop.
func NewSiteWriter(params SiteWriterParams) *SiteWriter {
	writer := newSiteWriter(params.Config, params.PageRepo, params.Store, params.Renderer, params.Invalidator, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			writer.Drain(ctx)

			return nil
		},
	})

	return writer
}

func newSiteWriter(
	cfg *config.Config,
	pageRepo repository.PageRepository,
	store service.ObjectStore,
	renderer service.PageRenderer,
	invalidator service.TagInvalidator,
	logger *slog.Logger,
) *SiteWriter {
	return &SiteWriter{
		pageRepo:     pageRepo,
		store:        store,
		renderer:     renderer,
		invalidator:  invalidator,
		cacheControl: cfg.Storage.CacheControl,
		baseURL:      cfg.Storage.PublicBaseURL,
		purgeTimeout: cfg.Cache.PurgeTimeout,
		logger:       logger,
	}
}

func (w *SiteWriter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, w.logger)
}

// RenderPage decodes a page payload and renders its HTML.
func (w *SiteWriter) RenderPage(page *entity.GeneratedPage) (string, error) {
	data, err := codec.Decode(page.CompressedData)
	if err != nil {
		return "", domainerrors.ErrPayloadCorrupt.WithDetails(err.Error())
	}
	if data.GeneratedAt == nil && !page.CreatedAt.IsZero() {
		createdAt := page.CreatedAt
		data.GeneratedAt = &createdAt
	}

	html, err := w.renderer.Render(page.IntentType, data)
	if err != nil {
		return "", err
	}

	return html, nil
}

// PutPage renders page and writes it to its storage key, stamped with the
// page id and expiry.
func (w *SiteWriter) PutPage(ctx context.Context, page *entity.GeneratedPage) error {
	html, err := w.RenderPage(page)
	if err != nil {
		return err
	}

	key := pagepath.StorageKey(page.FilePath)
	if err := w.store.Put(ctx, key, []byte(html), service.PutOptions{
		ContentType:  constants.ContentTypeHTML,
		CacheControl: w.cacheControl,
		Metadata:     objectMetadata(page),
	}); err != nil {
		return err
	}

	w.log(ctx).Debug("[Publish] Page written",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(html)))),
	)

	return nil
}

// Restamp rewrites the expiry stamp of the object page owns. Objects owned by
// another page, or missing, are left alone.
func (w *SiteWriter) Restamp(ctx context.Context, page *entity.GeneratedPage, expiresAt time.Time) error {
	key := pagepath.StorageKey(page.FilePath)
	obj, err := w.ownedObject(ctx, key, page)
	if err != nil || obj == nil {
		return err
	}

	metadata := make(map[string]string, len(obj.Metadata)+1)
	for k, v := range obj.Metadata {
		metadata[k] = v
	}
	metadata[constants.MetadataExpiresAt] = expiresAt.UTC().Format(time.RFC3339)

	return w.store.Put(ctx, key, obj.Body, service.PutOptions{
		ContentType:  obj.ContentType,
		CacheControl: obj.CacheControl,
		Metadata:     metadata,
	})
}

// RemovePage deletes the stored index document and QR code of page, unless
// the object at its key belongs to another page.
func (w *SiteWriter) RemovePage(ctx context.Context, page *entity.GeneratedPage) error {
	key := pagepath.StorageKey(page.FilePath)
	obj, err := w.ownedObject(ctx, key, page)
	if err != nil || obj == nil {
		return err
	}

	if err := w.store.Delete(ctx, key); err != nil {
		return err
	}

	return w.store.Delete(ctx, pagepath.QRCodeKey(page.FilePath))
}

func (w *SiteWriter) ownedObject(ctx context.Context, key string, page *entity.GeneratedPage) (*service.StoredObject, error) {
	obj, err := w.store.Get(ctx, key)
	if err != nil || obj == nil {
		return nil, err
	}

	if owner := obj.Metadata[constants.MetadataPageID]; owner != "" && owner != page.ID.String() {
		w.log(ctx).Debug("[Publish] Stored object belongs to another page",
			slog.String("key", key),
			slog.String("page_id", page.ID.String()),
			slog.String("owner_id", owner),
		)

		return nil, nil
	}

	return obj, nil
}

// LiveSetChanged rebuilds the sitemap and robots documents and invalidates
// the downstream caches. Failures are logged, never returned.
func (w *SiteWriter) LiveSetChanged(ctx context.Context) {
	if err := w.rebuildIndexDocuments(ctx); err != nil {
		w.log(ctx).Warn("[Publish] Failed to rebuild sitemap", slog.Any("error", err))
	}

	w.invalidateAsync(ctx)
}

func (w *SiteWriter) rebuildIndexDocuments(ctx context.Context) error {
	if w.baseURL == "" {
		w.log(ctx).Debug("[Publish] No public base URL configured, skipping sitemap")

		return nil
	}

	pages, err := w.pageRepo.ListLivePages(ctx, sitemapLimit)
	if err != nil {
		return domainerrors.NewStoreError(err, "list live pages")
	}

	sitemap, err := w.renderer.RenderSitemap(w.baseURL, pages)
	if err != nil {
		return err
	}

	if err := w.store.Put(ctx, constants.SitemapKey, sitemap, service.PutOptions{
		ContentType:  constants.ContentTypeXML,
		CacheControl: indexCacheControl,
	}); err != nil {
		return err
	}

	return w.store.Put(ctx, constants.RobotsKey, w.renderer.RenderRobots(w.baseURL), service.PutOptions{
		ContentType:  constants.ContentTypeText,
		CacheControl: indexCacheControl,
	})
}

// invalidateAsync drops the published-pages tag without holding up the caller.
func (w *SiteWriter) invalidateAsync(ctx context.Context) {
	logger := w.log(ctx)
	detached := context.WithoutCancel(ctx)

	w.pending.Add(1)
	go func() {
		defer w.pending.Done()

		ctx, cancel := context.WithTimeout(detached, w.purgeTimeout)
		defer cancel()

		if err := w.invalidator.InvalidateTag(ctx, constants.CacheTagPublishedPages); err != nil {
			logger.Warn("[Publish] Cache invalidation failed",
				slog.String("tag", constants.CacheTagPublishedPages),
				slog.Any("error", err),
			)

			return
		}

		logger.Debug("[Publish] Cache invalidated", slog.String("tag", constants.CacheTagPublishedPages))
	}()
}

// Drain waits for pending invalidations or until ctx is done.
func (w *SiteWriter) Drain(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		w.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		w.logger.Warn("[Publish] Shutdown before cache invalidation finished", slog.Any("error", errors.WithStack(ctx.Err())))
	}
}

func objectMetadata(page *entity.GeneratedPage) map[string]string {
	metadata := map[string]string{constants.MetadataPageID: page.ID.String()}
	if page.ExpiresAt != nil {
		metadata[constants.MetadataExpiresAt] = page.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return metadata
}

// mapRepoErr translates repository failures into domain errors. Errors that
// already carry a domain kind pass through; everything else is a store failure.
func mapRepoErr(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrPageNotFound):
		return domainerrors.ErrPageNotFound
	case errors.Is(err, repository.ErrBusinessNotFound):
		return domainerrors.ErrBusinessNotFound
	case errors.Is(err, repository.ErrUpdateNotFound):
		return domainerrors.ErrUpdateNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStoreError(err, op)
}
