package impl

import (
	"context"
	"log/slog"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/constants"
	"pagecast/internal/domain/pagepath"
	"pagecast/internal/domain/repository"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"
	"pagecast/internal/usecase"
	"pagecast/internal/util"
)

// resolutionService implements the ResolutionUsecase interface.
type resolutionService struct {
	pageRepo     repository.PageRepository
	businessRepo repository.BusinessRepository
	store        service.ObjectStore
	renderer     service.PageRenderer
	cache        service.ResponseCache
	site         *SiteWriter
	builder      *pageBuilder
	baseURL      string
	now          func() time.Time
	logger       *slog.Logger
}

// NewResolutionService is the constructor for resolutionService.
func NewResolutionService(
	cfg *config.Config,
	pageRepo repository.PageRepository,
	businessRepo repository.BusinessRepository,
	store service.ObjectStore,
	renderer service.PageRenderer,
	cache service.ResponseCache,
	site *SiteWriter,
	logger *slog.Logger,
) usecase.ResolutionUsecase {
	return &resolutionService{
		pageRepo:     pageRepo,
		businessRepo: businessRepo,
		store:        store,
		renderer:     renderer,
		cache:        cache,
		site:         site,
		builder:      newPageBuilder(cfg.Generation.BaseOverheadKB, cfg.Storage.PublicBaseURL),
		baseURL:      cfg.Storage.PublicBaseURL,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *resolutionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve answers requestPath from the first step that has content: the
// object store, a live page row, live regeneration from the business
// profile, then the fallback. Data-access failures fall through to the next
// step.
func (srv *resolutionService) Resolve(ctx context.Context, requestPath string) *usecase.Resolution {
	path := pagepath.Normalize(requestPath)
	logger := srv.log(ctx).With(slog.String("path", path))

	if res := srv.fromCache(ctx, logger, path); res != nil {
		return res
	}

	steps := []func(context.Context, *slog.Logger, string) *usecase.Resolution{
		srv.fromStore,
		srv.fromDatabase,
		srv.fromBusiness,
	}
	if pagepath.IsReserved(path) {
		steps = []func(context.Context, *slog.Logger, string) *usecase.Resolution{
			srv.fromStore,
			srv.reservedDocument,
		}
	}

	for _, step := range steps {
		if res := step(ctx, logger, path); res != nil {
			res.Found = true
			res.ETag = util.ETag(res.Body)
			srv.remember(ctx, logger, path, res)

			return res
		}
	}

	logger.Debug("[Resolve] Nothing matched, serving fallback")

	body := []byte(srv.renderer.RenderFallback(path))

	return &usecase.Resolution{
		Body:         body,
		Found:        false,
		Source:       usecase.SourceFallback,
		ContentType:  constants.ContentTypeHTML,
		CacheControl: constants.CacheControlNoStore,
		ETag:         util.ETag(body),
	}
}

// fromStore serves a prebuilt object unless its expiry stamp has passed.
// It never touches the database.
func (srv *resolutionService) fromStore(ctx context.Context, logger *slog.Logger, path string) *usecase.Resolution {
	obj, err := srv.store.Get(ctx, pagepath.StorageKey(path))
	if err != nil {
		logger.Warn("[Resolve] Object store lookup failed", slog.Any("error", err))

		return nil
	}
	if obj == nil || stampExpired(obj, srv.now()) {
		return nil
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = constants.ContentTypeHTML
	}
	cacheControl := obj.CacheControl
	if cacheControl == "" {
		cacheControl = constants.CacheControlStatic
	}

	res := &usecase.Resolution{
		Body:         obj.Body,
		Source:       usecase.SourceStatic,
		ContentType:  contentType,
		CacheControl: cacheControl,
	}
	if expiresAt, ok := stampExpiry(obj); ok {
		res.ExpiresAt = &expiresAt
	}

	return res
}

// fromDatabase renders the live page row at path.
func (srv *resolutionService) fromDatabase(ctx context.Context, logger *slog.Logger, path string) *usecase.Resolution {
	page, err := srv.pageRepo.FindLivePageByPath(ctx, path)
	if err != nil {
		if !errors.Is(err, repository.ErrPageNotFound) {
			logger.Warn("[Resolve] Page lookup failed", slog.Any("error", err))
		}

		return nil
	}
	if page.IsDue(srv.now()) {
		return nil
	}

	html, err := srv.site.RenderPage(page)
	if err != nil {
		logger.Warn("[Resolve] Stored page could not be rendered",
			slog.String("page_id", page.ID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	return &usecase.Resolution{
		Body:         []byte(html),
		Source:       usecase.SourceDatabase,
		ContentType:  constants.ContentTypeHTML,
		CacheControl: constants.CacheControlDatabase,
		ExpiresAt:    page.ExpiresAt,
	}
}

// fromBusiness regenerates a profile-only page for the business named by the
// routing slug of path.
func (srv *resolutionService) fromBusiness(ctx context.Context, logger *slog.Logger, path string) *usecase.Resolution {
	slug := pagepath.RoutingSlug(path)
	if slug == "" {
		return nil
	}

	business, err := srv.businessRepo.FindBusinessBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			logger.Warn("[Resolve] Business lookup failed", slog.String("slug", slug), slog.Any("error", err))
		}

		return nil
	}
	if missing := business.Profile.MissingRequired(); len(missing) > 0 {
		logger.Debug("[Resolve] Business profile incomplete, skipping live render", slog.Any("missing", missing))

		return nil
	}

	data := srv.builder.livePageData(business.Profile, path, srv.now().UTC())
	html, err := srv.renderer.Render(data.Intent.Type, data)
	if err != nil {
		logger.Warn("[Resolve] Live render failed", slog.Any("error", err))

		return nil
	}

	return &usecase.Resolution{
		Body:         []byte(html),
		Source:       usecase.SourceLive,
		ContentType:  constants.ContentTypeHTML,
		CacheControl: constants.CacheControlLive,
	}
}

// reservedDocument builds sitemap.xml or robots.txt on demand when the
// stored copy is missing.
func (srv *resolutionService) reservedDocument(ctx context.Context, logger *slog.Logger, path string) *usecase.Resolution {
	if srv.baseURL == "" {
		return nil
	}

	if pagepath.StorageKey(path) == constants.RobotsKey {
		return &usecase.Resolution{
			Body:         srv.renderer.RenderRobots(srv.baseURL),
			Source:       usecase.SourceLive,
			ContentType:  constants.ContentTypeText,
			CacheControl: constants.CacheControlLive,
		}
	}

	pages, err := srv.pageRepo.ListLivePages(ctx, sitemapLimit)
	if err != nil {
		logger.Warn("[Resolve] Live page listing failed", slog.Any("error", err))

		return nil
	}

	sitemap, err := srv.renderer.RenderSitemap(srv.baseURL, pages)
	if err != nil {
		logger.Warn("[Resolve] Sitemap render failed", slog.Any("error", err))

		return nil
	}

	return &usecase.Resolution{
		Body:         sitemap,
		Source:       usecase.SourceLive,
		ContentType:  constants.ContentTypeXML,
		CacheControl: constants.CacheControlLive,
	}
}

func (srv *resolutionService) fromCache(ctx context.Context, logger *slog.Logger, path string) *usecase.Resolution {
	cached, err := srv.cache.Get(ctx, path)
	if err != nil {
		logger.Warn("[Resolve] Response cache read failed", slog.Any("error", err))

		return nil
	}
	if cached == nil {
		return nil
	}

	body := []byte(cached.HTML)

	return &usecase.Resolution{
		Body:         body,
		Found:        true,
		Source:       usecase.ResolutionSource(cached.Source),
		ContentType:  cached.ContentType,
		CacheControl: cached.CacheControl,
		ETag:         util.ETag(body),
		Cached:       true,
		ExpiresAt:    cached.ExpiresAt,
	}
}

// remember caches a found response under the published-pages tag, no longer
// than the page lives. Live renders are not cached: they change whenever the
// profile does.
func (srv *resolutionService) remember(ctx context.Context, logger *slog.Logger, path string, res *usecase.Resolution) {
	if res.Source == usecase.SourceLive {
		return
	}

	err := srv.cache.Set(ctx, path, &service.CachedResponse{
		HTML:         string(res.Body),
		ContentType:  res.ContentType,
		CacheControl: res.CacheControl,
		Source:       string(res.Source),
		ExpiresAt:    res.ExpiresAt,
	}, constants.CacheTagPublishedPages)
	if err != nil {
		logger.Warn("[Resolve] Response cache write failed", slog.Any("error", err))
	}
}

// stampExpired reports whether a stored object's expiry stamp has passed.
// Unstamped or unparsable stamps never expire.
func stampExpired(obj *service.StoredObject, now time.Time) bool {
	expiresAt, ok := stampExpiry(obj)

	return ok && !expiresAt.After(now)
}

// stampExpiry parses the expiry stamp of a stored object.
func stampExpiry(obj *service.StoredObject) (time.Time, bool) {
	stamp, ok := obj.Metadata[constants.MetadataExpiresAt]
	if !ok || stamp == "" {
		return time.Time{}, false
	}

	expiresAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, false
	}

	return expiresAt, true
}
