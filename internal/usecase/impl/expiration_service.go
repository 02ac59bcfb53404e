package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/repository"
	"pagecast/internal/usecase"
	"pagecast/internal/util"

	"github.com/google/uuid"
)

// upcomingWindow is how far ahead check-upcoming looks.
const upcomingWindow = time.Hour

// expirationService implements the ExpirationUsecase interface.
type expirationService struct {
	txManager repository.TransactionManager
	pageRepo  repository.PageRepository
	site      *SiteWriter
	now       func() time.Time
	logger    *slog.Logger
}

// NewExpirationService is the constructor for expirationService.
func NewExpirationService(
	txManager repository.TransactionManager,
	pageRepo repository.PageRepository,
	site *SiteWriter,
	logger *slog.Logger,
) usecase.ExpirationUsecase {
	return &expirationService{
		txManager: txManager,
		pageRepo:  pageRepo,
		site:      site,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *expirationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Handle dispatches a trigger request.
func (srv *expirationService) Handle(ctx context.Context, req *usecase.ExpirationRequest) (*usecase.ExpirationResult, error) {
	if req == nil {
		return nil, domainerrors.ErrUnknownAction
	}

	switch req.Action {
	case usecase.ActionExpireAll:
		return srv.ExpireAll(ctx)
	case usecase.ActionCheckUpcoming:
		return srv.CheckUpcoming(ctx)
	case usecase.ActionExpireSingle, usecase.ActionExtend:
		if req.PageID == nil || *req.PageID == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("pageId is required for " + string(req.Action))
		}
		if req.Action == usecase.ActionExtend {
			return srv.Extend(ctx, *req.PageID, req.Hours)
		}

		return srv.ExpireSingle(ctx, *req.PageID)
	default:
		return nil, domainerrors.ErrUnknownAction.WithDetails(string(req.Action))
	}
}

// ExpireAll claims every due page in one conditional update, so overlapping
// sweeps never expire or count the same page twice.
func (srv *expirationService) ExpireAll(ctx context.Context) (*usecase.ExpirationResult, error) {
	now := srv.now().UTC()
	sweepID := uuid.New()

	count, err := srv.pageRepo.ExpireDuePages(ctx, now, sweepID)
	if err != nil {
		return nil, mapRepoErr(err, "expire due pages")
	}

	expiredCount := int(count)
	result := &usecase.ExpirationResult{
		Success:      true,
		ExpiredCount: &expiredCount,
		ExpiredPages: []usecase.PageExpiry{},
	}

	if count == 0 {
		result.Message = "no pages due for expiry"

		return result, nil
	}

	pages, err := srv.pageRepo.FindPagesBySweep(ctx, sweepID)
	if err != nil {
		srv.log(ctx).Warn("[Expire] Failed to read swept pages", slog.String("sweep_id", sweepID.String()), slog.Any("error", err))
	}
	for _, page := range pages {
		result.ExpiredPages = append(result.ExpiredPages, pageExpiry(page))
	}

	srv.site.LiveSetChanged(ctx)

	result.Message = fmt.Sprintf("expired %d page(s)", count)
	srv.log(ctx).Info("[Expire] Sweep complete",
		slog.String("sweep_id", sweepID.String()),
		slog.Int64("expired", count),
	)

	return result, nil
}

// ExpireSingle expires one page regardless of its expiry timestamp and
// restamps its stored object so the static step stops serving it.
func (srv *expirationService) ExpireSingle(ctx context.Context, pageID uuid.UUID) (*usecase.ExpirationResult, error) {
	now := srv.now().UTC()

	if err := srv.pageRepo.ExpirePage(ctx, pageID, now); err != nil {
		return nil, mapRepoErr(err, "expire page")
	}

	page, err := srv.pageRepo.FindPageByID(ctx, pageID)
	if err != nil {
		return nil, mapRepoErr(err, "find page")
	}

	if page.Published {
		if err := srv.site.Restamp(ctx, page, now); err != nil {
			srv.log(ctx).Warn("[Expire] Failed to restamp stored page",
				slog.String("page_id", pageID.String()),
				slog.Any("error", err),
			)
		}
		srv.site.LiveSetChanged(ctx)
	}

	one := 1
	summary := pageExpiry(page)
	srv.log(ctx).Info("[Expire] Page expired", slog.String("page_id", pageID.String()))

	return &usecase.ExpirationResult{
		Success:      true,
		Message:      "page expired",
		ExpiredCount: &one,
		ExpiredPages: []usecase.PageExpiry{summary},
		Page:         &summary,
	}, nil
}

// maxExtensionHours caps one extension at ten years, far below the range
// where hours*time.Hour overflows a time.Duration.
const maxExtensionHours = 10 * 365 * 24

// Extend sets expires_at to now+hours and clears expired, reviving an
// expired page. A published page reclaims its path and is rewritten with
// the new stamp.
func (srv *expirationService) Extend(ctx context.Context, pageID uuid.UUID, hours float64) (*usecase.ExpirationResult, error) {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, domainerrors.ErrInvalidExtension
	}
	if hours > maxExtensionHours {
		return nil, domainerrors.ErrInvalidExtension.WithDetails(fmt.Sprintf("hours must not exceed %d", maxExtensionHours))
	}

	page, err := srv.pageRepo.FindPageByID(ctx, pageID)
	if err != nil {
		return nil, mapRepoErr(err, "find page")
	}

	expiresAt := srv.now().UTC().Add(time.Duration(hours * float64(time.Hour)))

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		pageRepo := factory.NewPageRepository()
		if page.Published {
			if _, err := pageRepo.UnpublishOtherLive(ctx, page.FilePath, page.ID); err != nil {
				return err
			}
		}

		return pageRepo.ExtendPage(ctx, page.ID, expiresAt)
	})
	if err != nil {
		return nil, mapRepoErr(err, "extend page")
	}

	page.Expired = false
	page.ExpiresAt = &expiresAt

	if page.Published {
		if err := srv.site.PutPage(ctx, page); err != nil {
			srv.log(ctx).Warn("[Expire] Failed to rewrite extended page",
				slog.String("page_id", pageID.String()),
				slog.Any("error", err),
			)
		}
		srv.site.LiveSetChanged(ctx)
	}

	summary := pageExpiry(page)
	srv.log(ctx).Info("[Expire] Page extended",
		slog.String("page_id", pageID.String()),
		slog.Time("expires_at", expiresAt),
	)

	return &usecase.ExpirationResult{
		Success: true,
		Message: fmt.Sprintf("page extended by %g hour(s)", hours),
		Page:    &summary,
	}, nil
}

// CheckUpcoming lists unexpired pages whose expiry falls within the next hour.
func (srv *expirationService) CheckUpcoming(ctx context.Context) (*usecase.ExpirationResult, error) {
	now := srv.now().UTC()

	pages, err := srv.pageRepo.FindPagesExpiringBetween(ctx, now, now.Add(upcomingWindow))
	if err != nil {
		return nil, mapRepoErr(err, "find expiring pages")
	}

	result := &usecase.ExpirationResult{
		Success:       true,
		Message:       fmt.Sprintf("%d page(s) expire within the next hour", len(pages)),
		UpcomingPages: make([]usecase.PageExpiry, 0, len(pages)),
	}
	for _, page := range pages {
		upcoming := pageExpiry(page)
		if page.ExpiresAt != nil {
			upcoming.ExpiresIn = util.FormatDuration(page.ExpiresAt.Sub(now))
		}
		result.UpcomingPages = append(result.UpcomingPages, upcoming)
	}

	return result, nil
}

func pageExpiry(page *entity.GeneratedPage) usecase.PageExpiry {
	return usecase.PageExpiry{
		ID:        page.ID,
		FilePath:  page.FilePath,
		Title:     page.Title,
		ExpiresAt: page.ExpiresAt,
		Expired:   page.Expired,
	}
}
