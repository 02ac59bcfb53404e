// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/repository"
	"pagecast/internal/usecase"

	"github.com/google/uuid"
)

// generationService implements the GenerationUsecase interface.
type generationService struct {
	businessRepo   repository.BusinessRepository
	updateRepo     repository.UpdateRepository
	pageRepo       repository.PageRepository
	builder        *pageBuilder
	defaultIntents []entity.IntentType
	now            func() time.Time
	logger         *slog.Logger
}

// NewGenerationService is the constructor for generationService.
func NewGenerationService(
	cfg *config.Config,
	businessRepo repository.BusinessRepository,
	updateRepo repository.UpdateRepository,
	pageRepo repository.PageRepository,
	logger *slog.Logger,
) usecase.GenerationUsecase {
	return &generationService{
		businessRepo:   businessRepo,
		updateRepo:     updateRepo,
		pageRepo:       pageRepo,
		builder:        newPageBuilder(cfg.Generation.BaseOverheadKB, cfg.Storage.PublicBaseURL),
		defaultIntents: parseIntents(cfg.Generation.DefaultIntents),
		now:            time.Now,
		logger:         logger,
	}
}

func (srv *generationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate builds one page per requested intent. Validation problems with the
// business or update fail the whole call before anything is written; a
// failing intent is reported in the result and does not stop its siblings.
func (srv *generationService) Generate(ctx context.Context, req *usecase.GenerateRequest) (*usecase.GenerationResult, error) {
	start := srv.now()

	if req == nil || req.UpdateID == uuid.Nil || req.BusinessID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("updateId and businessId are required")
	}

	intents, err := srv.requestedIntents(req.Intents)
	if err != nil {
		return nil, err
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, req.BusinessID)
	if err != nil {
		return nil, mapRepoErr(err, "find business")
	}

	update, err := srv.updateRepo.FindUpdateByID(ctx, req.UpdateID)
	if err != nil {
		return nil, mapRepoErr(err, "find update")
	}

	if update.BusinessID != business.ID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("update does not belong to business")
	}

	if update.Status == entity.UpdateStatusFailed {
		return nil, domainerrors.ErrValidationFailed.WithDetails("update has failed; submit a new update")
	}

	if missing := business.Profile.MissingRequired(); len(missing) > 0 {
		return nil, domainerrors.ErrIncompleteBusiness.WithDetails("missing " + strings.Join(missing, ", "))
	}

	content := updateContent(update, req)
	if strings.TrimSpace(content.ContentText) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("update content text is empty")
	}

	logger := srv.log(ctx).With(
		slog.String("update_id", update.ID.String()),
		slog.String("business_id", business.ID.String()),
	)

	srv.setStatus(ctx, logger, update.ID, entity.UpdateStatusProcessing)

	now := start.UTC()
	result := &usecase.GenerationResult{
		Pages:   make([]*entity.GeneratedPage, 0, len(intents)),
		BatchID: uuid.New(),
	}

	for _, intent := range intents {
		page, err := srv.builder.buildPage(business, update.ID, content, intent, result.BatchID, now)
		if err == nil {
			err = mapRepoErr(srv.pageRepo.CreatePage(ctx, page), "create page")
		}
		if err != nil {
			logger.Warn("[Generate] Intent failed",
				slog.String("intent", string(intent)),
				slog.Any("error", err),
			)

			itemErr := domainerrors.NewItemError(update.ID.String(), err)
			itemErr.Intent = string(intent)
			result.Errors = append(result.Errors, itemErr)

			continue
		}

		result.Pages = append(result.Pages, page)
	}

	result.TotalPages = len(result.Pages)

	status := entity.UpdateStatusReadyForPreview
	if result.TotalPages == 0 {
		status = entity.UpdateStatusFailed
	}
	srv.setStatus(ctx, logger, update.ID, status)

	result.ProcessingTimeMs = srv.now().Sub(start).Milliseconds()

	logger.Info("[Generate] Batch generated",
		slog.String("batch_id", result.BatchID.String()),
		slog.Int("pages", result.TotalPages),
		slog.Int("failed", len(result.Errors)),
		slog.Int64("duration_ms", result.ProcessingTimeMs),
	)

	return result, nil
}

// requestedIntents validates and de-duplicates intents, falling back to the
// configured defaults, then to all six.
func (srv *generationService) requestedIntents(requested []entity.IntentType) ([]entity.IntentType, error) {
	if len(requested) == 0 {
		if len(srv.defaultIntents) > 0 {
			return srv.defaultIntents, nil
		}

		return entity.AllIntents, nil
	}

	seen := make(map[entity.IntentType]bool, len(requested))
	intents := make([]entity.IntentType, 0, len(requested))
	for _, raw := range requested {
		intent, ok := entity.ParseIntent(string(raw))
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown intent " + string(raw))
		}
		if seen[intent] {
			continue
		}
		seen[intent] = true
		intents = append(intents, intent)
	}

	return intents, nil
}

// setStatus records update progress. A failure here never fails generation.
func (srv *generationService) setStatus(ctx context.Context, logger *slog.Logger, updateID uuid.UUID, status entity.UpdateStatus) {
	if err := srv.updateRepo.UpdateStatus(ctx, updateID, status); err != nil {
		logger.Warn("[Generate] Failed to record update status",
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}

// updateContent merges the stored update with the overrides of a trigger request.
func updateContent(update *entity.Update, req *usecase.GenerateRequest) entity.UpdateContent {
	content := entity.UpdateContent{
		ContentText:       update.ContentText,
		DealTerms:         update.DealTerms,
		SpecialHoursToday: update.SpecialHoursToday,
		Category:          update.Category,
		ExpiresAt:         update.ExpiresAt,
	}

	if text := strings.TrimSpace(req.ContentText); text != "" {
		content.ContentText = text
	}
	if req.SpecialHours != "" {
		content.SpecialHoursToday = req.SpecialHours
	}
	if info := req.TemporalInfo; info != nil {
		if info.ExpiresAt != nil {
			content.ExpiresAt = info.ExpiresAt
		}
		content.EventDates = info.EventDates
	}
	if content.Category == "" {
		content.Category = entity.UpdateCategoryGeneral
	}

	return content
}

func parseIntents(raw []string) []entity.IntentType {
	intents := make([]entity.IntentType, 0, len(raw))
	for _, s := range raw {
		if intent, ok := entity.ParseIntent(s); ok {
			intents = append(intents, intent)
		}
	}

	return intents
}
