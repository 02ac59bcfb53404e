package postgres

import (
	"context"
	"time"

	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/repository"
	"pagecast/internal/errors"
	"pagecast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const liveCondition = "published = ? AND expired = ?"

// pageRepository implements the domain.PageRepository interface.
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *gorm.DB) repository.PageRepository {
	return &pageRepository{db: db}
}

func (repo *pageRepository) pages(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.GeneratedPageModel{})
}

// CreatePage persists a new, unpublished page.
func (repo *pageRepository) CreatePage(ctx context.Context, page *entity.GeneratedPage) error {
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	pageM := fromPageDomain(page)
	pageM.Published = false
	pageM.PublishedAt = nil

	if err := repo.db.WithContext(ctx).Create(pageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("page already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required page information")
		}

		return errors.Wrap(err, "failed to create page")
	}

	page.Published = false
	page.PublishedAt = nil
	page.CreatedAt = pageM.CreatedAt
	page.UpdatedAt = pageM.UpdatedAt

	return nil
}

// FindPageByID retrieves a page by its unique ID.
func (repo *pageRepository) FindPageByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedPage, error) {
	var pageM model.GeneratedPageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page by ID")
	}

	return toPageDomain(&pageM), nil
}

// FindPagesByBatch retrieves every page of a generation batch.
func (repo *pageRepository) FindPagesByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.GeneratedPage, error) {
	var pageModels []*model.GeneratedPageModel
	if err := repo.db.WithContext(ctx).
		Where("generation_batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pages by batch")
	}

	return toPageDomains(pageModels), nil
}

// FindLivePageByPath retrieves the published, unexpired page served at filePath.
// If more than one row is live the most recently published wins.
func (repo *pageRepository) FindLivePageByPath(ctx context.Context, filePath string) (*entity.GeneratedPage, error) {
	var pageM model.GeneratedPageModel
	if err := repo.db.WithContext(ctx).
		Where("file_path = ?", filePath).
		Where(liveCondition, true, false).
		Order("published_at DESC").
		First(&pageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find live page by path")
	}

	return toPageDomain(&pageM), nil
}

// ListLivePages lists published, unexpired pages, newest first.
func (repo *pageRepository) ListLivePages(ctx context.Context, limit int) ([]*entity.GeneratedPage, error) {
	var pageModels []*model.GeneratedPageModel
	tx := repo.db.WithContext(ctx).
		Omit("compressed_data").
		Where(liveCondition, true, false).
		Order("published_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list live pages")
	}

	return toPageDomains(pageModels), nil
}

// MarkPublished flips published on and stamps publishedAt.
func (repo *pageRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	result := repo.pages(ctx).
		Where("id = ?", id).
		Updates(map[string]any{"published": true, "published_at": publishedAt.UTC()})
	if result.Error != nil && isUniqueConstraintViolation(result.Error) {
		return domainerrors.ErrPathConflict.WrapMessage("mark page published")
	}

	return rowsOrNotFound(result, "failed to mark page published")
}

// UnpublishOtherLive clears published on every live page at filePath except keepID.
func (repo *pageRepository) UnpublishOtherLive(ctx context.Context, filePath string, keepID uuid.UUID) (int64, error) {
	result := repo.pages(ctx).
		Where("file_path = ? AND id <> ?", filePath, keepID).
		Where(liveCondition, true, false).
		Updates(map[string]any{"published": false, "published_at": nil})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unpublish superseded pages")
	}

	return result.RowsAffected, nil
}

// MarkUnpublished clears published and publishedAt.
func (repo *pageRepository) MarkUnpublished(ctx context.Context, id uuid.UUID) error {
	result := repo.pages(ctx).
		Where("id = ?", id).
		Updates(map[string]any{"published": false, "published_at": nil})

	return rowsOrNotFound(result, "failed to mark page unpublished")
}

// DeletePage removes a page row and reports whether one was deleted.
func (repo *pageRepository) DeletePage(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GeneratedPageModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete page")
	}

	return result.RowsAffected > 0, nil
}

// ExpireDuePages claims every due, unexpired page for sweepID in a single
// conditional update.
func (repo *pageRepository) ExpireDuePages(ctx context.Context, now time.Time, sweepID uuid.UUID) (int64, error) {
	result := repo.pages(ctx).
		Where("expired = ? AND expires_at IS NOT NULL AND expires_at <= ?", false, now.UTC()).
		Updates(map[string]any{"expired": true, "expiry_sweep_id": sweepID})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire due pages")
	}

	return result.RowsAffected, nil
}

// FindPagesBySweep returns the pages claimed by one expiry sweep.
func (repo *pageRepository) FindPagesBySweep(ctx context.Context, sweepID uuid.UUID) ([]*entity.GeneratedPage, error) {
	var pageModels []*model.GeneratedPageModel
	if err := repo.db.WithContext(ctx).
		Omit("compressed_data").
		Where("expiry_sweep_id = ?", sweepID).
		Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pages by sweep")
	}

	return toPageDomains(pageModels), nil
}

// ExpirePage flips expired on one page regardless of its expiry timestamp.
// A page without an expiry gets now as its expiry.
func (repo *pageRepository) ExpirePage(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.pages(ctx).
		Where("id = ?", id).
		Updates(map[string]any{
			"expired":    true,
			"expires_at": gorm.Expr("COALESCE(expires_at, ?)", now.UTC()),
		})

	return rowsOrNotFound(result, "failed to expire page")
}

// ExtendPage sets a new expiry and clears expired.
func (repo *pageRepository) ExtendPage(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	result := repo.pages(ctx).
		Where("id = ?", id).
		Updates(map[string]any{
			"expired":         false,
			"expires_at":      expiresAt.UTC(),
			"expiry_sweep_id": nil,
		})
	if result.Error != nil && isUniqueConstraintViolation(result.Error) {
		return domainerrors.ErrPathConflict.WrapMessage("extend page")
	}

	return rowsOrNotFound(result, "failed to extend page")
}

// FindPagesExpiringBetween lists unexpired pages whose expiry lies in (from, to].
func (repo *pageRepository) FindPagesExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.GeneratedPage, error) {
	var pageModels []*model.GeneratedPageModel
	if err := repo.db.WithContext(ctx).
		Omit("compressed_data").
		Where("expired = ? AND expires_at > ? AND expires_at <= ?", false, from.UTC(), to.UTC()).
		Order("expires_at ASC").
		Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pages expiring soon")
	}

	return toPageDomains(pageModels), nil
}

func rowsOrNotFound(result *gorm.DB, msg string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPageDomain converts a GORM GeneratedPageModel to a domain GeneratedPage entity.
func toPageDomain(data *model.GeneratedPageModel) *entity.GeneratedPage {
	if data == nil {
		return nil
	}

	return &entity.GeneratedPage{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		UpdateID:        data.UpdateID,
		FilePath:        data.FilePath,
		Title:           data.Title,
		IntentType:      entity.IntentType(data.IntentType),
		PageVariant:     data.PageVariant,
		CompressedData:  []byte(data.CompressedData),
		EstimatedSizeKB: data.EstimatedSizeKB,
		BatchID:         data.GenerationBatchID,
		Published:       data.Published,
		PublishedAt:     data.PublishedAt,
		Expired:         data.Expired,
		ExpiresAt:       data.ExpiresAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toPageDomains(models []*model.GeneratedPageModel) []*entity.GeneratedPage {
	pages := make([]*entity.GeneratedPage, 0, len(models))
	for _, pageM := range models {
		pages = append(pages, toPageDomain(pageM))
	}

	return pages
}

// fromPageDomain converts a domain GeneratedPage entity to a GORM GeneratedPageModel.
func fromPageDomain(data *entity.GeneratedPage) *model.GeneratedPageModel {
	if data == nil {
		return nil
	}

	return &model.GeneratedPageModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		UpdateID:          data.UpdateID,
		FilePath:          data.FilePath,
		Title:             data.Title,
		IntentType:        string(data.IntentType),
		PageVariant:       data.PageVariant,
		CompressedData:    datatypes.JSON(data.CompressedData),
		EstimatedSizeKB:   data.EstimatedSizeKB,
		GenerationBatchID: data.BatchID,
		Published:         data.Published,
		PublishedAt:       data.PublishedAt,
		Expired:           data.Expired,
		ExpiresAt:         utcPtr(data.ExpiresAt),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
