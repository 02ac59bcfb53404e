package postgres

import (
	"context"

	"pagecast/internal/domain/entity"
	"pagecast/internal/domain/repository"
	"pagecast/internal/errors"
	"pagecast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateRepository implements the domain.UpdateRepository interface.
type updateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository is the constructor for updateRepository.
func NewUpdateRepository(db *gorm.DB) repository.UpdateRepository {
	return &updateRepository{db: db}
}

// FindUpdateByID retrieves an update by its unique ID.
func (repo *updateRepository) FindUpdateByID(ctx context.Context, id uuid.UUID) (*entity.Update, error) {
	var updateM model.UpdateModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&updateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUpdateNotFound
		}

		return nil, errors.Wrap(err, "failed to find update by ID")
	}

	return toUpdateDomain(&updateM), nil
}

// terminalStatuses are never left once reached.
var terminalStatuses = []string{string(entity.UpdateStatusPublished), string(entity.UpdateStatusFailed)}

// UpdateStatus moves an update to status. Rows in a terminal status are left alone.
func (repo *updateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UpdateStatus) error {
	result := repo.db.WithContext(ctx).Model(&model.UpdateModel{}).
		Where("id = ? AND status NOT IN ?", id, terminalStatuses).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Distinguish a guarded no-op from a missing row.
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UpdateModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check update")
	}
	if count == 0 {
		return repository.ErrUpdateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUpdateDomain converts a GORM UpdateModel to a domain Update entity.
func toUpdateDomain(data *model.UpdateModel) *entity.Update {
	if data == nil {
		return nil
	}

	return &entity.Update{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ContentText:       data.ContentText,
		DealTerms:         data.DealTerms,
		SpecialHoursToday: data.SpecialHoursToday,
		Category:          entity.UpdateCategory(data.Category),
		ExpiresAt:         data.ExpiresAt,
		Status:            entity.UpdateStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUpdateDomain converts a domain Update entity to a GORM UpdateModel.
func fromUpdateDomain(data *entity.Update) *model.UpdateModel {
	if data == nil {
		return nil
	}

	return &model.UpdateModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ContentText:       data.ContentText,
		DealTerms:         data.DealTerms,
		SpecialHoursToday: data.SpecialHoursToday,
		Category:          string(data.Category),
		ExpiresAt:         data.ExpiresAt,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
