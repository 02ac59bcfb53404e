package postgres

import (
	"context"
	"encoding/json"

	"pagecast/internal/domain/entity"
	"pagecast/internal/domain/repository"
	"pagecast/internal/errors"
	"pagecast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// businessRepository implements the domain.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindBusinessByID retrieves a business by its unique ID.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBusinessBySlug retrieves a business by its routing slug.
func (repo *businessRepository) FindBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *businessRepository) findOne(ctx context.Context, query string, arg any) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM)
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) (*entity.Business, error) {
	if data == nil {
		return nil, nil
	}

	var profile entity.BusinessProfile
	if len(data.Profile) > 0 {
		if err := json.Unmarshal(data.Profile, &profile); err != nil {
			return nil, errors.Wrapf(err, "failed to decode profile of business %s", data.ID)
		}
	}
	// The indexed columns win over the document when both are set.
	profile.Slug = data.Slug
	if data.Name != "" {
		profile.Name = data.Name
	}
	if data.Category != "" {
		profile.Category = data.Category
	}
	if data.City != "" {
		profile.Address.City = data.City
	}
	if data.State != "" {
		profile.Address.State = data.State
	}

	return &entity.Business{
		ID:         data.ID,
		OwnerEmail: data.OwnerEmail,
		Slug:       data.Slug,
		Profile:    profile,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) (*model.BusinessModel, error) {
	if data == nil {
		return nil, nil
	}

	profile, err := json.Marshal(data.Profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode business profile")
	}

	return &model.BusinessModel{
		ID:         data.ID,
		OwnerEmail: data.OwnerEmail,
		Slug:       data.Slug,
		Name:       data.Profile.Name,
		Category:   data.Profile.Category,
		City:       data.Profile.Address.City,
		State:      data.Profile.Address.State,
		Profile:    datatypes.JSON(profile),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
