// Package usecase declares the application operations of the page pipeline
// and the request/result types crossing the delivery boundary.
package usecase

import (
	"context"

	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"

	"github.com/google/uuid"
)

// GenerateRequest is the generation trigger input.
type GenerateRequest struct {
	UpdateID   uuid.UUID `json:"updateId" validate:"required"`
	BusinessID uuid.UUID `json:"businessId" validate:"required"`

	// ContentText overrides the stored update content when set.
	ContentText  string               `json:"contentText" validate:"max=5000"`
	TemporalInfo *entity.TemporalInfo `json:"temporalInfo"`
	SpecialHours string               `json:"specialHours" validate:"max=200"`

	// Intents defaults to the configured set, or all six, when empty.
	Intents []entity.IntentType `json:"intents" validate:"max=6,dive,oneof=direct local category branded_local service_urgent competitive"`
}

// GenerationResult reports one generation batch. Errors lists the intents
// that failed; the pages that succeeded are still persisted.
type GenerationResult struct {
	Pages            []*entity.GeneratedPage  `json:"pages"`
	BatchID          uuid.UUID                `json:"batchId"`
	TotalPages       int                      `json:"totalPages"`
	ProcessingTimeMs int64                    `json:"processingTimeMs"`
	Errors           []domainerrors.ItemError `json:"errors,omitempty"`
}

// GenerationUsecase turns one business update into unpublished pages.
type GenerationUsecase interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerationResult, error)
}
