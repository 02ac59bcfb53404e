package usecase

import (
	"context"
	"time"

	domainerrors "pagecast/internal/domain/errors"

	"github.com/google/uuid"
)

// PageSelection addresses pages by id, by generation batch, or both.
type PageSelection struct {
	PageIDs []uuid.UUID `json:"pageIds" validate:"max=100"`
	BatchID *uuid.UUID  `json:"batchId"`
}

// IsEmpty reports whether the selection names nothing.
func (s *PageSelection) IsEmpty() bool {
	return s == nil || (len(s.PageIDs) == 0 && s.BatchID == nil)
}

// PublishedPage is one successfully published page.
type PublishedPage struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// PublishResult lists the published pages and the per-page failures.
type PublishResult struct {
	PublishedPages []PublishedPage          `json:"publishedPages"`
	Errors         []domainerrors.ItemError `json:"errors"`
}

// BatchResult reports an unpublish or delete batch.
type BatchResult struct {
	Succeeded []uuid.UUID              `json:"succeeded"`
	Errors    []domainerrors.ItemError `json:"errors"`
}

// PublishUsecase moves pages between the database and the object store.
type PublishUsecase interface {
	// Publish writes each page to the object store and marks it live.
	Publish(ctx context.Context, sel *PageSelection) (*PublishResult, error)

	// Unpublish removes the stored objects and clears published, keeping the rows.
	Unpublish(ctx context.Context, sel *PageSelection) (*BatchResult, error)

	// Delete removes stored objects and rows. Missing pages count as deleted.
	Delete(ctx context.Context, sel *PageSelection) (*BatchResult, error)

	// Preview renders a page from its stored payload without publishing it.
	Preview(ctx context.Context, pageID uuid.UUID) (string, error)
}
