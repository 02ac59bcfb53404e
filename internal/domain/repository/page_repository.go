package repository

import (
	"context"
	"errors"
	"time"

	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPageNotFound is returned when no generated page matches the lookup.
var ErrPageNotFound = errors.New("generated page not found")

// PageRepository defines generated page persistence.
type PageRepository interface {
	// CreatePage persists a new, unpublished page.
	CreatePage(ctx context.Context, page *entity.GeneratedPage) error

	// FindPageByID retrieves a page by its unique ID.
	FindPageByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedPage, error)

	// FindPagesByBatch retrieves every page of a generation batch.
	FindPagesByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.GeneratedPage, error)

	// FindLivePageByPath retrieves the published, unexpired page served at filePath.
	FindLivePageByPath(ctx context.Context, filePath string) (*entity.GeneratedPage, error)

	// ListLivePages lists published, unexpired pages ordered by publish time, newest first.
	ListLivePages(ctx context.Context, limit int) ([]*entity.GeneratedPage, error)

	// MarkPublished flips published on and stamps publishedAt.
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error

	// UnpublishOtherLive clears published on every live page at filePath except keepID.
	// It returns the number of pages superseded.
	UnpublishOtherLive(ctx context.Context, filePath string, keepID uuid.UUID) (int64, error)

	// MarkUnpublished clears published and publishedAt.
	MarkUnpublished(ctx context.Context, id uuid.UUID) error

	// DeletePage removes a page row. Missing rows are not an error; the return
	// value reports whether a row was deleted.
	DeletePage(ctx context.Context, id uuid.UUID) (bool, error)

	// ExpireDuePages flips expired on every unexpired page whose expiry is at or
	// before now, tagging the rows with sweepID. Only rows still unexpired at
	// write time are touched, so overlapping sweeps never claim the same row.
	ExpireDuePages(ctx context.Context, now time.Time, sweepID uuid.UUID) (int64, error)

	// FindPagesBySweep returns the pages claimed by one expiry sweep.
	FindPagesBySweep(ctx context.Context, sweepID uuid.UUID) ([]*entity.GeneratedPage, error)

	// ExpirePage flips expired on one page regardless of its expiry timestamp.
	ExpirePage(ctx context.Context, id uuid.UUID, now time.Time) error

	// ExtendPage sets a new expiry and clears expired.
	ExtendPage(ctx context.Context, id uuid.UUID, expiresAt time.Time) error

	// FindPagesExpiringBetween lists unexpired pages whose expiry lies in (from, to].
	FindPagesExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.GeneratedPage, error)
}
