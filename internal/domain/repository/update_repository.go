package repository

import (
	"context"
	"errors"

	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUpdateNotFound is returned when no update matches the lookup.
var ErrUpdateNotFound = errors.New("update not found")

// UpdateRepository defines update row access.
type UpdateRepository interface {
	// FindUpdateByID retrieves an update by its unique ID.
	FindUpdateByID(ctx context.Context, id uuid.UUID) (*entity.Update, error)

	// UpdateStatus moves an update to status. A published update never moves
	// back to an earlier state; the call is then a no-op.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UpdateStatus) error
}
