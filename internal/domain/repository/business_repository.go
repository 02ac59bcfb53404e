// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pagecast/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when no business matches the lookup.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository reads business profiles. The pipeline never writes them.
type BusinessRepository interface {
	// FindBusinessByID retrieves a business by its unique ID.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBusinessBySlug retrieves a business by its routing slug.
	FindBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error)
}
