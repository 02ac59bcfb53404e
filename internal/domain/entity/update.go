package entity

import (
	"time"

	"github.com/google/uuid"
)

// UpdateCategory tags what kind of statement an update makes.
type UpdateCategory string

const (
	UpdateCategoryGeneral    UpdateCategory = "general"
	UpdateCategorySpecial    UpdateCategory = "special"
	UpdateCategoryHours      UpdateCategory = "hours"
	UpdateCategoryEvent      UpdateCategory = "event"
	UpdateCategoryNewService UpdateCategory = "new_service"
	UpdateCategoryClosure    UpdateCategory = "closure"
)

// UpdateStatus is the lifecycle state of an update.
type UpdateStatus string

const (
	UpdateStatusDraft           UpdateStatus = "draft"
	UpdateStatusProcessing      UpdateStatus = "processing"
	UpdateStatusReadyForPreview UpdateStatus = "ready_for_preview"
	UpdateStatusPublished       UpdateStatus = "published"
	UpdateStatusFailed          UpdateStatus = "failed"
)

// Update is a time-bound statement issued by a business.
type Update struct {
	ID                uuid.UUID      // The Global Unique Identifier (GUID) for the update.
	BusinessID        uuid.UUID      // The business that issued it.
	ContentText       string         // Free-text content, rendered verbatim.
	DealTerms         string         // Optional deal terms.
	SpecialHoursToday string         // Optional override of today's hours.
	Category          UpdateCategory // Category tag.
	ExpiresAt         *time.Time     // Optional expiration timestamp.
	Status            UpdateStatus   // Lifecycle status.
	CreatedAt         time.Time      // Timestamp of when this update was created.
	UpdatedAt         time.Time      // Timestamp of the last modification.
}

// TemporalInfo is the time information extracted from an update's content.
type TemporalInfo struct {
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	EventDates []string   `json:"eventDates,omitempty"`
	Times      []string   `json:"times,omitempty"`
}
