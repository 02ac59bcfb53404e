package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpirationAction names an expiration trigger action.
type ExpirationAction string

const (
	ActionExpireAll     ExpirationAction = "expire-all"
	ActionExpireSingle  ExpirationAction = "expire-single"
	ActionExtend        ExpirationAction = "extend"
	ActionCheckUpcoming ExpirationAction = "check-upcoming"
)

// ExpirationRequest is the expiration trigger input.
type ExpirationRequest struct {
	Action ExpirationAction `json:"action" validate:"required,oneof=expire-all expire-single extend check-upcoming"`
	PageID *uuid.UUID       `json:"pageId" validate:"required_if=Action expire-single,required_if=Action extend"`
	Hours  float64          `json:"hours"`
}

// PageExpiry summarizes a page for expiration reports.
type PageExpiry struct {
	ID        uuid.UUID  `json:"id"`
	FilePath  string     `json:"filePath"`
	Title     string     `json:"title"`
	ExpiresAt *time.Time `json:"expiresAt"`
	Expired   bool       `json:"expired"`

	// ExpiresIn is set on upcoming pages only, e.g. "20m0s".
	ExpiresIn string `json:"expiresIn,omitempty"`
}

// ExpirationResult is the expiration trigger output.
type ExpirationResult struct {
	Success       bool         `json:"success"`
	Message       string       `json:"message"`
	ExpiredCount  *int         `json:"expiredCount,omitempty"`
	ExpiredPages  []PageExpiry `json:"expiredPages,omitempty"`
	UpcomingPages []PageExpiry `json:"upcomingPages,omitempty"`
	Page          *PageExpiry  `json:"page,omitempty"`
}

// ExpirationUsecase retires time-bound pages.
type ExpirationUsecase interface {
	// ExpireAll flips every due page. Running it again with nothing newly due expires nothing.
	ExpireAll(ctx context.Context) (*ExpirationResult, error)

	// ExpireSingle expires one page regardless of its expiry.
	ExpireSingle(ctx context.Context, pageID uuid.UUID) (*ExpirationResult, error)

	// Extend sets expiry to now+hours and revives an expired page.
	Extend(ctx context.Context, pageID uuid.UUID, hours float64) (*ExpirationResult, error)

	// CheckUpcoming lists pages expiring within the next hour.
	CheckUpcoming(ctx context.Context) (*ExpirationResult, error)

	// Handle dispatches a trigger request to one of the actions above.
	Handle(ctx context.Context, req *ExpirationRequest) (*ExpirationResult, error)
}
