package model

import (
	"time"

	"github.com/google/uuid"
)

// UpdateModel mirrors the 'updates' table. BusinessID references businesses.id.
type UpdateModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ContentText       string    `gorm:"type:text;not null"`
	DealTerms         string    `gorm:"type:text"`
	SpecialHoursToday string    `gorm:"type:varchar(255)"`
	Category          string    `gorm:"type:varchar(32);not null;default:general"`
	ExpiresAt         *time.Time
	Status            string `gorm:"type:varchar(32);not null;default:draft;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UpdateModel) TableName() string {
	return "updates"
}
