package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeneratedPageModel mirrors the 'generated_pages' table.
// CompressedData holds the compact page document; ExpirySweepID tags the rows
// claimed by one expiration sweep.
type GeneratedPageModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	UpdateID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	FilePath          string         `gorm:"type:varchar(512);not null;index"`
	Title             string         `gorm:"type:varchar(255);not null"`
	IntentType        string         `gorm:"type:varchar(32);not null"`
	PageVariant       string         `gorm:"type:varchar(64)"`
	CompressedData    datatypes.JSON `gorm:"not null"`
	EstimatedSizeKB   int            `gorm:"column:estimated_size_kb;not null;default:0"`
	GenerationBatchID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Published         bool           `gorm:"not null;default:false"`
	PublishedAt       *time.Time
	Expired           bool       `gorm:"not null;default:false"`
	ExpiresAt         *time.Time `gorm:"index"`
	ExpirySweepID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeneratedPageModel) TableName() string {
	return "generated_pages"
}
