package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BusinessModel mirrors the 'businesses' table. The searchable columns are
// denormalized from the profile document.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type BusinessModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerEmail string         `gorm:"type:varchar(255);not null"`
	Slug       string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Category   string         `gorm:"type:varchar(100);not null"`
	City       string         `gorm:"type:varchar(100);not null"`
	State      string         `gorm:"type:varchar(50);not null"`
	Profile    datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
