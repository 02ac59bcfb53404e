package postgres

import (
	"pagecast/internal/errors"
	"pagecast/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// liveFilePathIndex keeps at most one live page per file path.
const liveFilePathIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_generated_pages_live_path
ON generated_pages (file_path) WHERE published AND NOT expired`

// Models lists every persisted model, in dependency order.
func Models() []any {
	return []any{
		&model.BusinessModel{},
		&model.UpdateModel{},
		&model.GeneratedPageModel{},
	}
}

// Migrate creates or updates the schema. Production deployments apply the
// SQL files under migrations/; this is used by local runs and tests.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}
	if err := db.Exec(liveFilePathIndex).Error; err != nil {
		return errors.Wrap(err, "failed to create live file path index")
	}

	return nil
}
