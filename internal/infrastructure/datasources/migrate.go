package datasources

import (
	"fmt"

	"gorm.io/gorm"

	"glg-capital.backend/internal/infrastructure/models"
)

// Migrate creates or updates every table. Running it again is harmless.
func Migrate(db *gorm.DB) error {
	for _, m := range models.All() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
