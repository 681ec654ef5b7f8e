package db

import (
	"fmt"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates the nutrition tables, unique name indexes and link
// foreign keys. It is idempotent and safe to run on every start.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
