package database

import (
	"fmt"

	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/pkg/logger"

	"gorm.io/gorm"
)

// Migration modes accepted by Migrate.
const (
	MigrationModeAuto = "auto"
	MigrationModeDrop = "drop"
)

// Migrate brings the schema in line with the models.
// "auto" only adds tables and columns; "drop" recreates every table.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case MigrationModeDrop:
		logger.Warning("running in drop mode, every table will be recreated")
		return DropAndRecreate(db)
	case MigrationModeAuto, "":
		return AutoMigrate(db)
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}
}

// AutoMigrate creates missing tables and columns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database migration completed")
	return nil
}

// DropAndRecreate drops all managed tables, children first, then migrates.
func DropAndRecreate(db *gorm.DB) error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table for %T: %w", all[i], err)
		}
	}
	return AutoMigrate(db)
}
