package schema

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migration is one versioned change to the persisted layout.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// MigrationRecord is a row of the schema_migrations bookkeeping table.
type MigrationRecord struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for MigrationRecord.
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// Migrations lists every migration in ascending version order.
var Migrations = []Migration{
	{Version: 1, Name: "create_users_products_orders", Up: createShopTables},
}

// Migrate applies all migrations that are not recorded in schema_migrations yet.
// Each migration runs in its own transaction together with its bookkeeping row.
func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	var applied []int
	if err := db.Model(&MigrationRecord{}).Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, m := range Migrations {
		if done[m.Version] {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			log.Error("migration failed", zap.Int("version", m.Version), zap.String("name", m.Name), zap.Error(err))
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		log.Info("migration applied", zap.Int("version", m.Version), zap.String("name", m.Name))
	}

	return nil
}

// Version returns the highest applied migration version, 0 for an empty database.
func Version(ctx context.Context, db *gorm.DB) (int, error) {
	var version int
	err := db.WithContext(ctx).Model(&MigrationRecord{}).Select("COALESCE(MAX(version), 0)").Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
