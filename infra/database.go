// Package infra wires the storage layer: database connection, schema
// migration, and the GORM-backed repositories under infra/repository.
package infra

import (
	"log/slog"

	infrarepo "github.com/fintrackhq/fintrack/infra/repository"
	"github.com/fintrackhq/fintrack/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the postgres connection described by cfg.
func NewDBConnection(cfg *config.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	slog.Default().Info("database connection established")
	return db, nil
}

// AutoMigrate creates or updates the five domain tables plus the
// access-token table. Ordering matters: parents before children so the
// cascade foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&infrarepo.User{},
		&infrarepo.Account{},
		&infrarepo.Transaction{},
		&infrarepo.Report{},
		&infrarepo.TaxEstimation{},
		&infrarepo.AccessToken{},
	)
}
