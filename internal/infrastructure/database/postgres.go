package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/config"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormWriter routes gorm's log lines into zerolog
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	log.Debug().Str("component", "gorm").Msgf(format, args...)
}

// NewPostgresDB opens the connection pool. SQL statements are logged only in debug mode.
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Connected to PostgreSQL")
	return db, nil
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations")

	err := db.AutoMigrate(
		&entity.Order{},
		&entity.OrderStatusEvent{},
		&entity.DiscountCode{},
		&entity.InvoiceSettings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed")
	return nil
}

// SeedDefaultData adds a shared welcome discount code when no codes exist yet
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.DiscountCode{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count discount codes: %w", err)
	}
	if count > 0 {
		return nil
	}

	welcome := entity.DiscountCode{
		Code:        "WELCOME10",
		Type:        enum.DiscountTypePercentage,
		Value:       decimal.NewFromInt(10),
		IsActive:    true,
		Description: "10% off for first-time guests",
	}
	if err := db.Create(&welcome).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to seed discount code: %w", err)
	}

	log.Info().Str("code", welcome.Code).Msg("Seeded default discount code")
	return nil
}
