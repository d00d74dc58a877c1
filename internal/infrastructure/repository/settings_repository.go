package repository

import (
	"context"
	"errors"

	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceSettingsRepository struct {
	db *gorm.DB
}

// NewInvoiceSettingsRepository creates a new invoice settings repository
func NewInvoiceSettingsRepository(db *gorm.DB) repository.InvoiceSettingsRepository {
	return &invoiceSettingsRepository{db: db}
}

// Get returns the settings of the outlet in ctx, nil when none exist yet
func (r *invoiceSettingsRepository) Get(ctx context.Context) (*entity.InvoiceSettings, error) {
	var settings entity.InvoiceSettings
	err := r.db.WithContext(ctx).Scopes(OutletScope(ctx)).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *invoiceSettingsRepository) Create(ctx context.Context, settings *entity.InvoiceSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *invoiceSettingsRepository) Update(ctx context.Context, settings *entity.InvoiceSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
