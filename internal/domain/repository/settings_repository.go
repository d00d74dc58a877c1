package repository

import (
	"context"

	"github.com/sangkips/hospitality-pos/internal/domain/entity"
)

// InvoiceSettingsRepository stores one settings row per outlet. The outlet is
// taken from ctx.
type InvoiceSettingsRepository interface {
	Get(ctx context.Context) (*entity.InvoiceSettings, error)
	Create(ctx context.Context, settings *entity.InvoiceSettings) error
	Update(ctx context.Context, settings *entity.InvoiceSettings) error
}
