package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// OutletIDKey holds the outlet of the authenticated staff member
const OutletIDKey ctxKey = "outlet_id"

// OutletScope filters rows by the outlet in ctx. Without an outlet the
// query matches nothing.
func OutletScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		outletID, ok := GetOutletID(ctx)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Where("outlet_id = ?", outletID)
	}
}

// SharedOutletScope is OutletScope that also matches rows with no outlet
func SharedOutletScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		outletID, ok := GetOutletID(ctx)
		if !ok {
			return db.Where("outlet_id IS NULL")
		}
		return db.Where("outlet_id = ? OR outlet_id IS NULL", outletID)
	}
}

// WithOutlet stores outletID in ctx
func WithOutlet(ctx context.Context, outletID uuid.UUID) context.Context {
	return context.WithValue(ctx, OutletIDKey, outletID)
}

// GetOutletID reads the outlet from ctx
func GetOutletID(ctx context.Context) (uuid.UUID, bool) {
	outletID, ok := ctx.Value(OutletIDKey).(uuid.UUID)
	if !ok || outletID == uuid.Nil {
		return uuid.Nil, false
	}
	return outletID, true
}
