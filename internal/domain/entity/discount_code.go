package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DiscountCode is an operator defined promotion. A nil OutletID makes the
// code valid at every outlet. Shared codes are unique among themselves
// through a partial index.
type DiscountCode struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OutletID       *uuid.UUID        `gorm:"type:uuid;uniqueIndex:idx_discount_codes_outlet_code" json:"outlet_id,omitempty"`
	Code           string            `gorm:"size:50;not null;uniqueIndex:idx_discount_codes_outlet_code;uniqueIndex:idx_discount_codes_shared_code,where:outlet_id IS NULL" json:"code"`
	Type           enum.DiscountType `gorm:"size:20;not null" json:"type"`
	Value          decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"value"`
	MinOrderAmount *decimal.Decimal  `gorm:"type:numeric(12,2)" json:"min_order_amount,omitempty"`
	IsActive       bool              `gorm:"not null" json:"is_active"`
	ValidFrom      *time.Time        `json:"valid_from,omitempty"`
	ValidTo        *time.Time        `json:"valid_to,omitempty"`
	Description    string            `gorm:"size:255" json:"description,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}

// ToBilling returns the fields the discount resolver validates
func (d *DiscountCode) ToBilling() billing.DiscountCode {
	code := billing.DiscountCode{
		Code:           d.Code,
		Type:           d.Type,
		Value:          d.Value,
		MinOrderAmount: d.MinOrderAmount,
		IsActive:       d.IsActive,
		ValidFrom:      d.ValidFrom,
		ValidTo:        d.ValidTo,
	}
	if d.OutletID != nil {
		code.OutletID = d.OutletID.String()
	}
	return code
}

func (d *DiscountCode) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (DiscountCode) TableName() string {
	return "discount_codes"
}
