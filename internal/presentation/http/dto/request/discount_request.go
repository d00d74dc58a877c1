package request

import (
	"time"

	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CreateDiscountRequest represents a discount code creation request
type CreateDiscountRequest struct {
	Code           string            `json:"code" binding:"required,min=3,max=50"`
	Type           enum.DiscountType `json:"type" binding:"required"`
	Value          decimal.Decimal   `json:"value"`
	MinOrderAmount *decimal.Decimal  `json:"min_order_amount"`
	IsActive       *bool             `json:"is_active"`
	ValidFrom      *time.Time        `json:"valid_from"`
	ValidTo        *time.Time        `json:"valid_to"`
	Description    string            `json:"description" binding:"max=255"`
	Shared         bool              `json:"shared"`
}

// ValidateDiscountQuery checks a code against an order
type ValidateDiscountQuery struct {
	Code    string `form:"code" binding:"required"`
	OrderID string `form:"order_id" binding:"required,uuid"`
}
