package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,50}$`)

// DiscountService manages discount codes and validates them against orders
type DiscountService struct {
	discountRepo repository.DiscountCodeRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountCodeRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// CreateDiscountInput describes a new code. Shared codes apply at every outlet.
type CreateDiscountInput struct {
	Code           string
	Type           enum.DiscountType
	Value          decimal.Decimal
	MinOrderAmount *decimal.Decimal
	IsActive       bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
	Description    string
	Shared         bool
}

// Create validates and stores a code. The code is stored upper-case and a
// ValidTo at midnight is extended to the end of that day.
func (s *DiscountService) Create(ctx context.Context, input *CreateDiscountInput) (*entity.DiscountCode, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))

	var fieldErrors []apperror.FieldError
	if !codePattern.MatchString(code) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "code", Message: "must be 3-50 letters, digits, '-' or '_'"})
	}
	if !input.Type.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "type", Message: "must be percentage or fixed_amount"})
	}
	if !input.Value.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "value", Message: "must be greater than zero"})
	} else if input.Type == enum.DiscountTypePercentage && input.Value.GreaterThan(decimal.NewFromInt(100)) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "value", Message: "percentage cannot exceed 100"})
	}
	if input.MinOrderAmount != nil && input.MinOrderAmount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "min_order_amount", Message: "cannot be negative"})
	}

	validTo := endOfDay(input.ValidTo)
	if input.ValidFrom != nil && validTo != nil && validTo.Before(*input.ValidFrom) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "valid_to", Message: "must not be before valid_from"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	var outletID *uuid.UUID
	if !input.Shared {
		id, ok := infraRepo.GetOutletID(ctx)
		if !ok {
			return nil, apperror.ErrMissingOutlet
		}
		outletID = &id
	}

	existing, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("Discount code %s already exists", code))
	}

	dc := &entity.DiscountCode{
		OutletID:       outletID,
		Code:           code,
		Type:           input.Type,
		Value:          input.Value,
		MinOrderAmount: input.MinOrderAmount,
		IsActive:       input.IsActive,
		ValidFrom:      input.ValidFrom,
		ValidTo:        validTo,
		Description:    input.Description,
	}
	if err := s.discountRepo.Create(ctx, dc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError(fmt.Sprintf("Discount code %s already exists", code))
		}
		return nil, fmt.Errorf("failed to create discount code: %w", err)
	}
	return dc, nil
}

// List returns the codes visible to the outlet
func (s *DiscountService) List(ctx context.Context, activeOnly bool) ([]entity.DiscountCode, error) {
	return s.discountRepo.List(ctx, activeOnly)
}

// Validate checks code against an order total in the base currency. A
// refused code yields no discount and a rejection, never an error.
func (s *DiscountService) Validate(ctx context.Context, code string, orderTotal decimal.Decimal, now time.Time) (billing.Discount, *billing.Rejection, error) {
	check := billing.CodeCheck{OrderTotal: orderTotal, Now: now}
	if outletID, ok := infraRepo.GetOutletID(ctx); ok {
		check.OutletID = outletID.String()
	}

	dc, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		return billing.NoDiscount(), nil, err
	}

	var known []billing.DiscountCode
	if dc != nil {
		known = append(known, dc.ToBilling())
	}
	discount, rejection := billing.ResolveCodeText(known, code, check)
	if rejection != nil {
		log.Warn().
			Str("code", rejection.Code).
			Str("outlet_id", check.OutletID).
			Str("reason", string(rejection.Reason)).
			Msg("Discount code rejected")
	}
	return discount, rejection, nil
}

func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return t
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}
