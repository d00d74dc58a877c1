package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/hospitality-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type discountCodeRepository struct {
	db *gorm.DB
}

// NewDiscountCodeRepository creates a new discount code repository
func NewDiscountCodeRepository(db *gorm.DB) domainRepo.DiscountCodeRepository {
	return &discountCodeRepository{db: db}
}

func (r *discountCodeRepository) Create(ctx context.Context, code *entity.DiscountCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// GetByCode matches case-insensitively; an outlet's own code wins over a shared one
func (r *discountCodeRepository) GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	var dc entity.DiscountCode
	err := r.db.WithContext(ctx).
		Scopes(SharedOutletScope(ctx)).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		Order("outlet_id IS NULL").
		First(&dc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dc, err
}

func (r *discountCodeRepository) List(ctx context.Context, activeOnly bool) ([]entity.DiscountCode, error) {
	var codes []entity.DiscountCode
	query := r.db.WithContext(ctx).Scopes(SharedOutletScope(ctx))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("code ASC").Find(&codes).Error
	return codes, err
}
