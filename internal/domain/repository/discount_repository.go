package repository

import (
	"context"

	"github.com/sangkips/hospitality-pos/internal/domain/entity"
)

// DiscountCodeRepository reads codes visible to the outlet in ctx: its own
// and the ones shared by every outlet
type DiscountCodeRepository interface {
	Create(ctx context.Context, code *entity.DiscountCode) error
	GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error)
	List(ctx context.Context, activeOnly bool) ([]entity.DiscountCode, error)
}
