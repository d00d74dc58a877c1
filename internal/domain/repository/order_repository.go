package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/pkg/pagination"
)

// ErrStatusChanged reports a status update that lost a race with another writer
var ErrStatusChanged = errors.New("order status changed")

// OrderFilterParams narrows an order listing
type OrderFilterParams struct {
	Search     string // invoice number, customer name or table
	Status     *enum.OrderStatus
	OrderType  *enum.OrderType
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination pagination.Params
}

// OrderRepository persists orders and their status history. History events
// can only be appended.
type OrderRepository interface {
	// Create stores the order together with its initial history
	Create(ctx context.Context, order *entity.Order) error
	// GetByID loads an order with its history ordered by time, nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params OrderFilterParams) ([]entity.Order, int64, error)
	// AppendStatus moves the order from status from to event.Status and appends
	// event in one transaction. It returns ErrStatusChanged when the order is
	// no longer in status from.
	AppendStatus(ctx context.Context, orderID uuid.UUID, from enum.OrderStatus, event *entity.OrderStatusEvent) error
}
