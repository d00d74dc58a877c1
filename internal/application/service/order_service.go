package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/timing"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
	"github.com/sangkips/hospitality-pos/pkg/pagination"
	"github.com/sangkips/hospitality-pos/pkg/utils"
	"gorm.io/gorm"
)

// OrderService handles orders and their status lifecycle
type OrderService struct {
	orderRepo repository.OrderRepository
	clock     func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, clock: time.Now}
}

// WithClock replaces the time source
func (s *OrderService) WithClock(clock func() time.Time) *OrderService {
	s.clock = clock
	return s
}

// CreateOrderInput carries a new order. Items is the raw JSON sent by the
// client: a list of items or a string holding one.
type CreateOrderInput struct {
	UserID        uuid.UUID
	OrderType     enum.OrderType
	CustomerName  string
	CustomerEmail string
	TableNumber   string
	Items         json.RawMessage
}

// CreateOrder stores a Pending order with its first history event
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	outletID, ok := infraRepo.GetOutletID(ctx)
	if !ok {
		return nil, apperror.ErrMissingOutlet
	}

	if input.OrderType == "" {
		input.OrderType = enum.OrderTypeDineIn
	}
	if !input.OrderType.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "order_type", Message: "must be one of dine_in, takeaway, delivery, room_service"},
		})
	}

	items := billing.NormalizeItems(input.Items)
	if len(items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "at least one item with a quantity of 1 or more is required"},
		})
	}

	now := s.clock()
	createdBy := input.UserID
	order := &entity.Order{
		OutletID:      outletID,
		InvoiceNo:     utils.GenerateInvoiceNo("INV", now),
		OrderType:     input.OrderType,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		TableNumber:   input.TableNumber,
		Status:        enum.OrderStatusPending,
		CreatedBy:     input.UserID,
		History: []entity.OrderStatusEvent{
			{Status: enum.OrderStatusPending, ChangedAt: now, ChangedBy: &createdBy},
		},
	}
	order.SetItems(items)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Str("outlet_id", outletID.String()).
		Str("invoice_no", order.InvoiceNo).
		Int("items", len(items)).
		Msg("Order created")

	return order, nil
}

// GetOrder returns an order with its history
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns a page of the outlet's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, params repository.OrderFilterParams) (*pagination.Result[entity.Order], error) {
	params.Pagination.Normalize()
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(orders, pagination.New(params.Pagination, total)), nil
}

// UpdateStatusInput moves an order to Next
type UpdateStatusInput struct {
	ActorID uuid.UUID
	OrderID uuid.UUID
	Next    enum.OrderStatus
	Note    string
}

// UpdateStatus validates the transition and appends one history event.
// Forward moves of the lifecycle are allowed, as is returning to any
// status the order has already been in.
func (s *OrderService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !input.Next.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}
	if input.Next == order.Status {
		return nil, apperror.Wrap(apperror.ErrInvalidTransition, "order is already "+order.Status.String())
	}
	if !order.Status.CanTransitionTo(input.Next) && !order.HasVisited(input.Next) {
		return nil, apperror.Wrap(apperror.ErrInvalidTransition,
			fmt.Sprintf("%s cannot move to %s", order.Status, input.Next))
	}

	actor := input.ActorID
	event := &entity.OrderStatusEvent{
		Status:    input.Next,
		ChangedAt: s.clock(),
		ChangedBy: &actor,
		Note:      input.Note,
	}
	if err := s.orderRepo.AppendStatus(ctx, order.ID, order.Status, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Order")
		}
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, apperror.Wrap(apperror.ErrInvalidTransition,
				fmt.Sprintf("order is no longer %s", order.Status))
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Str("from", order.Status.String()).
		Str("to", input.Next.String()).
		Msg("Order status changed")

	order.Status = input.Next
	order.History = append(order.History, *event)
	return order, nil
}

// OrderTiming is the timing report of one order
type OrderTiming struct {
	OrderID uuid.UUID        `json:"order_id"`
	Status  enum.OrderStatus `json:"status"`
	timing.Report
}

// GetTiming measures the order's history against the current time
func (s *OrderService) GetTiming(ctx context.Context, id uuid.UUID) (*OrderTiming, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderTiming{
		OrderID: order.ID,
		Status:  order.Status,
		Report:  timing.Analyze(order.TimingEvents(), s.clock()),
	}, nil
}
