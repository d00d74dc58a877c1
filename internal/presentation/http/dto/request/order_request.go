package request

import (
	"encoding/json"

	"github.com/sangkips/hospitality-pos/internal/domain/enum"
)

// CreateOrderRequest represents an order creation request. Items may be a
// JSON array or a string holding one.
type CreateOrderRequest struct {
	OrderType     enum.OrderType  `json:"order_type" binding:"omitempty,oneof=dine_in takeaway delivery room_service"`
	CustomerName  string          `json:"customer_name" binding:"max=255"`
	CustomerEmail string          `json:"customer_email" binding:"omitempty,email,max=255"`
	TableNumber   string          `json:"table_number" binding:"max=20"`
	Items         json.RawMessage `json:"items" binding:"required"`
}

// UpdateOrderStatusRequest accepts a status name ("Preparing") or its number
type UpdateOrderStatusRequest struct {
	Status *enum.OrderStatus `json:"status" binding:"required"`
	Note   string            `json:"note" binding:"max=500"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	OrderType string `form:"order_type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
