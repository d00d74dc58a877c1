package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/hospitality-pos/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	params := repository.OrderFilterParams{
		Search: req.Search,
		Pagination: pagination.Params{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	}

	if req.Status != "" {
		if statusInt, err := strconv.Atoi(req.Status); err == nil {
			status := enum.OrderStatus(statusInt)
			params.Status = &status
		} else if status, ok := enum.ParseOrderStatus(req.Status); ok {
			params.Status = &status
		}
	}

	if req.OrderType != "" {
		orderType := enum.OrderType(req.OrderType)
		if orderType.IsValid() {
			params.OrderType = &orderType
		}
	}

	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &startDate
		}
	}

	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			end := endDate.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &end
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:        *userID,
		OrderType:     req.OrderType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TableNumber:   req.TableNumber,
		Items:         req.Items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles moving an order through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	var req request.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), &service.UpdateStatusInput{
		ActorID: *userID,
		OrderID: id,
		Next:    *req.Status,
		Note:    req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Timing handles the stage durations of an order
func (h *OrderHandler) Timing(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}

	report, err := h.orderService.GetTiming(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order timing retrieved successfully", report)
}
