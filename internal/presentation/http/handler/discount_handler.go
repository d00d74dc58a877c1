package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
)

// DiscountHandler handles discount code requests
type DiscountHandler struct {
	discountService *service.DiscountService
	orderService    *service.OrderService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService, orderService *service.OrderService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService, orderService: orderService}
}

// List handles listing the codes visible to the outlet
func (h *DiscountHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	codes, err := h.discountService.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount codes retrieved successfully", codes)
}

// Create handles creating a discount code
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.CreateDiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	code, err := h.discountService.Create(c.Request.Context(), &service.CreateDiscountInput{
		Code:           req.Code,
		Type:           req.Type,
		Value:          req.Value,
		MinOrderAmount: req.MinOrderAmount,
		IsActive:       isActive,
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
		Description:    req.Description,
		Shared:         req.Shared,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount code created successfully", code)
}

// Validate checks a code against an order without applying it
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req request.ValidateDiscountQuery
	if !bindQuery(c, &req) {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), uuid.MustParse(req.OrderID))
	if err != nil {
		response.Error(c, err)
		return
	}

	discount, rejection, err := h.discountService.Validate(c.Request.Context(), req.Code, order.Total, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount code checked", gin.H{
		"valid":     rejection == nil,
		"discount":  discount,
		"rejection": rejection,
	})
}
