package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetOutletID extracts the outlet ID from the Gin context
func GetOutletID(c *gin.Context) *uuid.UUID {
	outletIDVal, exists := c.Get("outlet_id")
	if !exists {
		return nil
	}
	outletID, ok := outletIDVal.(uuid.UUID)
	if !ok || outletID == uuid.Nil {
		return nil
	}
	return &outletID
}

// GetUserPermissions extracts the user permissions from the Gin context
func GetUserPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("user_permissions")
	if !exists {
		return nil
	}
	list, _ := permissions.([]string)
	return list
}

// bindJSON binds the body into req. Validation failures are answered with
// per-field errors, malformed bodies with 400.
func bindJSON(c *gin.Context, req interface{}) bool {
	return bindWith(c, c.ShouldBindJSON(req))
}

// bindQuery binds the query string into req
func bindQuery(c *gin.Context, req interface{}) bool {
	return bindWith(c, c.ShouldBindQuery(req))
}

func bindWith(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   toSnake(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		response.ValidationError(c, fieldErrors)
		return false
	}
	response.BadRequest(c, "Invalid request body")
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return "is invalid"
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseID reads a UUID path parameter
func parseID(c *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// invoiceOptions converts the invoice query string
func invoiceOptions(q request.InvoiceQuery) (service.InvoiceOptions, error) {
	opts := service.InvoiceOptions{
		DiscountType: enum.DiscountType(q.DiscountType),
		DiscountCode: strings.TrimSpace(q.DiscountCode),
		Currency:     q.Currency,
		Language:     q.Language,
	}
	if q.DiscountValue != "" {
		v, err := decimal.NewFromString(q.DiscountValue)
		if err != nil {
			return opts, apperror.NewBadRequestError(fmt.Sprintf("Invalid discount_value %q", q.DiscountValue))
		}
		opts.DiscountValue = &v
	}
	if q.ServiceChargeOverride != "" {
		v, err := decimal.NewFromString(q.ServiceChargeOverride)
		if err != nil {
			return opts, apperror.NewBadRequestError(fmt.Sprintf("Invalid service_charge %q", q.ServiceChargeOverride))
		}
		opts.ServiceChargeOverride = &v
	}
	return opts, nil
}

// bindInvoiceOptions reads and converts the invoice query
func bindInvoiceOptions(c *gin.Context) (service.InvoiceOptions, bool) {
	var q request.InvoiceQuery
	if !bindQuery(c, &q) {
		return service.InvoiceOptions{}, false
	}
	opts, err := invoiceOptions(q)
	if err != nil {
		response.Error(c, err)
		return opts, false
	}
	return opts, true
}
