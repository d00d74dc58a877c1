package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
)

// OutletMiddleware rejects tokens that are not bound to an outlet and scopes
// the request context to the token's outlet for services and repositories
func OutletMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		outletID := GetOutletID(c)
		if outletID == uuid.Nil {
			response.Error(c, apperror.ErrMissingOutlet)
			c.Abort()
			return
		}

		ctx := infraRepo.WithOutlet(c.Request.Context(), outletID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetOutletID retrieves the outlet ID from gin context
func GetOutletID(c *gin.Context) uuid.UUID {
	outletID, exists := c.Get("outlet_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := outletID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
