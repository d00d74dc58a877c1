package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/config"
	domainRepo "github.com/sangkips/hospitality-pos/internal/domain/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/handler"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/middleware"
	"github.com/sangkips/hospitality-pos/pkg/utils"
)

// Permissions checked by the routes
const (
	PermManageOrders    = "manage-orders"
	PermViewInvoices    = "view-invoices"
	PermPrintInvoices   = "print-invoices"
	PermManageSettings  = "manage-settings"
	PermManageDiscounts = "manage-discounts"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order    *handler.OrderHandler
	Invoice  *handler.InvoiceHandler
	Settings *handler.SettingsHandler
	Discount *handler.DiscountHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.OutletRateLimiter
}

// NewRateLimiter builds the per-outlet limiter from the rate limit config
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.OutletRateLimiter {
	rlCfg := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rlCfg.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rlCfg.BurstSize = cfg.Requests
	}
	rlCfg.CleanupInterval = 5 * time.Minute
	rlCfg.EntryTTL = 10 * time.Minute
	return middleware.NewOutletRateLimiter(rlCfg)
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.OutletMiddleware())
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerOrderRoutes(protected, h, deps)
		registerSettingsRoutes(protected, h)
		registerDiscountRoutes(protected, h)
		registerPrinterRoutes(protected, h)
	}

	return router
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		manage := orders.Group("")
		manage.Use(middleware.RequirePermission(PermManageOrders))
		manage.GET("", h.Order.List)
		manage.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:     deps.IdempotencyRepo,
			Required: true,
		}), h.Order.Create)
		manage.GET("/:id", h.Order.Get)
		manage.PATCH("/:id/status", h.Order.UpdateStatus)
		manage.GET("/:id/timing", h.Order.Timing)

		invoices := orders.Group("/:id/invoice")
		invoices.Use(middleware.RequirePermission(PermViewInvoices))
		invoices.GET("", h.Invoice.Preview)
		invoices.GET("/html", h.Invoice.HTML)

		delivery := orders.Group("/:id/invoice")
		delivery.Use(middleware.RequirePermission(PermPrintInvoices))
		delivery.POST("/email", h.Invoice.Email)
		delivery.POST("/print", h.Printer.PrintInvoice)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings/invoice")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.GET("/section-order", h.Settings.GetSectionOrder)
		settings.PUT("", middleware.RequirePermission(PermManageSettings), h.Settings.UpdateSettings)
	}
}

func registerDiscountRoutes(protected *gin.RouterGroup, h *Handlers) {
	discounts := protected.Group("/discount-codes")
	{
		discounts.GET("", h.Discount.List)
		discounts.GET("/validate", h.Discount.Validate)
		discounts.POST("", middleware.RequirePermission(PermManageDiscounts), h.Discount.Create)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printer := protected.Group("/printer")
	printer.Use(middleware.RequirePermission(PermPrintInvoices))
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
