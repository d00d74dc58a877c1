package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/config"
	"github.com/sangkips/hospitality-pos/internal/infrastructure/database"
	"github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/handler"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/middleware"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/routes"
	"github.com/sangkips/hospitality-pos/pkg/email"
	"github.com/sangkips/hospitality-pos/pkg/logger"
	"github.com/sangkips/hospitality-pos/pkg/printer"
	"github.com/sangkips/hospitality-pos/pkg/utils"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.App.Env)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Amounts are JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default data")
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewInvoiceSettingsRepository(db)
	discountRepo := repository.NewDiscountCodeRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Billing core
	converter := billing.NewConverter(cfg.Currency.Base, cfg.Currency.Rates)
	calculator := billing.NewCalculator(converter)

	mailer := email.NewMailer(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})
	if !mailer.Enabled() {
		log.Info().Msg("SMTP not configured, invoice email disabled")
	}

	thermal, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Printer unavailable, falling back to no-op printer")
		thermal = printer.NewNullPrinter()
	}
	defer thermal.Close()

	// Initialize services
	orderService := service.NewOrderService(orderRepo)
	discountService := service.NewDiscountService(discountRepo)
	settingsService := service.NewSettingsService(settingsRepo, converter)
	invoiceService := service.NewInvoiceService(orderRepo, settingsRepo, discountService, calculator, mailer)
	printerService := service.NewPrinterService(thermal, invoiceService, cfg.Printer.Type, cfg.Printer.CharWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:    handler.NewOrderHandler(orderService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Settings: handler.NewSettingsHandler(settingsService),
		Discount: handler.NewDiscountHandler(discountService, orderService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	go rateLimiter.Run(ctx.Done())
	go middleware.PurgeIdempotencyKeys(ctx, idempotencyRepo, time.Hour)

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}
