package main

import (
	"log/slog"
	"os"

	"github.com/Alish-p/transport-rewrite-sub001/internal/core/services"
	"github.com/Alish-p/transport-rewrite-sub001/internal/handlers"
	"github.com/Alish-p/transport-rewrite-sub001/internal/middleware"
	"github.com/Alish-p/transport-rewrite-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Fleet Billing API
// @version 1.0
// @description Computes freight lines, tax breakups, transporter payments, driver payslips and customer invoices.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer, err := services.NewServiceContainer(cfg)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Billing service ready",
		slog.String("home_state", cfg.TaxRules.HomeState),
		slog.String("default_gst_rate", cfg.TaxRules.DefaultGSTRate.String()),
		slog.String("customer_tax_rate", cfg.TaxRules.CustomerTaxRate.String()))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
