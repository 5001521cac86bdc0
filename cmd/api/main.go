// Package main is the entry point for the BankFlow API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/bankflow/backend/config"
	"github.com/bankflow/backend/internal/application/usecase/classification"
	"github.com/bankflow/backend/internal/application/usecase/remittance"
	"github.com/bankflow/backend/internal/application/usecase/statement"
	"github.com/bankflow/backend/internal/application/usecase/taxcalc"
	"github.com/bankflow/backend/internal/domain/valueobject"
	"github.com/bankflow/backend/internal/infra/server/router"
	"github.com/bankflow/backend/internal/integration/entrypoint/controller"
	"github.com/bankflow/backend/internal/integration/entrypoint/middleware"
)

const (
	serviceName = "bankflow-api"
	version     = "1.0.0"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting BankFlow API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Build the rules engine
	matchingConfig := matchingConfigFrom(cfg.Rules)
	classifier := classification.NewClassifier(valueobject.DefaultRuleSet())
	calculator := taxcalc.NewCalculator(classifier, matchingConfig)
	expander := remittance.NewExpander(classifier, calculator, matchingConfig)
	processUseCase := statement.NewProcessStatementUseCase(calculator, expander)

	// Create controllers and middleware
	healthController := controller.NewHealthController(serviceName, version)
	statementController := controller.NewStatementController(processUseCase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.Server.AllowedOrigins)

	// Setup router
	r := router.NewRouter(healthController, statementController, corsMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// matchingConfigFrom builds the domain matching config from env-backed
// settings, falling back to the defaults on malformed values.
func matchingConfigFrom(rules config.RulesConfig) valueobject.MatchingConfig {
	mc := valueobject.DefaultMatchingConfig()

	if tolerance, err := decimal.NewFromString(rules.SumTolerance); err == nil && tolerance.IsPositive() {
		mc.SumTolerance = tolerance
	} else {
		slog.Warn("Invalid sum tolerance, using default", "value", rules.SumTolerance)
	}

	if commission, err := decimal.NewFromString(rules.FixedCommission); err == nil && !commission.IsPositive() {
		mc.FixedCommission = commission
	} else {
		slog.Warn("Invalid fixed commission, using default", "value", rules.FixedCommission)
	}

	if rules.DateWindowDays >= 0 {
		mc.DateWindowDays = rules.DateWindowDays
	}

	return mc
}
