package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/carein/call-summary/docs"
	"github.com/carein/call-summary/internal/adapter/handler"
	"github.com/carein/call-summary/internal/adapter/repository"
	"github.com/carein/call-summary/internal/infrastructure/database"
	httpmw "github.com/carein/call-summary/internal/infrastructure/http/middleware"
	"github.com/carein/call-summary/internal/infrastructure/metrics"
	"github.com/carein/call-summary/internal/usecase/commlog"
	"github.com/carein/call-summary/internal/usecase/summary"
	pkgai "github.com/carein/call-summary/pkg/ai"
	"github.com/carein/call-summary/pkg/config"
	pkgvalidator "github.com/carein/call-summary/pkg/validator"
)

// @title           CareIn AI Call Summary API
// @version         1.0
// @description     Summarizes dental office call transcripts and keeps an audit trail of every generation

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Request IDs and structured request logging
	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))

	// Initialize dependencies
	logger.Info("🔧 Initializing dependencies...")

	// Initialize Database
	logger.Info("📦 Connecting to database...", zap.String("driver", cfg.Database.Driver))
	db, err := database.NewDB(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		logger.Info("🔄 Applying embedded migrations...")
		n, err := database.AutoMigrate(db, cfg.Database.Driver)
		if err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		logger.Info("✅ Migrations applied", zap.Int("count", n))
	} else {
		logger.Info("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize repositories
	logger.Info("⚙️  Initializing repositories...")
	summaryRepo := repository.NewCallSummaryRepository(db)
	commLogRepo := repository.NewCommLogRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize AI components
	logger.Info("🤖 Initializing summarizer...", zap.String("model", cfg.OpenAI.Model))
	summarizer := pkgai.NewOpenAISummarizer(&cfg.OpenAI, logger)

	recorder := metrics.NewPrometheusRecorder()

	// Initialize services
	summaryService := summary.NewCallSummaryService(
		summaryRepo,
		commLogRepo,
		transactor,
		summarizer,
		recorder,
		logger,
		summary.Options{Transactional: cfg.Audit.Transactional},
	)
	commLogService := commlog.NewCommLogService(commLogRepo)

	// Initialize handlers
	summaryHandler := handler.NewSummaryHandler(summaryService, logger)
	commLogHandler := handler.NewCommLogHandler(commLogService, logger)

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summaryHandler, commLogHandler, recorder.Handler())
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Environment),
		)
		logger.Info("🔗 Health check: http://" + addr + "/health")

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// newLogger builds a production or development zap logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
