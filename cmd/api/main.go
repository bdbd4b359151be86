package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/docs"
	"github.com/campoflow/fieldops-api/internal/auth"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/database"
	"github.com/campoflow/fieldops-api/internal/http/handler"
	"github.com/campoflow/fieldops-api/internal/http/middleware"
	"github.com/campoflow/fieldops-api/internal/http/router"
	"github.com/campoflow/fieldops-api/internal/jobs"
	"github.com/campoflow/fieldops-api/internal/logger"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
	"github.com/campoflow/fieldops-api/internal/storage"
)

// @title FieldOps API
// @version 1.0
// @description API de gestão de ordens de serviço, técnicos de campo e kits de instalação
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@campoflow.com.br

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token
// @Security BearerAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "fieldops-staging.campoflow.com.br"
	case "production":
		docs.SwaggerInfo.Host = "api.campoflow.com.br"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize storage (report archive)
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	clientRepo := repository.NewClientRepository(db)
	techRepo := repository.NewTechnicianRepository(db)
	cityRepo := repository.NewCityRepository(db)
	contactRepo := repository.NewContactRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	kitRepo := repository.NewKitRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize token manager for JWT auth
	tokens, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo, log)
	clientService := service.NewClientService(clientRepo, contactRepo, log)
	techService := service.NewTechnicianService(techRepo, contactRepo, log)
	cityService := service.NewCityService(cityRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	supplierService := service.NewSupplierService(supplierRepo, contactRepo, log)
	kitService := service.NewKitService(kitRepo, log)
	dashboardService := service.NewDashboardService(orderRepo, techRepo, &cfg.Dashboard, log)
	mapService := service.NewMapService(orderRepo, clientRepo, cityRepo, log)
	reportService := service.NewReportService(orderRepo, fileStorage, &cfg.Reports, log)
	importService := service.NewImportService(orderRepo, clientRepo, techRepo, cityRepo, contactRepo, log)
	authService := service.NewAuthService(userRepo, tokens, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	orderHandler := handler.NewOrderHandler(orderService, &cfg.Jobs, log)
	clientHandler := handler.NewClientHandler(clientService, contactService, log)
	technicianHandler := handler.NewTechnicianHandler(techService, contactService, kitService, log)
	cityHandler := handler.NewCityHandler(cityService, log)
	kitHandler := handler.NewKitHandler(kitService, log)
	supplierHandler := handler.NewSupplierHandler(supplierService, contactService, log)
	contactHandler := handler.NewContactHandler(contactService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, mapService, log)
	reportHandler := handler.NewReportHandler(reportService, importService, log)
	authHandler := handler.NewAuthHandler(authService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		orderHandler,
		clientHandler,
		technicianHandler,
		cityHandler,
		kitHandler,
		supplierHandler,
		contactHandler,
		dashboardHandler,
		reportHandler,
		authHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.DueSweepEnabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterDueSweepJob(
			scheduler,
			orderRepo,
			log,
			cfg.Jobs.DueSweepSchedule,
			cfg.Jobs.DueSoonDays,
		); err != nil {
			log.Error("Failed to register due-date sweep job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with due-date sweep job",
				zap.String("cron_expr", cfg.Jobs.DueSweepSchedule),
				zap.Int("due_soon_days", cfg.Jobs.DueSoonDays),
			)
		}
	} else {
		log.Info("Due-date sweep disabled",
			zap.Bool("due_sweep_enabled", cfg.Jobs.DueSweepEnabled),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
