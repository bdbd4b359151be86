package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/auth"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/database"
	"github.com/campoflow/fieldops-api/internal/http/handler"
	"github.com/campoflow/fieldops-api/internal/http/middleware"

	_ "github.com/campoflow/fieldops-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	db                *gorm.DB
	authMiddleware    *auth.Middleware
	rateLimiter       *middleware.RateLimiter
	orderHandler      *handler.OrderHandler
	clientHandler     *handler.ClientHandler
	technicianHandler *handler.TechnicianHandler
	cityHandler       *handler.CityHandler
	kitHandler        *handler.KitHandler
	supplierHandler   *handler.SupplierHandler
	contactHandler    *handler.ContactHandler
	dashboardHandler  *handler.DashboardHandler
	reportHandler     *handler.ReportHandler
	authHandler       *handler.AuthHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	orderHandler *handler.OrderHandler,
	clientHandler *handler.ClientHandler,
	technicianHandler *handler.TechnicianHandler,
	cityHandler *handler.CityHandler,
	kitHandler *handler.KitHandler,
	supplierHandler *handler.SupplierHandler,
	contactHandler *handler.ContactHandler,
	dashboardHandler *handler.DashboardHandler,
	reportHandler *handler.ReportHandler,
	authHandler *handler.AuthHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		db:                db,
		authMiddleware:    authMiddleware,
		rateLimiter:       rateLimiter,
		orderHandler:      orderHandler,
		clientHandler:     clientHandler,
		technicianHandler: technicianHandler,
		cityHandler:       cityHandler,
		kitHandler:        kitHandler,
		supplierHandler:   supplierHandler,
		contactHandler:    contactHandler,
		dashboardHandler:  dashboardHandler,
		reportHandler:     reportHandler,
		authHandler:       authHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP) // Apply IP-based rate limiting globally

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Dashboard, search and map
			r.Get("/dashboard", rt.dashboardHandler.Overview)
			r.Get("/dashboard/busca", rt.dashboardHandler.Search)
			r.Get("/mapa", rt.dashboardHandler.Map)

			// Service orders
			r.Route("/ordens", func(r chi.Router) {
				r.Get("/", rt.orderHandler.List)
				r.Post("/", rt.orderHandler.Create)
				r.Get("/metricas", rt.orderHandler.Metrics)
				r.Get("/proximas-vencimento", rt.orderHandler.DueSoon)
				r.Get("/{id}", rt.orderHandler.GetByID)
				r.Put("/{id}", rt.orderHandler.Update)
				r.Delete("/{id}", rt.orderHandler.Delete)
			})

			// Clients
			r.Route("/clientes", func(r chi.Router) {
				r.Get("/", rt.clientHandler.List)
				r.Post("/", rt.clientHandler.Create)
				r.Get("/{id}", rt.clientHandler.GetByID)
				r.Put("/{id}", rt.clientHandler.Update)
				r.Delete("/{id}", rt.clientHandler.Delete)
				r.Get("/{id}/contatos", rt.clientHandler.ListContacts)
				r.Post("/{id}/contatos", rt.clientHandler.CreateContact)
			})

			// Technicians
			r.Route("/tecnicos", func(r chi.Router) {
				r.Get("/", rt.technicianHandler.List)
				r.Post("/", rt.technicianHandler.Create)
				r.Get("/{id}", rt.technicianHandler.GetByID)
				r.Put("/{id}", rt.technicianHandler.Update)
				r.Delete("/{id}", rt.technicianHandler.Delete)
				r.Get("/{id}/contatos", rt.technicianHandler.ListContacts)
				r.Post("/{id}/contatos", rt.technicianHandler.CreateContact)
				r.Get("/{id}/kits", rt.technicianHandler.ListKits)
			})

			// Cities
			r.Route("/cidades", func(r chi.Router) {
				r.Get("/", rt.cityHandler.List)
				r.Post("/", rt.cityHandler.Create)
				r.Get("/{id}", rt.cityHandler.GetByID)
				r.Put("/{id}", rt.cityHandler.Update)
				r.Delete("/{id}", rt.cityHandler.Delete)
			})

			// Installation kits
			r.Route("/kits", func(r chi.Router) {
				r.Get("/", rt.kitHandler.List)
				r.Post("/", rt.kitHandler.Create)
				r.Get("/{id}", rt.kitHandler.GetByID)
				r.Delete("/{id}", rt.kitHandler.Delete)

				// Lifecycle endpoints
				r.Post("/{id}/alocar", rt.kitHandler.Allocate)
				r.Post("/{id}/instalar", rt.kitHandler.MarkInstalled)
				r.Post("/{id}/devolver", rt.kitHandler.Release)
			})

			// Suppliers
			r.Route("/fornecedores", func(r chi.Router) {
				r.Get("/", rt.supplierHandler.List)
				r.Post("/", rt.supplierHandler.Create)
				r.Get("/{id}", rt.supplierHandler.GetByID)
				r.Put("/{id}", rt.supplierHandler.Update)
				r.Delete("/{id}", rt.supplierHandler.Delete)
				r.Post("/{id}/contatos", rt.supplierHandler.CreateContact)
			})

			// Contacts (owner-independent operations)
			r.Route("/contatos", func(r chi.Router) {
				r.Put("/{id}", rt.contactHandler.Update)
				r.Put("/{id}/principal", rt.contactHandler.SetPrincipal)
				r.Delete("/{id}", rt.contactHandler.Delete)
			})

			// Reports
			r.Route("/relatorios", func(r chi.Router) {
				r.Get("/ordens.csv", rt.reportHandler.ExportCSV)
				r.Get("/ordens.xlsx", rt.reportHandler.ExportXLSX)
				r.Post("/importar", rt.reportHandler.Import)
			})
		})
	})

	return r
}
