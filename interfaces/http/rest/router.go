package rest

import (
	"net/http"

	"inventory-backend/infrastructure/config"
	"inventory-backend/interfaces/http/rest/handlers"
	"inventory-backend/interfaces/http/rest/middleware"
	lambdahandlers "inventory-backend/interfaces/lambda/handlers"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	inventory *lambdahandlers.InventoryHandler
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	inventory *lambdahandlers.InventoryHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		inventory: inventory,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	// Inventory endpoints
	router.Route("/inventory", func(r chi.Router) {
		inventoryHandler := handlers.NewInventoryHandler(rt.inventory, rt.logger)
		r.Post("/", inventoryHandler.CreateItem)
		r.Get("/", inventoryHandler.GetInventory)
		r.Put("/{id}", inventoryHandler.UpdateItem)
		r.Delete("/{id}", inventoryHandler.DeleteItem)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
