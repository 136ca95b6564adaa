// Package api provides the HTTP API server for CargoTrack.
// It uses Echo framework to serve the REST endpoints for orders,
// containers, maintenance jobs and their evidence files.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/cargotrack/cargotrack/internal/auth"
	"github.com/cargotrack/cargotrack/internal/config"
	"github.com/cargotrack/cargotrack/internal/storage"
	"github.com/cargotrack/cargotrack/internal/upload"
	"github.com/cargotrack/cargotrack/internal/validation"
	"github.com/cargotrack/cargotrack/internal/version"
)

// Server represents the CargoTrack API server.
type Server struct {
	echo       *echo.Echo
	storage    *storage.Storage
	uploads    *upload.Store
	config     *config.Config
	jwt        *auth.JWTService
	authMiddle *auth.Middleware
	validate   *validation.Validator
}

// New creates a new API server instance.
func New(cfg *config.Config, store *storage.Storage, uploads *upload.Store) *Server {
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	// Set custom error handler
	e.HTTPErrorHandler = HTTPErrorHandler

	server := &Server{
		echo:       e,
		storage:    store,
		uploads:    uploads,
		config:     cfg,
		jwt:        auth.NewJWTService(cfg),
		authMiddle: auth.NewMiddleware(cfg),
		validate:   validation.New(),
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	// Logger middleware
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))

	// Recover middleware
	s.echo.Use(middleware.Recover())

	// Security headers middleware
	s.echo.Use(SecurityHeaders)

	// CORS middleware
	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Rate limiting
	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	// Content-Type validation middleware for API routes
	s.echo.Use(ValidateContentType)

	// Accept header validation middleware
	s.echo.Use(ValidateAcceptHeader)
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/", s.healthCheck)

	// API v1 group
	v1 := s.echo.Group("/api/v1")

	// Authentication routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/login", s.login)

	// Order routes. The price route must come before /:id so "price" is
	// never parsed as an order id.
	orders := v1.Group("/orders")
	orders.GET("", s.listOrders, s.authMiddle.RequireAuth)
	orders.GET("/price", s.priceOrder, s.authMiddle.RequireAuth)
	orders.GET("/:id", s.getOrder, s.authMiddle.RequireAuth)
	orders.POST("", s.createOrder, s.authMiddle.RequireAuth)

	// Container routes
	containers := v1.Group("/containers")
	containers.GET("", s.listContainers, s.authMiddle.RequireAuth)
	containers.GET("/locations", s.containerPositions, s.authMiddle.RequireAuth)
	containers.GET("/:id", s.getContainer, ValidateIDFormat, s.authMiddle.RequireAuth)
	containers.DELETE("/:id", s.deleteContainer, ValidateIDFormat, s.authMiddle.RequireAuth)

	// Maintenance routes
	maintenance := v1.Group("/maintenance")
	maintenance.GET("", s.listMaintenance, s.authMiddle.RequireAuth)
	maintenance.POST("", s.createMaintenance, s.authMiddle.RequireAuth)
	maintenance.GET("/:id", s.getMaintenance, s.authMiddle.RequireAuth)
	maintenance.GET("/:id/files", s.listMaintenanceFiles, s.authMiddle.RequireAuth)
	maintenance.POST("/:id/files", s.uploadMaintenanceFile, s.authMiddle.RequireAuth)

	// Reference data routes
	locations := v1.Group("/locations")
	locations.GET("", s.listLocations, s.authMiddle.RequireAuth)
	locations.GET("/:id", s.getLocation, s.authMiddle.RequireAuth)

	products := v1.Group("/products")
	products.GET("", s.listProducts, s.authMiddle.RequireAuth)
	products.GET("/:id", s.getProduct, s.authMiddle.RequireAuth)

	clients := v1.Group("/clients")
	clients.GET("", s.listClients, s.authMiddle.RequireAuth)
	clients.GET("/:id", s.getClient, s.authMiddle.RequireAuth)

	shipments := v1.Group("/shipments")
	shipments.GET("", s.listShipments, s.authMiddle.RequireAuth)
	shipments.GET("/:id", s.getShipment, s.authMiddle.RequireAuth)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	fmt.Printf("Starting CargoTrack API Server\n")
	fmt.Printf("   Address: http://%s\n", addr)
	fmt.Printf("   Database: %s (%s)\n", s.config.Storage.DSN, s.config.Storage.Driver)
	fmt.Printf("   Debug: %v\n", s.config.Server.Debug)
	fmt.Println()

	// Configure server timeouts
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	// Start server
	if s.config.Server.TLSEnabled {
		return s.echo.StartTLS(addr, s.config.Server.TLSCert, s.config.Server.TLSKey)
	}

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	fmt.Println("\nShutting down CargoTrack API Server...")

	// Shutdown Echo server
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	// Close storage
	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}

	fmt.Println("Server shutdown complete")
	return nil
}

// healthCheck handles health check requests.
func (s *Server) healthCheck(c echo.Context) error {
	info, err := s.storage.GetInfo()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   "database connection failed",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "cargotrack",
		"version": version.Version,
		"counts":  info,
	})
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
