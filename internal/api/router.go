// Package api provides the HTTP API for the L'Oliveraie site.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/oliveraie/oliveraie/internal/analytics"
	"github.com/oliveraie/oliveraie/internal/api/handler"
	"github.com/oliveraie/oliveraie/internal/api/middleware"
	"github.com/oliveraie/oliveraie/internal/auth"
	"github.com/oliveraie/oliveraie/internal/siteconfig"
	"github.com/oliveraie/oliveraie/internal/status"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version          string
	BuildTime        string
	Logger           zerolog.Logger
	ServiceName      string
	Metrics          *middleware.Metrics
	AuthService      *auth.Service
	ConfigService    *siteconfig.Service
	StatusService    *status.Service
	AnalyticsService *analytics.Service

	// ScanRedirectURL is where scanned QR codes land.
	ScanRedirectURL string
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "oliveraie-api"
	}
	redirectURL := cfg.ScanRedirectURL
	if redirectURL == "" {
		redirectURL = "https://www.oliveraie.fr"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.RequireJSON)          // Reject non-JSON write bodies

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.ConfigService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	statusHandler := handler.NewStatusHandler(cfg.StatusService)
	configHandler := handler.NewConfigHandler(cfg.ConfigService)
	analyticsHandler := handler.NewAnalyticsHandler(cfg.AnalyticsService, redirectURL, cfg.Logger)

	// Create auth middleware
	adminOnly := middleware.RequireAdmin(cfg.AuthService)

	// Create rate limit middleware for different endpoint categories
	authRateLimit := middleware.RateLimitByIP(middleware.AuthRateLimit)     // 10 req/min
	adminRateLimit := middleware.RateLimitByIP(middleware.AdminRateLimit)   // 100 req/min
	publicRateLimit := middleware.RateLimitByIP(middleware.PublicRateLimit) // 300 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Widget endpoints (public) - polled by browsers
		r.Group(func(r chi.Router) {
			r.Use(publicRateLimit)
			r.Get("/status", statusHandler.GetStatus)
			r.Get("/hours", statusHandler.GetHours)
		})

		// QR scan redirect (public)
		r.With(adminRateLimit).Get("/qr/{campaign}", analyticsHandler.Scan)

		// Auth endpoints (public) - strict rate limiting
		r.Route("/auth", func(r chi.Router) {
			r.Use(authRateLimit) // 10 requests per minute per IP
			r.Post("/login", authHandler.Login)
		})

		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Admin endpoints (authenticated)
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)
			r.Use(adminRateLimit)

			r.Get("/hours", configHandler.GetHours)
			r.Put("/hours", configHandler.UpdateHours)
			r.Put("/timezone", configHandler.UpdateTimezone)

			r.Route("/closings", func(r chi.Router) {
				r.Get("/scheduled", configHandler.GetScheduledClosings)
				r.Put("/scheduled", configHandler.UpdateScheduledClosings)
				r.Get("/emergency", configHandler.GetEmergencyClosings)
				r.Put("/emergency", configHandler.UpdateEmergencyClosings)
			})

			r.Get("/messages", configHandler.GetMessages)
			r.Put("/messages", configHandler.UpdateMessages)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/campaigns", analyticsHandler.ListCampaigns)
				r.Get("/campaigns/{campaign}", analyticsHandler.GetCampaignSummary)
			})
		})
	})

	return r
}
