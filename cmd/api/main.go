// Package main provides the entrypoint for the L'Oliveraie API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/oliveraie/oliveraie/internal/analytics"
	"github.com/oliveraie/oliveraie/internal/api"
	"github.com/oliveraie/oliveraie/internal/api/middleware"
	"github.com/oliveraie/oliveraie/internal/auth"
	"github.com/oliveraie/oliveraie/internal/database"
	"github.com/oliveraie/oliveraie/internal/siteconfig"
	"github.com/oliveraie/oliveraie/internal/status"
	"github.com/oliveraie/oliveraie/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "oliveraie-api"

	// Local development reads a .env file; in deployment the variables come
	// from the environment and the file is absent.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting L'Oliveraie API")

	// Get configuration from environment
	port := getEnv("APP_PORT", "8080")
	env := getEnv("APP_ENV", "development")
	otlpEndpoint := getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize HTTP metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Select the configuration storage backend
	backend := getEnv("CONFIG_BACKEND", "memory")

	var configRepo siteconfig.Repository
	var redisClient *redis.Client

	switch backend {
	case "postgres":
		pool, connectErr := database.Connect(ctx, database.ConfigFromEnv())
		if connectErr != nil {
			log.Fatal().Err(connectErr).Msg("failed to connect to database")
		}
		defer pool.Close()
		configRepo = siteconfig.NewPostgresRepository(pool)
		log.Info().Msg("configuration storage: postgres")
	case "redis":
		client, connectErr := database.ConnectRedis(ctx, database.RedisConfigFromEnv())
		if connectErr != nil {
			log.Fatal().Err(connectErr).Msg("failed to connect to redis")
		}
		redisClient = client
		defer func() { _ = redisClient.Close() }()
		configRepo = siteconfig.NewRedisRepository(redisClient)
		log.Info().Msg("configuration storage: redis")
	default:
		configRepo = siteconfig.NewInMemoryRepository()
		log.Warn().Msg("configuration storage: in-memory, writes are lost on restart")
	}

	configMetrics, err := siteconfig.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize configuration metrics")
		os.Exit(1)
	}

	configService := siteconfig.NewService(siteconfig.ServiceConfig{
		Repository: configRepo,
		Logger:     log,
		Metrics:    configMetrics,
	})

	// Pre-fill the snapshot cache so the first request never waits out a
	// storage blip.
	if err := configService.Warmup(ctx); err != nil {
		log.Warn().Err(err).Msg("configuration warmup failed, continuing without a cached snapshot")
	}

	statusService := status.NewService(status.ServiceConfig{
		Config: configService,
		Logger: log,
	})

	// QR scan counters live in Redis when available
	var analyticsRepo analytics.Repository
	if redisClient != nil {
		analyticsRepo = analytics.NewRedisRepository(redisClient)
	} else {
		analyticsRepo = analytics.NewInMemoryRepository()
		log.Warn().Msg("analytics storage: in-memory, counters are lost on restart")
	}
	analyticsService := analytics.NewService(analyticsRepo)

	// Initialize the admin auth service
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set - dashboard login is disabled")
	}

	authService := auth.NewService(auth.ServiceConfig{
		JWTService: auth.NewJWTService(auth.JWTConfig{
			SigningKey: jwtSigningKey,
			Issuer:     getEnv("JWT_ISSUER", "https://api.oliveraie.fr"),
			Audience:   getEnv("JWT_AUDIENCE", "oliveraie-admin"),
		}),
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: adminPassword,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		AuthService:      authService,
		ConfigService:    configService,
		StatusService:    statusService,
		AnalyticsService: analyticsService,
		ScanRedirectURL:  getEnv("SCAN_REDIRECT_URL", "https://www.oliveraie.fr"),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
