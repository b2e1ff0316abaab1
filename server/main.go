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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediflow/api/routes"
	"mediflow/internal/alerts"
	"mediflow/internal/shared/config"
	"mediflow/internal/shared/database"
	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/pkg/logger"
	"mediflow/pkg/ratelimit"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config. MustLoad exits when JWT_SECRET is missing: the server must
	// never come up able to neither sign nor verify sessions.
	cfg := config.MustLoad()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Token codec: the single verification authority for the whole app
	codec := tokens.NewCodec(cfg.JWT)

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:           cfg.RateLimit.Enabled,
			WindowDuration:    cfg.RateLimit.WindowDuration,
			DefaultRequests:   cfg.RateLimit.DefaultRequests,
			PublicRequests:    cfg.RateLimit.PublicRequests,
			AuthRequests:      cfg.RateLimit.AuthRequests,
			AdminRequests:     cfg.RateLimit.AdminRequests,
			PatientRequests:   cfg.RateLimit.PatientRequests,
			MessagingRequests: cfg.RateLimit.MessagingRequests,
			HealthRequests:    cfg.RateLimit.HealthRequests,
			WhitelistedIPs:    cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.Redis, rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Alert event producer. Optional: alerts still persist to the database
	// when Kafka is unreachable or disabled.
	var producer alerts.EventProducer
	if cfg.Kafka.Enabled {
		producer, err = alerts.NewKafkaEventProducer(
			alerts.DefaultProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.AlertTopic))
		if err != nil {
			appLogger.Warn("Alert event producer unavailable, continuing without Kafka",
				slog.Any("error", err))
			producer = nil
		} else {
			appLogger.Info("Alert event producer initialized",
				slog.String("topic", cfg.Kafka.AlertTopic))
			defer producer.Close()
		}
	}

	// Setup router
	router := setupRouter(cfg, db, codec, rateLimiter, producer)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
			slog.Bool("kafka", producer != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, codec *tokens.Codec, rateLimiter *ratelimit.RateLimiter, producer alerts.EventProducer) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Coarse session filter: cheap cookie-presence routing decisions before
	// any handler runs. Handlers still verify via the gate.
	engine.Use(middleware.DispatchFilter(middleware.DefaultFilterConfig(cfg.GetAPIBasePath())))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, db, codec, producer, appLogger)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
