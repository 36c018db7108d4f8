package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/weguard/weguard-backend/internal/adapters/cache"
	"github.com/weguard/weguard-backend/internal/adapters/database"
	"github.com/weguard/weguard-backend/internal/adapters/providers/inference"
	"github.com/weguard/weguard-backend/internal/api/handlers"
	"github.com/weguard/weguard-backend/internal/api/middleware"
	"github.com/weguard/weguard-backend/internal/api/routes"
	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/providers"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/gemini"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/postgres"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/redis"
	"github.com/weguard/weguard-backend/internal/infrastructure/observability"
	"github.com/weguard/weguard-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without caching.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// The chat credential is server-held and required at startup.
	chatProvider, err := gemini.NewClient(&cfg.Gemini)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize chat client")
	}

	// Initialize adapters
	detectionResultAdapter := database.NewDetectionResultAdapter(pgClient)
	weatherAlertAdapter := database.NewWeatherAlertAdapter(pgClient)
	treatmentAdapter := database.NewTreatmentAdapter(pgClient)
	paddyPriceAdapter := database.NewPaddyPriceAdapter(pgClient)

	// Local development can run without the predictor service.
	var inferenceGateway providers.InferenceProvider
	if cfg.Inference.UseMock {
		inferenceGateway = inference.NewMockGateway()
		log.Warn().Msg("using mock inference gateway")
	} else {
		inferenceGateway = inference.NewHTTPGateway(&cfg.Inference)
	}

	// Initialize services
	analysisService := services.NewAnalysisService(inferenceGateway)
	detectionResultService := services.NewDetectionResultService(detectionResultAdapter)
	weatherAlertService := services.NewWeatherAlertService(weatherAlertAdapter)
	treatmentService := services.NewTreatmentService(treatmentAdapter)
	paddyPriceService := services.NewPaddyPriceService(paddyPriceAdapter)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	detectionResultHandler := handlers.NewDetectionResultHandler(detectionResultService)
	weatherAlertHandler := handlers.NewWeatherAlertHandler(weatherAlertService)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentService)
	paddyPriceHandler := handlers.NewPaddyPriceHandler(paddyPriceService)
	chatHandler := handlers.NewChatHandler(chatProvider)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	router := routes.NewRouter(
		analysisHandler,
		detectionResultHandler,
		weatherAlertHandler,
		treatmentHandler,
		paddyPriceHandler,
		chatHandler,
		cacheMiddleware,
		cfg.Server.AllowedOrigins,
		metrics,
	)

	// Create HTTP server. The write timeout must outlast the slowest
	// upstream call chain (classification plus enrichment).
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
