package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ruleteo/config"
	httpHandler "ruleteo/internal/adapter/http/handler"
	fileStorage "ruleteo/internal/adapter/storage/file"
	memStorage "ruleteo/internal/adapter/storage/memory"
	pgStorage "ruleteo/internal/adapter/storage/postgres"
	redisStorage "ruleteo/internal/adapter/storage/redis"
	"ruleteo/internal/adapter/storage/sealed"
	"ruleteo/internal/core/ports"
	"ruleteo/internal/service"
	"ruleteo/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("RUL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("driver", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Ruleteo")

	ctx := context.Background()

	// Redis backs the redis driver and the rate limiter.
	var roles []string
	if cfg.Storage.Driver == config.DriverRedis {
		roles = append(roles, redisStorage.RoleState)
	}
	if cfg.RateLimit.Enabled {
		roles = append(roles, redisStorage.RoleRateLimit)
	}
	var rdb *goredis.Client
	if len(roles) > 0 {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log, roles...)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	}

	blobs, checkers, closeStorage, err := openBlobStore(ctx, cfg, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open state storage")
	}
	defer closeStorage()

	// Optional at-rest sealing of the state blob
	if cfg.Crypto.Key != "" {
		cipher, err := service.NewXChaChaCipher(cfg.Crypto.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize blob cipher")
		}
		blobs = sealed.NewBlobStore(blobs, cipher)
		log.Info().Msg("State blob sealing enabled")
	}

	clock := service.SystemClock{}
	store := service.NewStore(
		blobs,
		service.UUIDGenerator{},
		clock,
		cfg.Storage.Key,
		logger.Component(log, "store"),
	)
	if err := store.Open(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load state")
	}
	dashboardSvc := service.NewDashboardService(store, clock)

	deps := httpHandler.RouterDeps{
		CardSvc:        store,
		RuleteoSvc:     store,
		DashboardSvc:   dashboardSvc,
		HealthCheckers: checkers,
		Logger:         logger.Component(log, "http"),
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimiter = redisStorage.NewRateLimitStore(rdb)
		log.Info().Msg("Rate limiting enabled")
	}

	// Load OpenAPI document for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openBlobStore builds the BlobStore selected by storage.driver along with
// the health checkers for its backend and a cleanup function.
func openBlobStore(
	ctx context.Context,
	cfg *config.Config,
	rdb *goredis.Client,
	log zerolog.Logger,
) (ports.BlobStore, []ports.HealthChecker, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory storage, state is lost on exit")
		return memStorage.NewBlobStore(), nil, noop, nil

	case config.DriverFile:
		store, err := fileStorage.NewBlobStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, noop, err
		}
		log.Info().Str("dir", cfg.Storage.FilePath).Msg("File storage ready")
		return store, nil, noop, nil

	case config.DriverRedis:
		return redisStorage.NewBlobStore(rdb),
			[]ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
			noop, nil

	case config.DriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, noop, err
		}
		store := pgStorage.NewBlobStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, noop, err
		}
		return store, []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}, pool.Close, nil
	}

	return nil, nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
