package main

// @title Places Service API
// @version 1.0.0
// @description Backend for resolving place identifiers (database id, postal code or free-text address) into coordinates, computing straight-line and driving distances, and answering proximity queries against a static places dataset.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3002
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-service/docs"
	"github.com/places-service/internal/config"
	httpDelivery "github.com/places-service/internal/delivery/http"
	"github.com/places-service/internal/delivery/http/handler"
	"github.com/places-service/internal/infrastructure/geocoder"
	"github.com/places-service/internal/infrastructure/routing"
	"github.com/places-service/internal/infrastructure/webclient"
	"github.com/places-service/internal/pkg/logger"
	"github.com/places-service/internal/repository/cache"
	"github.com/places-service/internal/repository/postgres"
	"github.com/places-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and external clients
	placeRepo := postgres.NewPlaceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	web := webclient.New(log)
	geocoderClient := geocoder.NewClient(cfg.Geocoder, web, log)
	routingClient := routing.NewClient(cfg.Routing, web, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	placeUC := usecase.NewPlaceUseCase(
		placeRepo,
		cacheRepo,
		log,
		cfg.Cache.RadiusCacheTTL,
		cfg.Cache.SearchCacheTTL,
	)
	resolverUC := usecase.NewResolverUseCase(placeRepo, geocoderClient, log)
	distanceUC := usecase.NewDistanceUseCase(resolverUC, routingClient, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers and server
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	distanceHandler := handler.NewDistanceHandler(distanceUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		placeHandler,
		distanceHandler,
		healthHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
