package main

// @title Dispenser Locator API
// @version 1.0.0
// @description Провайдер запросов для поиска ближайшей точки обслуживания (дозатора).
// @description Справочник точек загружается с endpoint, переданного в конфигурации запроса,
// @description без кеширования. Расстояние считается в плоскости (широта, долгота).

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dispenser-locator/docs"
	"github.com/dispenser-locator/internal/config"
	httpDelivery "github.com/dispenser-locator/internal/delivery/http"
	"github.com/dispenser-locator/internal/delivery/http/handler"
	"github.com/dispenser-locator/internal/domain/repository"
	"github.com/dispenser-locator/internal/infrastructure/directory"
	"github.com/dispenser-locator/internal/pkg/buildinfo"
	"github.com/dispenser-locator/internal/pkg/logger"
	redisRepo "github.com/dispenser-locator/internal/repository/redis"
	"github.com/dispenser-locator/internal/usecase"
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

	log.Info("Starting Dispenser Locator",
		zap.String("version", buildinfo.CommitHash),
		zap.String("built_at", buildinfo.BuildTimestamp),
	)
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Duration("directory_timeout", cfg.Directory.RequestTimeout),
		zap.Bool("lookup_stream_enabled", cfg.Lookup.Enabled),
	)

	// 3. Connect to Redis (only when lookup events are published)
	var (
		redisClient *redisRepo.Redis
		publisher   repository.LookupPublisher
	)
	if cfg.Lookup.Enabled {
		redisClient, err = redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		publisher = redisRepo.NewLookupPublisher(redisClient.Client(), cfg.Lookup.Stream, log)
		log.Info("Lookup stream publisher initialized", zap.String("stream", cfg.Lookup.Stream))
	}

	// 4. Initialize Repositories
	directoryClient := directory.NewDirectoryClient(&cfg.Directory, log)

	// 5. Initialize Use Cases
	closestUC := usecase.NewClosestDispenserUseCase(directoryClient, publisher, log)
	statusUC := usecase.NewStatusUseCase(buildinfo.CommitHash, buildinfo.BuildTimestamp)

	// 6. Initialize HTTP Handlers
	queryHandler := handler.NewQueryHandler(closestUC, statusUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, queryHandler)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
