package main

import (
	"context"
	"errors"
	"log"
	"time"

	"loadharbour/internal/core/cache"
	"loadharbour/internal/core/config"
	"loadharbour/internal/core/logger"
	"loadharbour/internal/core/server"
	"loadharbour/internal/core/storage"

	authadapters "loadharbour/internal/features/auth/adapters"
	authhandler "loadharbour/internal/features/auth/handler"
	authservice "loadharbour/internal/features/auth/service"
	driversadapters "loadharbour/internal/features/drivers/adapters"
	drivershandler "loadharbour/internal/features/drivers/handler"
	driversservice "loadharbour/internal/features/drivers/service"
	loadsadapters "loadharbour/internal/features/loads/adapters"
	loadshandler "loadharbour/internal/features/loads/handler"
	loadsports "loadharbour/internal/features/loads/ports"
	loadsservice "loadharbour/internal/features/loads/service"
	receivablesadapters "loadharbour/internal/features/receivables/adapters"
	receivableshandler "loadharbour/internal/features/receivables/handler"
	receivablesservice "loadharbour/internal/features/receivables/service"
	statshandler "loadharbour/internal/features/stats/handler"
	statsservice "loadharbour/internal/features/stats/service"
	trailersadapters "loadharbour/internal/features/trailers/adapters"
	trailershandler "loadharbour/internal/features/trailers/handler"
	trailersservice "loadharbour/internal/features/trailers/service"
	trucksadapters "loadharbour/internal/features/trucks/adapters"
	truckshandler "loadharbour/internal/features/trucks/handler"
	trucksservice "loadharbour/internal/features/trucks/service"

	"go.uber.org/zap"
)

// @title loadharbour API
// @version 1.0
// @description Fleet and logistics management API: loads, drivers, trucks, trailers, receivables.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	redis, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redis.Close()
	if err := redis.Ping(context.Background()); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// In-memory stores, one per collection.
	loadsRepo := loadsadapters.NewMemoryRepository()
	driversRepo := driversadapters.NewMemoryRepository()
	trucksRepo := trucksadapters.NewMemoryRepository()
	trailersRepo := trailersadapters.NewMemoryRepository()
	receivablesRepo := receivablesadapters.NewMemoryRepository()
	usersRepo := authadapters.NewMemoryRepository()

	if cfg.SeedDemoData {
		driversadapters.Seed(driversRepo)
		trucksadapters.Seed(trucksRepo)
		trailersadapters.Seed(trailersRepo)
		loadsadapters.Seed(loadsRepo)
		receivablesadapters.Seed(receivablesRepo)
		l.Info("Demo data seeded")
	}

	// Cross-feature reference checks, wired here to keep the features
	// decoupled.
	loadSvc := loadsservice.NewLoadService(loadsRepo, loadsports.Associations{
		Driver:  existsIn(driversRepo),
		Truck:   existsIn(trucksRepo),
		Trailer: existsIn(trailersRepo),
	})
	driverSvc := driversservice.NewDriverService(driversRepo, loadsadapters.ReferencesDriver(loadsRepo))
	truckSvc := trucksservice.NewTruckService(trucksRepo, loadsadapters.ReferencesTruck(loadsRepo))
	trailerSvc := trailersservice.NewTrailerService(trailersRepo, loadsadapters.ReferencesTrailer(loadsRepo))
	receivableSvc := receivablesservice.NewReceivableService(receivablesRepo, existsIn(loadsRepo))

	statsSvc := statsservice.NewStatsService(loadsRepo, driversRepo, trucksRepo, trailersRepo, receivablesRepo)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	authSvc := authservice.NewAuthService(usersRepo, redis, tokenTTL)

	srv := server.New(cfg)

	authhandler.NewAuthHandler(authSvc).Register(srv.App)
	statshandler.NewStatsHandler(statsSvc).Register(srv.App)

	idempotencyTTL := time.Duration(cfg.Redis.IdempotencyTTLMinutes) * time.Minute
	api := srv.App.Group("/api", server.Idempotency(redis, idempotencyTTL))
	if cfg.Auth.RequireAuth {
		api.Use(authhandler.Middleware(authSvc))
		l.Info("API routes require authentication")
	}

	loadshandler.NewLoadHandler(loadSvc).Register(api)
	drivershandler.NewDriverHandler(driverSvc).Register(api)
	truckshandler.NewTruckHandler(truckSvc).Register(api)
	trailershandler.NewTrailerHandler(trailerSvc).Register(api)
	receivableshandler.NewReceivableHandler(receivableSvc).Register(api)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// existsIn adapts a store's Get into an existence check.
func existsIn[E any](store *storage.Store[E]) func(ctx context.Context, id string) (bool, error) {
	return func(ctx context.Context, id string) (bool, error) {
		if _, err := store.Get(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}
