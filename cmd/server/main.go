package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"maturitymap/internal/cache"
	"maturitymap/internal/config"
	"maturitymap/internal/logger"
	"maturitymap/internal/repository"
	"maturitymap/internal/service"
	"maturitymap/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", zap.Error(err))
	}
	log.Info("connected to Redis")

	// Repositories
	catalogRepo := repository.NewCatalogRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	roadmapRepo := repository.NewRoadmapRepo(db)

	// Caches
	scoreCache := cache.NewScoreCache(rdb, cfg.Engine.CacheTTL)
	roadmapCache := cache.NewRoadmapCache(rdb, cfg.Engine.CacheTTL)
	rankCache := cache.NewRankCache(rdb, cfg.Engine.CacheTTL)

	// Services. A catalog that fails validation blocks startup.
	catalogSvc := service.NewCatalogService(catalogRepo, log)
	if err := catalogSvc.Load(ctx); err != nil {
		log.Fatal("failed to load catalog", zap.Error(err))
	}
	assessmentSvc := service.NewAssessmentService(
		catalogSvc, responseRepo, roadmapRepo, scoreCache, roadmapCache, rankCache, log,
	)

	router := rest.NewRouter(&rest.Container{
		CatalogService:    catalogSvc,
		AssessmentService: assessmentSvc,
		Logger:            log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
