package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"wistara_backend/internal/cache"
	"wistara_backend/internal/config"
	"wistara_backend/internal/database"
	"wistara_backend/internal/handlers"
	"wistara_backend/internal/logger"
	"wistara_backend/internal/middleware"
	"wistara_backend/internal/repositories"
	"wistara_backend/internal/routes"
	"wistara_backend/internal/services"
	"wistara_backend/internal/validator"
	"wistara_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	logger.Info("connecting to database")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("schema migration failed", "error", err)
	}
	logger.Info("database connected")

	userRepo := repositories.NewUserRepository()
	destinationRepo := repositories.NewDestinationRepository()
	reviewRepo := repositories.NewReviewRepository()

	if err := seedPseudoUsers(gormDB, userRepo); err != nil {
		logger.Fatal("failed to seed pseudo users", "error", err)
	}
	if err := seedDestinationCatalog(gormDB, destinationRepo); err != nil {
		logger.Fatal("failed to seed destination catalog", "error", err)
	}

	ginRouter, container := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Seed.SeedOnStartup {
		if err := seedReviewsOnStartup(ctx, gormDB, reviewRepo, container.GeneratorService); err != nil {
			logger.Fatal("startup seeding failed", "error", err)
		}
	}

	if cfg.Worker.RatingReconcileMinutes > 0 {
		worker := workers.NewRatingWorker(gormDB, time.Duration(cfg.Worker.RatingReconcileMinutes)*time.Minute)
		worker.Start(ctx)
		logger.Info("rating reconciliation worker started", "interval_minutes", cfg.Worker.RatingReconcileMinutes)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter assembles the full request path: cache, services, handlers,
// middleware chain, routes. It returns the service container too so startup
// tasks can use the same wiring as the HTTP handlers.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	var ratingCache cache.RatingCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ratingCache = cache.NewRedisRatingCache(client, 0)
		logger.Info("rating cache enabled", "addr", cfg.Redis.Addr)
	} else {
		logger.Info("rating cache disabled, no redis address configured")
	}

	serviceContainer := services.NewServiceContainer(ratingCache)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
