package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pliabraaten/restaurant-tracker/database"
	"github.com/pliabraaten/restaurant-tracker/internal/config"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/handler"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/router"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// 3. Redis cache is optional: a nil cache degrades to plain DB reads
	cache, err := repository.NewRestaurantCache(cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// 4. Repositories
	accountRepo := repository.NewAccountRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	mealRepo := repository.NewMealRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// 5. Services
	authService := service.NewAuthService(accountRepo, refreshTokenRepo, cfg)
	restaurantService := service.NewRestaurantService(restaurantRepo, tagRepo, cache)
	mealService := service.NewMealService(mealRepo, restaurantRepo, cache)
	searchService := service.NewSearchService(restaurantRepo)
	profileService := service.NewProfileService(accountRepo)

	// 6. Handlers and routes
	accessTokenSeconds := int64(cfg.AccessTokenTTL.Seconds())
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, accessTokenSeconds),
		Restaurant: handler.NewRestaurantHandler(restaurantService),
		Meal:       handler.NewMealHandler(mealService),
		Search:     handler.NewSearchHandler(searchService),
		Profile:    handler.NewProfileHandler(profileService, authService),
	}
	r := router.SetupRouter(cfg, h, authService)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("API server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
