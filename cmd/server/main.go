package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxpal/internal/auth"
	"taxpal/internal/cache"
	"taxpal/internal/config"
	"taxpal/internal/database"
	"taxpal/internal/handlers"
	"taxpal/internal/logger"
	"taxpal/internal/middleware"
	redisx "taxpal/internal/redis"
	"taxpal/internal/service"
	"taxpal/internal/storage"
)

func main() {
	log := logger.New("server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret-change-me"
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	if err := database.RunMigrations(ctx, cfg.Database.DSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	pool, err := database.Connect(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis is optional: without it the API still serves, just without
	// the profile cache and login rate limiting.
	var profileCache *cache.ProfileCache
	var limiter *middleware.RateLimiter
	redisClient, err := redisx.NewClient(ctx, redisx.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, running without cache and rate limiting: %v", err)
	} else {
		defer redisClient.Close()
		profileCache = cache.NewProfileCache(cfg.Cache.L1Capacity, redisClient.GetClient(), cfg.Cache.ProfileTTL)
		limiter = middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Lifetime)

	userStorage := storage.NewUserStorage(pool)
	categoryStorage := storage.NewCategoryStorage(pool)
	transactionStorage := storage.NewTransactionStorage(pool)
	budgetStorage := storage.NewBudgetStorage(pool)

	userService := service.NewUserService(userStorage, categoryStorage, jwtManager, profileCache)
	categoryService := service.NewCategoryService(categoryStorage)
	transactionService := service.NewTransactionService(transactionStorage)
	budgetService := service.NewBudgetService(budgetStorage)

	router := handlers.NewRouter(
		middleware.NewAuthMiddleware(jwtManager),
		limiter,
		handlers.NewAuthHandler(userService),
		handlers.NewCategoryHandler(categoryService),
		handlers.NewTransactionHandler(transactionService),
		handlers.NewBudgetHandler(budgetService),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
