package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketplace-backend/config"
	"marketplace-backend/internal/auth"
	"marketplace-backend/internal/cache"
	"marketplace-backend/internal/logger"

	prodCache "marketplace-backend/internal/product/cache"
	prodH "marketplace-backend/internal/product/handler"
	prodRepoPkg "marketplace-backend/internal/product/repository"
	prodUCPkg "marketplace-backend/internal/product/usecase"

	userH "marketplace-backend/internal/user/handler"
	userRepoPkg "marketplace-backend/internal/user/repository"
	userUCPkg "marketplace-backend/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.New(&cfg.Logger)
	defer appLogger.Sync()

	// 3. Initialize Cache Store. The cache is best-effort: if Redis is
	// disabled or unreachable we fall back to the in-process store
	// instead of refusing to start.
	var store cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(&cfg.Redis)
		if err != nil {
			appLogger.Warn("Could not connect to Redis, falling back to in-memory cache", zap.Error(err))
			store = cache.NewMemoryStore()
		} else {
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
			store = redisStore
		}
	} else {
		appLogger.Info("Redis disabled, using in-memory cache")
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	// 4. Initialize Repositories
	productRepo := prodRepoPkg.NewJSONRepository(cfg.Data.Dir)
	userRepo := userRepoPkg.NewJSONRepository(cfg.Data.Dir)
	appLogger.Info("Using JSON data directory", zap.String("dir", cfg.Data.Dir))

	// 5. Initialize Auth
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.AccessTTLSec)*time.Second)

	// 6. Initialize UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, tokens, appLogger)
	productCache := prodCache.NewProductCache(store, appLogger)
	productUC := prodUCPkg.NewProductUseCase(productRepo, productCache, userUC, prodUCPkg.Options{
		UploadBaseURL:        cfg.Upload.BaseURL,
		StrictPaymentMethods: cfg.Products.StrictPaymentMethods,
	}, appLogger)

	// 7. Initialize Handlers and Router
	userHandler := userH.NewUserHandler(userUC, appLogger)
	productHandler := prodH.NewProductHandler(productUC, userUC, cfg.Upload, appLogger)

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
	}))

	router.Static("/uploads", cfg.Upload.Dir)

	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api, auth.Middleware(tokens))

	// 8. Start HTTP Server
	port := cfg.Server.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
