package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	identityapp "github.com/shopadmin/backend/internal/application/identity"
	inventoryapp "github.com/shopadmin/backend/internal/application/inventory"
	orderapp "github.com/shopadmin/backend/internal/application/order"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	blacklist := buildTokenBlacklist(cfg, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	objectStorage := buildObjectStorage(cfg, log)

	products := persistence.NewGormProductRepository(db.DB)
	categories := persistence.NewGormCategoryRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)
	users := persistence.NewGormUserRepository(db.DB)
	items := persistence.NewGormInventoryRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	productService := catalogapp.NewProductService(products, categories)
	categoryService := catalogapp.NewCategoryService(categories, products)
	uploadService := catalogapp.NewImageUploadService(
		products, objectStorage, cfg.Storage.PublicBaseURL, cfg.Storage.PresignExpiry)
	orderService := orderapp.NewService(orders)
	userService := identityapp.NewUserService(users, log)
	authService := identityapp.NewAuthService(users, jwtService, blacklist, log)
	inventoryService := inventoryapp.NewInventoryService(items, products, scope, log)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.CORS(cfg.HTTP),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
	}

	requireAuth := middleware.RequireAuth(jwtService, blacklist, log)
	requireAdmin := middleware.RequireRole("admin")

	var loginLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		loginLimit = middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow))
	}

	router.New(engine, requireAuth).
		RegisterPublic(
			handler.NewSystemHandler(db),
			handler.NewAuthHandler(authService, requireAuth, loginLimit),
		).
		RegisterProtected(
			handler.NewProductHandler(productService, uploadService),
			handler.NewCategoryHandler(categoryService),
			handler.NewOrderHandler(orderService),
			handler.NewUserHandler(userService, requireAdmin),
			handler.NewInventoryHandler(inventoryService),
		).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// buildTokenBlacklist prefers Redis and falls back to the in-process
// blacklist when Redis is unreachable. The fallback does not survive
// restarts, which is acceptable outside production.
func buildTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if cfg.App.IsProduction() {
			log.Fatal("Redis is required in production", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		return auth.NewInMemoryTokenBlacklist()
	}

	log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr()))
	return auth.NewRedisTokenBlacklist(client)
}

// buildObjectStorage wires S3 when credentials are configured and a local
// stub otherwise, so image uploads keep working in development.
func buildObjectStorage(cfg *config.Config, log *zap.Logger) catalogapp.ObjectStorage {
	s3Storage, err := storage.NewS3ObjectStorage(cfg.Storage, log)
	if err != nil {
		if cfg.App.IsProduction() {
			log.Fatal("Object storage is required in production", zap.Error(err))
		}
		log.Warn("Object storage not configured, using stub", zap.Error(err))
		return storage.NewStubObjectStorage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3Storage.EnsureBucket(ctx); err != nil {
		log.Warn("Could not ensure storage bucket", zap.Error(err))
	}
	return s3Storage
}
