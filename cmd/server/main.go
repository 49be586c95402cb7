package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/retrorevival/storefront/internal/application/session"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/infrastructure/cache"
	"github.com/retrorevival/storefront/internal/infrastructure/config"
	"github.com/retrorevival/storefront/internal/infrastructure/logger"
	"github.com/retrorevival/storefront/internal/infrastructure/persistence"
	"github.com/retrorevival/storefront/internal/infrastructure/upstream"
	"github.com/retrorevival/storefront/internal/interfaces/http/handler"
	"github.com/retrorevival/storefront/internal/interfaces/http/middleware"
	"github.com/retrorevival/storefront/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store_backend", cfg.Store.Backend),
	)

	// Build the persisted cart store for the configured backend
	store, cleanup, err := buildCartStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize cart store", zap.Error(err))
	}
	defer cleanup()

	// Shop API client serves both order submission and session lookup
	shop, err := upstream.NewClient(&cfg.Upstream, log)
	if err != nil {
		log.Fatal("Failed to initialize shop API client", zap.Error(err))
	}

	sessions := session.NewRegistry(store, shop, log)

	// Gin engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.Session(&cfg.HTTP),
	)

	// Routes
	router.NewRouter(engine).
		Register(handler.NewCartHandler(sessions)).
		Register(handler.NewCheckoutHandler(sessions, shop)).
		Register(handler.NewOrderHandler(sessions)).
		Setup()

	systemHandler := handler.NewSystemHandler()
	engine.GET("/health", systemHandler.Health)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildCartStore wires the cart.Store implementation selected by
// store.backend. The sqlite backend migrates its own schema on boot;
// postgres expects the migrate CLI to have run.
func buildCartStore(cfg *config.Config, log *zap.Logger) (cart.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		store, err := cache.NewRedisCartStore(&cfg.Redis, cfg.Store.CartTTL, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}, nil

	default:
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err := persistence.NewDatabaseWithLogger(&cfg.Store, gormLog)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Store.Backend == config.StoreBackendSQLite {
			if err := db.AutoMigrate(); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		log.Info("Database connected")
		return persistence.NewGormCartStore(db.DB, log), func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}, nil
	}
}
