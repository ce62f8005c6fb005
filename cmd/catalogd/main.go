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

	catalogapp "github.com/quickbite/backend/internal/application/catalog"
	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/infrastructure/auth"
	"github.com/quickbite/backend/internal/infrastructure/cache"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/logger"
	"github.com/quickbite/backend/internal/infrastructure/persistence"
	"github.com/quickbite/backend/internal/infrastructure/remote"
	"github.com/quickbite/backend/internal/interfaces/http/handler"
	"github.com/quickbite/backend/internal/interfaces/http/middleware"
	"github.com/quickbite/backend/internal/interfaces/http/router"
)

const serviceName = "catalog"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log, serviceName)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting catalog service",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.AutoMigrate(&catalog.Restaurant{}, &catalog.Category{}, &catalog.MenuItem{}); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}

	restaurantRepo := persistence.NewGormRestaurantRepository(db.DB)
	if err := restaurantRepo.EnsureDefault(context.Background(), &catalog.Restaurant{
		ID:      catalog.DefaultRestaurantID,
		Name:    "QuickBite",
		Address: "Not configured",
	}); err != nil {
		log.Fatal("Failed to seed restaurant record", zap.Error(err))
	}
	menuRepo := persistence.NewGormMenuItemRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)

	refCache := cache.NewFactory(cfg.Cache, cfg.Redis, log).Create()
	defer func() { _ = refCache.Close() }()

	authClient := remote.NewAuthClient(remote.NewClient(cfg.Peers.AuthURL, cfg.Client, log))
	orderClient := remote.NewOrderClient(remote.NewClient(cfg.Peers.OrderURL, cfg.Client, log))

	tokens := auth.NewTokenService(cfg.JWT)
	source := middleware.NewRemoteSource(authClient)
	guard := func(roles ...identity.Role) gin.HandlerFunc {
		return middleware.RequireAuth(tokens, source, roles...)
	}

	engine := router.New(cfg, log, &router.CatalogRoutes{
		Health:     handler.NewHealthHandler(serviceName, cfg.App.Version),
		Menu:       handler.NewMenuHandler(catalogapp.NewMenuService(menuRepo, refCache, cfg.Cache, log)),
		Category:   handler.NewCategoryHandler(catalogapp.NewCategoryService(categoryRepo, refCache, cfg.Cache, log)),
		Restaurant: handler.NewRestaurantHandler(catalogapp.NewRestaurantService(restaurantRepo, orderClient, refCache, cfg.Cache, log)),
		Guard:      guard,
	})

	serve(engine, cfg, log)
}

func serve(engine http.Handler, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
