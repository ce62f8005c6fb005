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

	orderapp "github.com/quickbite/backend/internal/application/order"
	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/infrastructure/auth"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/logger"
	"github.com/quickbite/backend/internal/infrastructure/notify"
	"github.com/quickbite/backend/internal/infrastructure/persistence"
	"github.com/quickbite/backend/internal/infrastructure/remote"
	"github.com/quickbite/backend/internal/interfaces/http/handler"
	"github.com/quickbite/backend/internal/interfaces/http/middleware"
	"github.com/quickbite/backend/internal/interfaces/http/router"
)

const serviceName = "order"

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

	log.Info("Starting order service",
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
	if err := db.AutoMigrate(
		&order.Order{}, &order.OrderItem{},
		&order.Cart{}, &order.CartItem{},
		&order.Payment{}, &order.Review{},
	); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}

	orderRepo := persistence.NewGormOrderRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	authClient := remote.NewAuthClient(remote.NewClient(cfg.Peers.AuthURL, cfg.Client, log))
	catalogClient := remote.NewCatalogClient(remote.NewClient(cfg.Peers.CatalogURL, cfg.Client, log))

	// The typed-nil check matters: a disabled sender must stay a nil
	// interface so the dispatcher short-circuits.
	var sender notify.Sender
	if telegram := notify.NewTelegramSender(cfg.Notify); telegram != nil {
		sender = telegram
	}
	dispatcher := notify.NewDispatcher(sender, cfg.Notify.Timeout, log)

	tokens := auth.NewTokenService(cfg.JWT)
	source := middleware.NewRemoteSource(authClient)
	guard := func(roles ...identity.Role) gin.HandlerFunc {
		return middleware.RequireAuth(tokens, source, roles...)
	}

	orderService := orderapp.NewOrderService(orderRepo, cartRepo, catalogClient, dispatcher, log)
	engine := router.New(cfg, log, &router.OrderRoutes{
		Health:     handler.NewHealthHandler(serviceName, cfg.App.Version),
		Cart:       handler.NewCartHandler(orderapp.NewCartService(cartRepo, log)),
		Order:      handler.NewOrderHandler(orderService),
		AdminOrder: handler.NewAdminOrderHandler(orderService),
		Review:     handler.NewReviewHandler(orderapp.NewReviewService(reviewRepo, orderRepo, log)),
		Payment:    handler.NewPaymentHandler(orderapp.NewPaymentService(paymentRepo, orderRepo, log)),
		Stats:      handler.NewStatsHandler(orderapp.NewStatsService(orderRepo, catalogClient, log)),
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
