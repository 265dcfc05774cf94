package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/marketverse/storefront/internal/api/handlers"
	"github.com/marketverse/storefront/internal/api/middleware"
	"github.com/marketverse/storefront/internal/cache"
	"github.com/marketverse/storefront/internal/config"
	"github.com/marketverse/storefront/internal/health"
	"github.com/marketverse/storefront/internal/metrics"
	repository "github.com/marketverse/storefront/internal/repositories"
	service "github.com/marketverse/storefront/internal/services"
	sendgridClient "github.com/marketverse/storefront/pkg/sendgrid"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Local .env is optional
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	// Load config
	cfg := config.MustLoad()

	// Storage setup: postgres when reachable, in-memory fallback otherwise
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error initializing storage", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Cache setup
	var productCache cache.Cache
	if cfg.RedisConnect.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Addr,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})
		productCache = cache.NewRedisCache(redisClient, &cfg.Cache)
	} else {
		productCache = cache.NewNoopCache()
	}

	defer func() {
		if err := productCache.Close(); err != nil {
			slog.Error("Error closing cache", slog.String("error", err.Error()))
		}
	}()

	var emailer service.ConfirmationSender
	if cfg.SendGrid.APIKey != "" {
		emailer = sendgridClient.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	catalogService := service.NewCatalogService(repos.Product, productCache)
	productHandler := handlers.NewProductHandler(catalogService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Product, emailer)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardService := service.NewDashboardService(repos.Product, repos.Order)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminService := service.NewAdminService(repos.Product, repos.Cart, repos.Order)
	adminHandler := handlers.NewAdminHandler(adminService)

	healthHandler, err := health.NewHealthHandler(cfg, repos)
	if err != nil {
		slog.Error("Error initializing health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("backend", repos.Backend))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/v1/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/dashboard", dashboardHandler.GetDashboard())
	routerMux.HandleFunc("POST /api/v1/admin/reset", adminHandler.Reset())
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}
