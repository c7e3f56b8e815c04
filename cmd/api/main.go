package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/lumenshop/storefront-backend/api/routes"
	"github.com/lumenshop/storefront-backend/internal/auth"
	"github.com/lumenshop/storefront-backend/internal/catalog"
	"github.com/lumenshop/storefront-backend/internal/customers"
	"github.com/lumenshop/storefront-backend/internal/wishlist"
	"github.com/lumenshop/storefront-backend/pkg/config"
	"github.com/lumenshop/storefront-backend/pkg/db"
	"github.com/lumenshop/storefront-backend/pkg/logger"
	"github.com/lumenshop/storefront-backend/pkg/metrics"
	"github.com/lumenshop/storefront-backend/pkg/migrate"
	"github.com/lumenshop/storefront-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	customerRepo := customers.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())
	wishlistRepo := wishlist.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		CustomerRepo:   customerRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			HTTPMetrics:     metrics.NewHTTPMetrics(),
			DBPinger:        dbClient,
			RedisClient:     redisClient,
			AuthService:     authService,
			CatalogService:  catalogService,
			WishlistService: wishlistService,
		}),
	}

	serverErrs := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		serverErrs <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrs:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeResources(ctx, logg, dbClient, redisClient)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
		cancel()
	}

	closeResources(ctx, logg, dbClient, redisClient)
}

func closeResources(ctx context.Context, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	err := multierr.Combine(
		dbClient.Close(),
		redisClient.Close(),
	)
	if err != nil {
		logg.Error(ctx, "error closing resources", err)
	}
}
