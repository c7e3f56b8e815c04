package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumenshop/storefront-backend/api/controllers"
	"github.com/lumenshop/storefront-backend/api/middleware"
	"github.com/lumenshop/storefront-backend/internal/auth"
	"github.com/lumenshop/storefront-backend/internal/catalog"
	"github.com/lumenshop/storefront-backend/internal/wishlist"
	"github.com/lumenshop/storefront-backend/pkg/config"
	"github.com/lumenshop/storefront-backend/pkg/logger"
	"github.com/lumenshop/storefront-backend/pkg/metrics"
	"github.com/lumenshop/storefront-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	HTTPMetrics *metrics.HTTPMetrics

	DBPinger    controllers.Pinger
	RedisClient *redis.Client

	AuthService     auth.Service
	CatalogService  catalog.Service
	WishlistService wishlist.Service
}

// NewRouter wires the middleware chain and every route of the storefront API.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": p.DBPinger,
			"redis":    redisPinger(p.RedisClient),
		}))
	})

	if p.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", p.HTTPMetrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.RedisClient, logg)).
			Post("/login", controllers.Login(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.RedisClient, logg)).
			Post("/register", controllers.Register(p.AuthService, logg))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogProducts(p.CatalogService, logg))
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", controllers.WishlistGet(p.WishlistService, cfg.JWT, logg))
		r.Post("/items", controllers.WishlistAddItem(p.WishlistService, cfg.JWT, logg))
		r.Delete("/items/{itemRef}", controllers.WishlistRemoveItem(p.WishlistService, cfg.JWT, logg))
		r.Patch("/items/{itemRef}", controllers.WishlistUpdateNotes(p.WishlistService, cfg.JWT, logg))
	})

	return r
}

// redisPinger keeps a typed-nil *redis.Client out of the readiness map.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
