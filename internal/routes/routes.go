package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/healthx-platform/healthx/internal/auth"
	"github.com/healthx-platform/healthx/internal/config"
	"github.com/healthx-platform/healthx/internal/identity"
	"github.com/healthx-platform/healthx/internal/middleware"
	"github.com/healthx-platform/healthx/internal/purchase"
	"github.com/healthx-platform/healthx/internal/stats"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)

	var userRepo identity.Repository
	var purchaseRepo purchase.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		purchaseRepo = purchase.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		purchaseRepo = purchase.NewMemoryRepository()
	}

	ids := identity.NewService(userRepo)
	tokens := auth.NewTokenService([]byte(d.Cfg.TokenSecret), d.Cfg.TokenTTL)
	resolver := auth.NewResolver(tokens, ids)
	purchases := purchase.NewService(purchaseRepo)
	dashboard := stats.NewDashboard(userRepo, purchaseRepo,
		d.Cfg.PlatformSampleLimit, d.Cfg.RecentPurchases, d.Cfg.RecentUsers)

	authHandler := auth.NewHandler(ids, tokens, d.Logger)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": d.Cfg.AppName + " API is running",
			"version": "1.0.0",
		})
	})

	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRatePerMinute)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	requireUser := middleware.RequireUser(resolver)
	RegisterProfileRoute(api, requireUser)
	RegisterPresaleRoutes(api, requireUser, purchases)
	RegisterAdminRoutes(api, requireUser, middleware.RequireAdmin(d.Cfg), dashboard)

	return nil
}
