package api

import (
	"errors"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/docs"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/api/handlers"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/auth"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AccessLog    bool
}

type Handlers struct {
	Auth         *handlers.AuthHandler
	Transactions *handlers.TransactionHandler
	Health       *handlers.HealthHandler
}

func SetupRouter(
	cfg RouterConfig,
	h Handlers,
	jwtManager *auth.JWTManager,
	users middleware.UserLoader,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: cfg.AllowOrigins != "*",
	}))
	if cfg.AccessLog {
		app.Use(logger.New())
	}

	// Swagger - the docs package registers itself in init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.Health)

	api := app.Group("/api")
	protect := middleware.AuthMiddleware(jwtManager, users, appLogger)

	// Auth routes
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)
	authRoutes.Post("/refresh", h.Auth.RefreshToken)
	authRoutes.Get("/profile", protect, h.Auth.Profile)

	// Transaction routes (protected)
	transactions := api.Group("/transactions", protect)
	transactions.Get("", h.Transactions.ListTransactions)
	transactions.Get("/export", h.Transactions.ExportTransactions)
	transactions.Get("/stats", h.Transactions.GetStats)

	return app
}
