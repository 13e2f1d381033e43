package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kenjummy/booking-api/internal/apperr"
	"github.com/kenjummy/booking-api/internal/config"
	"github.com/kenjummy/booking-api/internal/handlers"
	"github.com/kenjummy/booking-api/internal/middleware"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/validation"
)

const (
	rateLimitMax    = 100
	rateLimitWindow = time.Hour
)

// New assembles the fiber app from its dependencies. A nil redis client
// disables rate limiting (used by tests).
func New(cfg config.Config, logger zerolog.Logger, gdb *gorm.DB, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "booking-api",
		BodyLimit:    10 * 1024,
		ErrorHandler: apperr.Handler(logger),
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	if !cfg.IsProduction() {
		app.Use(fiberlog.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "Server is healthy"})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "Server is Running"})
	})

	v := validation.New()
	authH := &handlers.AuthHandler{
		DB:           gdb,
		Log:          logger,
		Validate:     v,
		JWTSecret:    cfg.JWTSecret,
		AdminSecret:  cfg.AdminSecret,
		CookieSecure: cfg.IsProduction(),
	}
	userH := &handlers.UserHandler{DB: gdb, Log: logger, Validate: v}
	bookingH := &handlers.BookingHandler{DB: gdb, Log: logger, Validate: v}

	api := app.Group("/api", middleware.RateLimit(rdb, logger, rateLimitMax, rateLimitWindow))
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/signup", authH.Signup)
	auth.Post("/login", authH.Login)
	auth.Post("/logout", authH.Logout)

	protect := middleware.Protect(gdb, cfg.JWTSecret)

	// user management: superadmin-only except self-edit, which guards
	// ownership in the handler
	users := v1.Group("/users", protect)
	users.Get("/", middleware.RequireRoles(models.RoleSuperadmin), userH.List)
	users.Put("/:id", userH.UpdateDetail)
	users.Delete("/:id", middleware.RequireRoles(models.RoleSuperadmin), userH.Delete)
	users.Patch("/:id/status", middleware.RequireRoles(models.RoleSuperadmin), userH.UpdateStatus)
	users.Patch("/:id/promote", middleware.RequireRoles(models.RoleSuperadmin), userH.Promote)
	users.Patch("/:id/demote", middleware.RequireRoles(models.RoleSuperadmin), userH.Demote)

	bookings := v1.Group("/bookings", protect)
	bookings.Post("/", bookingH.Create)
	bookings.Get("/my-bookings", bookingH.MyBookings)
	bookings.Get("/all", middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), bookingH.All)
	bookings.Patch("/:id/status", middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin), bookingH.UpdateStatus)

	app.Use(func(c *fiber.Ctx) error {
		logger.Warn().Str("method", c.Method()).Str("path", c.OriginalURL()).Msg("route not found")
		return apperr.New(fiber.StatusNotFound, fmt.Sprintf("Can't find %s on this server!", c.OriginalURL()))
	})

	return app
}
