package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "classroom_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan:
// recovery → logger → cors → session → rate limiter.
// Session harus lebih dulu dari limiter supaya budget mengikuti role.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(SessionMiddleware())
	app.Use(RoleRateLimiter())
}
