// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"classroom_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Origin diambil dari ALLOWED_ORIGINS / CORS_ORIGIN (daftar dipisah koma).
func CorsMiddleware() fiber.Handler {
	origins := configs.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Cookie",
		AllowCredentials: true,
	})
}
