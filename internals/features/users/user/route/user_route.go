package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "classroom_backend/internals/features/users/user/controller"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewUserController(db)

	r := app.Group("/api/users")
	r.Get("/", h.List)
}
