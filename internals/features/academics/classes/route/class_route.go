package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "classroom_backend/internals/features/academics/classes/controller"
)

func ClassRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewClassController(db)

	r := app.Group("/api/classes")
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", h.Create)
}
