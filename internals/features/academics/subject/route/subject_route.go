package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "classroom_backend/internals/features/academics/subject/controller"
)

func SubjectRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewSubjectController(db)

	r := app.Group("/api/subjects")
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", h.Create)
}
