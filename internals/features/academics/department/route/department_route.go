package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "classroom_backend/internals/features/academics/department/controller"
)

func DepartmentRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewDepartmentController(db)

	r := app.Group("/api/departments")
	r.Get("/", h.List)
	r.Post("/", h.Create)
}
