// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "classroom_backend/internals/features/academics/classes/route"
	deptRoute "classroom_backend/internals/features/academics/department/route"
	subjectRoute "classroom_backend/internals/features/academics/subject/route"
	authRoute "classroom_backend/internals/features/users/auth/route"
	userRoute "classroom_backend/internals/features/users/user/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up DepartmentRoutes...")
	deptRoute.DepartmentRoutes(app, db)

	log.Println("[INFO] Setting up SubjectRoutes...")
	subjectRoute.SubjectRoutes(app, db)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(app, db)

	// Root
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "University Management System API"})
	})
}
