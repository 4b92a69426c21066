// file: internals/route/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	details "neudev_backend/internals/route/details"
)

// SetupRoutes mounts the whole /api surface: public auth endpoints, the shared
// authenticated endpoints, and the role-scoped student/teacher groups.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.StudentRoutes(api, db)
	details.TeacherRoutes(api, db)
	details.AssessmentRoutes(api, db)
}
