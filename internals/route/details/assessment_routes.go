// file: internals/route/details/assessment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"neudev_backend/internals/constants"
	assessmentController "neudev_backend/internals/features/assessments/controller"
	authMw "neudev_backend/internals/middlewares/auth"
)

// AssessmentRoutes mounts the opaque result ledger. Both roles may use it.
func AssessmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assessmentController.NewAssessmentController(db)

	group := api.Group("/assessments",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("", constants.AllRoles...),
	)

	group.Get("/", ctrl.Index)
	group.Post("/", ctrl.Store)
	group.Get("/:id", ctrl.Show)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Destroy)
}
