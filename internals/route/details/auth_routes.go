// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "neudev_backend/internals/features/users/auth/controller"
	"neudev_backend/internals/middlewares"
	authMw "neudev_backend/internals/middlewares/auth"
)

// AuthRoutes mounts registration, login and the shared authenticated endpoints.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/register/student", middlewares.RegisterRateLimiter(), ctrl.RegisterStudent)
	api.Post("/register/teacher", middlewares.RegisterRateLimiter(), ctrl.RegisterTeacher)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	authed := api.Group("", authMw.AuthMiddleware(db))
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/user", ctrl.Me)
}
