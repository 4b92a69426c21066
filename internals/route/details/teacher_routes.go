// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "neudev_backend/internals/features/activities/controller"
	bulletinController "neudev_backend/internals/features/bulletin/controller"
	classroomController "neudev_backend/internals/features/classrooms/controller"
	itemController "neudev_backend/internals/features/items/controller"
	languageController "neudev_backend/internals/features/languages/controller"
	teacherController "neudev_backend/internals/features/users/teachers/controller"
	authMw "neudev_backend/internals/middlewares/auth"
)

// TeacherRoutes mounts everything under /api/teacher (role=teacher).
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := teacherController.NewProfileController(db)
	classCtrl := classroomController.NewClassroomController(db)
	actCtrl := activityController.NewActivityController(db)
	actQueryCtrl := activityController.NewActivityQueryController(db)
	itemCtrl := itemController.NewItemController(db)
	langCtrl := languageController.NewLanguageController(db)
	bulletinCtrl := bulletinController.NewBulletinController(db)

	teacher := api.Group("/teacher",
		authMw.AuthMiddleware(db),
		authMw.OnlyTeachers("the teacher area"),
	)

	teacher.Get("/profile/:teacherID", profileCtrl.Show)
	teacher.Put("/profile/:teacherID", profileCtrl.Update)
	teacher.Delete("/profile/:teacherID", profileCtrl.DeleteImages)

	teacher.Get("/classes", classCtrl.Index)
	teacher.Post("/class", classCtrl.Store)
	teacher.Get("/class-info/:id", classCtrl.ShowClassInfo)
	teacher.Get("/class/:classID/students", classCtrl.Students)
	teacher.Delete("/class/:classID/unenroll/:studentID", classCtrl.UnenrollStudent)
	teacher.Get("/class/:classID/activities", actQueryCtrl.ClassActivities)
	teacher.Get("/class/:classID/bulletin", bulletinCtrl.ClassPosts)
	teacher.Get("/class/:id", classCtrl.Show)
	teacher.Put("/class/:id", classCtrl.Update)
	teacher.Delete("/class/:id", classCtrl.Destroy)

	teacher.Post("/activities", actCtrl.Store)
	teacher.Get("/activities/:actID/items", actQueryCtrl.TeacherActivityItems)
	teacher.Get("/activities/:actID/leaderboard", actQueryCtrl.TeacherLeaderboard)
	teacher.Get("/activities/:actID/settings", actCtrl.ShowSettings)
	teacher.Put("/activities/:actID/settings", actCtrl.UpdateSettings)
	teacher.Get("/activities/:actID", actCtrl.Show)
	teacher.Put("/activities/:actID", actCtrl.Update)
	teacher.Delete("/activities/:actID", actCtrl.Destroy)

	teacher.Get("/itemTypes", itemCtrl.ItemTypes)
	teacher.Get("/items/itemType/:itemTypeID", itemCtrl.IndexByItemType)
	teacher.Post("/items", itemCtrl.Store)
	teacher.Get("/items/:itemID", itemCtrl.Show)
	teacher.Put("/items/:itemID", itemCtrl.Update)
	teacher.Delete("/items/:itemID", itemCtrl.Destroy)

	teacher.Get("/programmingLanguages", langCtrl.Index)
	teacher.Post("/programmingLanguages", langCtrl.Store)
	teacher.Get("/programmingLanguages/:id", langCtrl.Show)
	teacher.Put("/programmingLanguages/:id", langCtrl.Update)
	teacher.Delete("/programmingLanguages/:id", langCtrl.Destroy)

	teacher.Post("/bulletin", bulletinCtrl.Store)
	teacher.Delete("/bulletin/:id", bulletinCtrl.Destroy)
}
