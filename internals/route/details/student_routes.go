// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "neudev_backend/internals/features/activities/controller"
	classroomController "neudev_backend/internals/features/classrooms/controller"
	studentController "neudev_backend/internals/features/users/students/controller"
	authMw "neudev_backend/internals/middlewares/auth"
)

// StudentRoutes mounts everything under /api/student (role=student).
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := studentController.NewProfileController(db)
	classCtrl := classroomController.NewClassroomController(db)
	actQueryCtrl := activityController.NewActivityQueryController(db)
	submissionCtrl := activityController.NewSubmissionController(db)

	student := api.Group("/student",
		authMw.AuthMiddleware(db),
		authMw.OnlyStudents("the student area"),
	)

	student.Get("/profile/:studentID", profileCtrl.Show)
	student.Put("/profile/:studentID", profileCtrl.Update)
	student.Delete("/profile/:studentID", profileCtrl.DeleteImages)

	student.Get("/classes", classCtrl.EnrolledClasses)
	student.Post("/class/:classID/enroll", classCtrl.Enroll)
	student.Delete("/class/:classID/unenroll", classCtrl.Unenroll)

	student.Get("/activities", actQueryCtrl.StudentActivities)
	student.Get("/activities/:actID/items", actQueryCtrl.StudentActivityItems)
	student.Get("/activities/:actID/leaderboard", actQueryCtrl.StudentLeaderboard)
	student.Post("/activities/:actID/submissions", submissionCtrl.Store)
}
