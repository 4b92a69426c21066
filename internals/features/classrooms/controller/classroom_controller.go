// file: internals/features/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "neudev_backend/internals/middlewares/auth"

	activityModel "neudev_backend/internals/features/activities/model"
	bulletinModel "neudev_backend/internals/features/bulletin/model"
	"neudev_backend/internals/features/classrooms/dto"
	"neudev_backend/internals/features/classrooms/model"
	studentModel "neudev_backend/internals/features/users/students/model"

	helper "neudev_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validator: validator.New()}
}

/* ===============================
   Teacher side
=================================*/

// Index handles GET /api/teacher/classes: the caller's classes with enrollment counts.
func (ctrl *ClassroomController) Index(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var classes []model.ClassroomModel
	if err := ctrl.DB.
		Where(`"teacherID" = ?`, teacherID).
		Order(`"created_at" DESC`).
		Find(&classes).Error; err != nil {
		log.Printf("[ERROR] class list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	out := make([]dto.ClassroomResponse, 0, len(classes))
	for i := range classes {
		resp := dto.ToClassroomResponse(&classes[i])
		var n int64
		if err := ctrl.DB.Model(&model.ClassStudentModel{}).
			Where(`"classID" = ?`, classes[i].ClassID).
			Count(&n).Error; err != nil {
			log.Printf("[ERROR] class student count: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		resp.StudentCount = &n
		out = append(out, resp)
	}
	return helper.JsonList(c, "ok", out, nil)
}

// Store handles POST /api/teacher/class. The 6-digit classID is assigned by the
// model's BeforeCreate hook.
func (ctrl *ClassroomController) Store(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	class := model.ClassroomModel{
		ClassName:    req.ClassName,
		ClassSection: req.ClassSection,
		TeacherID:    teacherID,
	}
	if err := ctrl.DB.Create(&class).Error; err != nil {
		log.Printf("[ERROR] class create: %v", err)
		return helper.WritePGError(c, err)
	}
	log.Printf("✅ class created: %d (%s)", class.ClassID, class.ClassName)
	return helper.JsonCreated(c, "Class created successfully", dto.ToClassroomResponse(&class))
}

// Show handles GET /api/teacher/class/:id (owner only).
func (ctrl *ClassroomController) Show(c *fiber.Ctx) error {
	class, err := ctrl.ownedClass(c, c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToClassroomResponse(class))
}

// ShowClassInfo handles GET /api/teacher/class-info/:id: class plus teacher
// details, readable by any authenticated teacher.
func (ctrl *ClassroomController) ShowClassInfo(c *fiber.Ctx) error {
	classID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.ClassroomModel
	if err := ctrl.DB.Preload("Teacher").First(&class, `"classID" = ?`, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] class-info lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonOK(c, "ok", dto.ToClassroomResponse(&class))
}

// Update handles PUT /api/teacher/class/:id (owner only).
func (ctrl *ClassroomController) Update(c *fiber.Ctx) error {
	class, err := ctrl.ownedClass(c, c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.ClassName != nil {
		updates["className"] = *req.ClassName
	}
	if req.ClassSection != nil {
		updates["classSection"] = *req.ClassSection
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(class).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] class update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}
	return helper.JsonUpdated(c, "Class updated successfully", dto.ToClassroomResponse(class))
}

// Destroy handles DELETE /api/teacher/class/:id (owner only). Enrollment rows
// and the class's activities (with their allocations and submissions) go with it.
func (ctrl *ClassroomController) Destroy(c *fiber.Ctx) error {
	class, err := ctrl.ownedClass(c, c.Params("id"))
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var actIDs []int64
		if err := tx.Model(&activityModel.ActivityModel{}).
			Where(`"classID" = ?`, class.ClassID).
			Pluck(`"actID"`, &actIDs).Error; err != nil {
			return err
		}
		if len(actIDs) > 0 {
			if err := tx.Where(`"actID" IN ?`, actIDs).Delete(&activityModel.ActivitySubmissionModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where(`"actID" IN ?`, actIDs).Delete(&activityModel.ActivityItemModel{}).Error; err != nil {
				return err
			}
			if err := tx.Exec(`DELETE FROM activity_programming_languages WHERE "actID" IN ?`, actIDs).Error; err != nil {
				return err
			}
			if err := tx.Where(`"actID" IN ?`, actIDs).Delete(&activityModel.ActivityModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where(`"classID" = ?`, class.ClassID).Delete(&bulletinModel.BulletinPostModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where(`"classID" = ?`, class.ClassID).Delete(&model.ClassStudentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(class).Error
	}); err != nil {
		log.Printf("[ERROR] class delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Class deleted successfully", nil)
}

// Students handles GET /api/teacher/class/:classID/students (owner only).
func (ctrl *ClassroomController) Students(c *fiber.Ctx) error {
	class, err := ctrl.ownedClass(c, c.Params("classID"))
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Joins(`JOIN class_student cs ON cs."studentID" = students."studentID"`).
		Where(`cs."classID" = ?`, class.ClassID).
		Order(`students."lastname" ASC`).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] class roster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	out := make([]dto.ClassStudentRow, 0, len(students))
	for i := range students {
		out = append(out, dto.ToClassStudentRow(&students[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// UnenrollStudent handles DELETE /api/teacher/class/:classID/unenroll/:studentID
// (owner only).
func (ctrl *ClassroomController) UnenrollStudent(c *fiber.Ctx) error {
	class, err := ctrl.ownedClass(c, c.Params("classID"))
	if err != nil {
		return err
	}
	studentID, perr := strconv.ParseInt(c.Params("studentID"), 10, 64)
	if perr != nil || studentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctrl.DB.
		Where(`"classID" = ? AND "studentID" = ?`, class.ClassID, studentID).
		Delete(&model.ClassStudentModel{})
	if res.Error != nil {
		log.Printf("[ERROR] teacher unenroll: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student is not enrolled in this class")
	}
	return helper.JsonDeleted(c, "Student removed from class", nil)
}

/* ===============================
   Student side
=================================*/

// Enroll handles POST /api/student/class/:classID/enroll. Double enrollment is
// a 409 via the unique (classID, studentID) pair.
func (ctrl *ClassroomController) Enroll(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	classID, err := strconv.ParseInt(c.Params("classID"), 10, 64)
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.ClassroomModel
	if err := ctrl.DB.First(&class, `"classID" = ?`, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] enroll class lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	row := model.ClassStudentModel{ClassID: classID, StudentID: studentID}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this class")
		}
		log.Printf("[ERROR] enroll insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	log.Printf("✅ student %d enrolled in class %d", studentID, classID)
	return helper.JsonCreated(c, "Enrolled successfully", dto.ToClassroomResponse(&class))
}

// Unenroll handles DELETE /api/student/class/:classID/unenroll.
func (ctrl *ClassroomController) Unenroll(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	classID, err := strconv.ParseInt(c.Params("classID"), 10, 64)
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	res := ctrl.DB.
		Where(`"classID" = ? AND "studentID" = ?`, classID, studentID).
		Delete(&model.ClassStudentModel{})
	if res.Error != nil {
		log.Printf("[ERROR] unenroll: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Not enrolled in this class")
	}
	return helper.JsonDeleted(c, "Unenrolled successfully", nil)
}

// EnrolledClasses handles GET /api/student/classes.
func (ctrl *ClassroomController) EnrolledClasses(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var classes []model.ClassroomModel
	if err := ctrl.DB.
		Preload("Teacher").
		Joins(`JOIN class_student cs ON cs."classID" = classes."classID"`).
		Where(`cs."studentID" = ?`, studentID).
		Order(`classes."className" ASC`).
		Find(&classes).Error; err != nil {
		log.Printf("[ERROR] enrolled classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	out := make([]dto.ClassroomResponse, 0, len(classes))
	for i := range classes {
		out = append(out, dto.ToClassroomResponse(&classes[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

/* ===============================
   internals
=================================*/

// ownedClass parses the id param, loads the class and enforces ownership.
func (ctrl *ClassroomController) ownedClass(c *fiber.Ctx, raw string) (*model.ClassroomModel, error) {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	classID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || classID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.ClassroomModel
	if err := ctrl.DB.First(&class, `"classID" = ?`, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] class lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if class.TeacherID != teacherID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You do not own this class")
	}
	return &class, nil
}
