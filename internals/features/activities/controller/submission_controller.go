// file: internals/features/activities/controller/submission_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "neudev_backend/internals/middlewares/auth"

	"neudev_backend/internals/features/activities/dto"
	"neudev_backend/internals/features/activities/model"
	classModel "neudev_backend/internals/features/classrooms/model"

	helper "neudev_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db, Validator: validator.New()}
}

// Store handles POST /api/student/activities/:actID/submissions. One attempt
// per (activity, student, item); a second attempt is a 409 via the unique index.
func (ctrl *SubmissionController) Store(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	actID, err := strconv.ParseInt(c.Params("actID"), 10, 64)
	if err != nil || actID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var act model.ActivityModel
	if err := ctrl.DB.First(&act, `"actID" = ?`, actID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] submission activity lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	var enrolled int64
	if err := ctrl.DB.Model(&classModel.ClassStudentModel{}).
		Where(`"classID" = ? AND "studentID" = ?`, act.ClassID, studentID).
		Count(&enrolled).Error; err != nil {
		log.Printf("[ERROR] submission enrollment check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this class")
	}

	var allocated int64
	if err := ctrl.DB.Model(&model.ActivityItemModel{}).
		Where(`"actID" = ? AND "itemID" = ?`, actID, req.ItemID).
		Count(&allocated).Error; err != nil {
		log.Printf("[ERROR] submission item check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if allocated == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"itemID": {"item is not part of this activity"},
		})
	}

	sub := model.ActivitySubmissionModel{
		ActID:          actID,
		StudentID:      studentID,
		ItemID:         &req.ItemID,
		CodeSubmission: req.CodeSubmission,
		Score:          req.Score,
		TimeSpent:      req.TimeSpent,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted this item")
		}
		log.Printf("[ERROR] submission insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	return helper.JsonCreated(c, "Submission recorded", dto.SubmissionResponse{
		SubmissionID: sub.SubmissionID,
		ActID:        sub.ActID,
		StudentID:    sub.StudentID,
		ItemID:       req.ItemID,
		Score:        sub.Score,
		TimeSpent:    sub.TimeSpent,
		SubmittedAt:  sub.SubmittedAt,
	})
}
