// file: internals/features/bulletin/controller/bulletin_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "neudev_backend/internals/middlewares/auth"

	"neudev_backend/internals/features/bulletin/dto"
	"neudev_backend/internals/features/bulletin/model"
	classModel "neudev_backend/internals/features/classrooms/model"

	helper "neudev_backend/internals/helpers"
)

type BulletinController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBulletinController(db *gorm.DB) *BulletinController {
	return &BulletinController{DB: db, Validator: validator.New()}
}

// ClassPosts handles GET /api/teacher/class/:classID/bulletin, newest first.
func (ctrl *BulletinController) ClassPosts(c *fiber.Ctx) error {
	classID, err := strconv.ParseInt(c.Params("classID"), 10, 64)
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var posts []model.BulletinPostModel
	if err := ctrl.DB.
		Preload("Teacher").
		Where(`"classID" = ?`, classID).
		Order(`"created_at" DESC`).
		Find(&posts).Error; err != nil {
		log.Printf("[ERROR] bulletin list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonList(c, "ok", posts, nil)
}

// Store handles POST /api/teacher/bulletin. Only the class owner may post.
func (ctrl *BulletinController) Store(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateBulletinPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var class classModel.ClassroomModel
	if err := ctrl.DB.First(&class, `"classID" = ?`, req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] bulletin class lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if class.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this class")
	}

	post := model.BulletinPostModel{
		ClassID:   req.ClassID,
		TeacherID: teacherID,
		Title:     req.Title,
		Message:   req.Message,
	}
	if err := ctrl.DB.Create(&post).Error; err != nil {
		log.Printf("[ERROR] bulletin create: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Bulletin post created", post)
}

// Destroy handles DELETE /api/teacher/bulletin/:id. Only the author may delete.
func (ctrl *BulletinController) Destroy(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid bulletin post id")
	}

	var post model.BulletinPostModel
	if err := ctrl.DB.First(&post, `"id" = ?`, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bulletin post not found")
		}
		log.Printf("[ERROR] bulletin lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if post.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this bulletin post")
	}

	if err := ctrl.DB.Delete(&post).Error; err != nil {
		log.Printf("[ERROR] bulletin delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Bulletin post deleted", nil)
}
