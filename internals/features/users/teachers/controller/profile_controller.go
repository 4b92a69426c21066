// file: internals/features/users/teachers/controller/profile_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authMw "neudev_backend/internals/middlewares/auth"

	"neudev_backend/internals/features/users/teachers/dto"
	"neudev_backend/internals/features/users/teachers/model"

	helper "neudev_backend/internals/helpers"
	"neudev_backend/internals/helpers/storage"
)

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validator: validator.New()}
}

// Show handles GET /api/teacher/profile/:teacherID.
func (ctrl *ProfileController) Show(c *fiber.Ctx) error {
	teacher, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToTeacherProfileResponse(teacher))
}

// Update handles PUT /api/teacher/profile/:teacherID (multipart).
func (ctrl *ProfileController) Update(c *fiber.Ctx) error {
	teacher, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.Firstname != nil {
		updates["firstname"] = *req.Firstname
	}
	if req.Lastname != nil {
		updates["lastname"] = *req.Lastname
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if herr != nil {
			log.Printf("[ERROR] bcrypt hash: %v", herr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		updates["password"] = string(hash)
	}

	if fh, ferr := c.FormFile("profileImage"); ferr == nil {
		rel, serr := storage.SaveImage("teachers/profile", fh)
		if serr != nil {
			log.Printf("[ERROR] save profile image: %v", serr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the uploaded profile image")
		}
		if teacher.ProfileImage != nil {
			_ = storage.DeleteImage(*teacher.ProfileImage)
		}
		updates["profileImage"] = rel
	}
	if fh, ferr := c.FormFile("coverImage"); ferr == nil {
		rel, serr := storage.SaveImage("teachers/cover", fh)
		if serr != nil {
			log.Printf("[ERROR] save cover image: %v", serr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the uploaded cover image")
		}
		if teacher.CoverImage != nil {
			_ = storage.DeleteImage(*teacher.CoverImage)
		}
		updates["coverImage"] = rel
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(teacher).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already in use.")
			}
			log.Printf("[ERROR] teacher profile update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}

	if err := ctrl.DB.First(teacher, `"teacherID" = ?`, teacher.TeacherID).Error; err != nil {
		log.Printf("[ERROR] teacher profile reload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", dto.ToTeacherProfileResponse(teacher))
}

// DeleteImages handles DELETE /api/teacher/profile/:teacherID.
func (ctrl *ProfileController) DeleteImages(c *fiber.Ctx) error {
	teacher, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}

	if teacher.ProfileImage != nil {
		_ = storage.DeleteImage(*teacher.ProfileImage)
	}
	if teacher.CoverImage != nil {
		_ = storage.DeleteImage(*teacher.CoverImage)
	}
	if err := ctrl.DB.Model(teacher).Updates(map[string]interface{}{
		"profileImage": gorm.Expr("NULL"),
		"coverImage":   gorm.Expr("NULL"),
	}).Error; err != nil {
		log.Printf("[ERROR] teacher image clear: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Profile images removed", nil)
}

func (ctrl *ProfileController) ownProfile(c *fiber.Ctx) (*model.TeacherModel, error) {
	userID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paramID, err := strconv.ParseInt(c.Params("teacherID"), 10, 64)
	if err != nil || paramID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	if paramID != userID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You may only access your own profile")
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, `"teacherID" = ?`, paramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Printf("[ERROR] teacher lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &teacher, nil
}
