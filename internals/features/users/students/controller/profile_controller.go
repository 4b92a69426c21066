// file: internals/features/users/students/controller/profile_controller.go
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

	"neudev_backend/internals/features/users/students/dto"
	"neudev_backend/internals/features/users/students/model"

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

// Show handles GET /api/student/profile/:studentID. Students may only read
// their own profile.
func (ctrl *ProfileController) Show(c *fiber.Ctx) error {
	student, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToStudentProfileResponse(student))
}

// Update handles PUT /api/student/profile/:studentID (multipart). Text fields
// are optional; profileImage / coverImage parts replace the stored images.
func (ctrl *ProfileController) Update(c *fiber.Ctx) error {
	student, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStudentProfileRequest
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
	if req.StudentNum != nil {
		updates["student_num"] = *req.StudentNum
	}
	if req.Program != nil {
		updates["program"] = *req.Program
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
		rel, serr := storage.SaveImage("students/profile", fh)
		if serr != nil {
			log.Printf("[ERROR] save profile image: %v", serr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the uploaded profile image")
		}
		if student.ProfileImage != nil {
			_ = storage.DeleteImage(*student.ProfileImage)
		}
		updates["profileImage"] = rel
	}
	if fh, ferr := c.FormFile("coverImage"); ferr == nil {
		rel, serr := storage.SaveImage("students/cover", fh)
		if serr != nil {
			log.Printf("[ERROR] save cover image: %v", serr)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the uploaded cover image")
		}
		if student.CoverImage != nil {
			_ = storage.DeleteImage(*student.CoverImage)
		}
		updates["coverImage"] = rel
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(student).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email or student number already in use.")
			}
			log.Printf("[ERROR] student profile update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}

	if err := ctrl.DB.First(student, `"studentID" = ?`, student.StudentID).Error; err != nil {
		log.Printf("[ERROR] student profile reload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", dto.ToStudentProfileResponse(student))
}

// DeleteImages handles DELETE /api/student/profile/:studentID: removes the
// stored profile and cover images. Idempotent.
func (ctrl *ProfileController) DeleteImages(c *fiber.Ctx) error {
	student, err := ctrl.ownProfile(c)
	if err != nil {
		return err
	}

	if student.ProfileImage != nil {
		_ = storage.DeleteImage(*student.ProfileImage)
	}
	if student.CoverImage != nil {
		_ = storage.DeleteImage(*student.CoverImage)
	}
	if err := ctrl.DB.Model(student).Updates(map[string]interface{}{
		"profileImage": gorm.Expr("NULL"),
		"coverImage":   gorm.Expr("NULL"),
	}).Error; err != nil {
		log.Printf("[ERROR] student image clear: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Profile images removed", nil)
}

// ownProfile loads the :studentID row and rejects access to other students.
func (ctrl *ProfileController) ownProfile(c *fiber.Ctx) (*model.StudentModel, error) {
	userID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paramID, err := strconv.ParseInt(c.Params("studentID"), 10, 64)
	if err != nil || paramID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if paramID != userID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You may only access your own profile")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, `"studentID" = ?`, paramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] student lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &student, nil
}
