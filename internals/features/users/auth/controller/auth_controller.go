// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"neudev_backend/internals/configs"
	"neudev_backend/internals/constants"
	authMw "neudev_backend/internals/middlewares/auth"

	authDTO "neudev_backend/internals/features/users/auth/dto"
	authModel "neudev_backend/internals/features/users/auth/model"
	"neudev_backend/internals/features/users/auth/service"
	studentDTO "neudev_backend/internals/features/users/students/dto"
	studentModel "neudev_backend/internals/features/users/students/model"
	teacherDTO "neudev_backend/internals/features/users/teachers/dto"
	teacherModel "neudev_backend/internals/features/users/teachers/model"

	helper "neudev_backend/internals/helpers"
)

var studentNumRe = regexp.MustCompile(`^\d{2}-\d{5}-\d{3}$`)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* ===============================
   Registration
=================================*/

// RegisterStudent handles POST /api/register/student.
func (ctrl *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var req authDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	fieldErrs := map[string][]string{}
	if !institutionalEmail(req.Email) {
		fieldErrs["email"] = append(fieldErrs["email"],
			fmt.Sprintf("must be an @%s address", configs.EmailDomain))
	}
	if !studentNumRe.MatchString(req.StudentNum) {
		fieldErrs["student_num"] = append(fieldErrs["student_num"],
			"must match the format 00-00000-000")
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if taken, err := ctrl.emailTaken(req.Email); err != nil {
		log.Printf("[ERROR] register student email lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	} else if taken {
		return helper.JsonValidationError(c, map[string][]string{
			"email": {"email is already registered"},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] bcrypt hash: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	student := studentModel.StudentModel{
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		Password:   string(hash),
		StudentNum: req.StudentNum,
		Program:    req.Program,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"student_num": {"student number is already registered"},
			})
		}
		log.Printf("[ERROR] register student insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	token, err := service.IssueToken(student.StudentID, constants.RoleStudent, time.Now())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	log.Printf("✅ student registered: %s (id=%d)", student.Email, student.StudentID)
	return helper.JsonCreated(c, "Student registered successfully", authDTO.AuthResponse{
		Message:     "Student registered successfully",
		UserType:    constants.RoleStudent,
		AccessToken: token,
		TokenType:   "Bearer",
		StudentID:   &student.StudentID,
	})
}

// RegisterTeacher handles POST /api/register/teacher.
func (ctrl *AuthController) RegisterTeacher(c *fiber.Ctx) error {
	var req authDTO.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !institutionalEmail(req.Email) {
		return helper.JsonValidationError(c, map[string][]string{
			"email": {fmt.Sprintf("must be an @%s address", configs.EmailDomain)},
		})
	}

	if taken, err := ctrl.emailTaken(req.Email); err != nil {
		log.Printf("[ERROR] register teacher email lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	} else if taken {
		return helper.JsonValidationError(c, map[string][]string{
			"email": {"email is already registered"},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] bcrypt hash: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	teacher := teacherModel.TeacherModel{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  string(hash),
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"email": {"email is already registered"},
			})
		}
		log.Printf("[ERROR] register teacher insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	token, err := service.IssueToken(teacher.TeacherID, constants.RoleTeacher, time.Now())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	log.Printf("✅ teacher registered: %s (id=%d)", teacher.Email, teacher.TeacherID)
	return helper.JsonCreated(c, "Teacher registered successfully", authDTO.AuthResponse{
		Message:     "Teacher registered successfully",
		UserType:    constants.RoleTeacher,
		AccessToken: token,
		TokenType:   "Bearer",
		TeacherID:   &teacher.TeacherID,
	})
}

/* ===============================
   Login / Logout / Me
=================================*/

// Login handles POST /api/login. The email is looked up in the students table
// first, then teachers; the matching table decides the role baked into the token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var student studentModel.StudentModel
	err := ctrl.DB.Where("email = ?", req.Email).First(&student).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		token, terr := service.IssueToken(student.StudentID, constants.RoleStudent, time.Now())
		if terr != nil {
			log.Printf("[ERROR] issue token: %v", terr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
			Message:     "Login successful",
			UserType:    constants.RoleStudent,
			AccessToken: token,
			TokenType:   "Bearer",
			StudentID:   &student.StudentID,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] login student lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	var teacher teacherModel.TeacherModel
	err = ctrl.DB.Where("email = ?", req.Email).First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		log.Printf("[ERROR] login teacher lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	token, terr := service.IssueToken(teacher.TeacherID, constants.RoleTeacher, time.Now())
	if terr != nil {
		log.Printf("[ERROR] issue token: %v", terr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
		Message:     "Login successful",
		UserType:    constants.RoleTeacher,
		AccessToken: token,
		TokenType:   "Bearer",
		TeacherID:   &teacher.TeacherID,
	})
}

// Logout handles POST /api/logout: the presented token goes on the blacklist
// until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(authMw.LocalsRawToken).(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	exp, _ := c.Locals(authMw.LocalsTokenExp).(time.Time)
	if exp.IsZero() {
		exp = time.Now().Add(service.TokenTTL)
	}

	entry := authModel.TokenBlacklist{Token: raw, ExpiredAt: exp}
	if err := ctrl.DB.Create(&entry).Error; err != nil && !helper.IsUniqueViolation(err) {
		log.Printf("[ERROR] blacklist insert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonOK(c, "Logged out successfully", nil)
}

// Me handles GET /api/user: resolves the bearer principal to its profile row.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role, _ := authMw.UserRole(c)

	switch role {
	case constants.RoleStudent:
		var student studentModel.StudentModel
		if err := ctrl.DB.First(&student, `"studentID" = ?`, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			log.Printf("[ERROR] me student lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		return helper.JsonOK(c, "ok", fiber.Map{
			"user_type": constants.RoleStudent,
			"user":      studentDTO.ToStudentProfileResponse(&student),
		})
	case constants.RoleTeacher:
		var teacher teacherModel.TeacherModel
		if err := ctrl.DB.First(&teacher, `"teacherID" = ?`, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
			}
			log.Printf("[ERROR] me teacher lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		return helper.JsonOK(c, "ok", fiber.Map{
			"user_type": constants.RoleTeacher,
			"user":      teacherDTO.ToTeacherProfileResponse(&teacher),
		})
	default:
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
}

/* ===============================
   internals
=================================*/

// emailTaken checks both principal tables; an email lives in at most one.
func (ctrl *AuthController) emailTaken(email string) (bool, error) {
	var n int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := ctrl.DB.Model(&teacherModel.TeacherModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

var emailLocalRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+$`)

func institutionalEmail(email string) bool {
	suffix := "@" + configs.EmailDomain
	if len(email) <= len(suffix) || email[len(email)-len(suffix):] != suffix {
		return false
	}
	return emailLocalRe.MatchString(email[:len(email)-len(suffix)])
}
