// file: internals/features/languages/controller/language_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"neudev_backend/internals/features/languages/dto"
	"neudev_backend/internals/features/languages/model"

	helper "neudev_backend/internals/helpers"
)

type LanguageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLanguageController(db *gorm.DB) *LanguageController {
	return &LanguageController{DB: db, Validator: validator.New()}
}

// Index handles GET /api/teacher/programmingLanguages.
func (ctrl *LanguageController) Index(c *fiber.Ctx) error {
	var langs []model.ProgrammingLanguageModel
	if err := ctrl.DB.Order(`"progLangName" ASC`).Find(&langs).Error; err != nil {
		log.Printf("[ERROR] language list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonList(c, "ok", langs, nil)
}

// Store handles POST /api/teacher/programmingLanguages. Names are unique.
func (ctrl *LanguageController) Store(c *fiber.Ctx) error {
	var req dto.CreateProgrammingLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	lang := model.ProgrammingLanguageModel{ProgLangName: req.ProgLangName}
	if err := ctrl.DB.Create(&lang).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Programming language already exists")
		}
		log.Printf("[ERROR] language create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonCreated(c, "Programming language created", lang)
}

// Show handles GET /api/teacher/programmingLanguages/:id.
func (ctrl *LanguageController) Show(c *fiber.Ctx) error {
	lang, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", lang)
}

// Update handles PUT /api/teacher/programmingLanguages/:id.
func (ctrl *LanguageController) Update(c *fiber.Ctx) error {
	lang, err := ctrl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProgrammingLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := ctrl.DB.Model(lang).Update("progLangName", req.ProgLangName).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Programming language already exists")
		}
		log.Printf("[ERROR] language update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonUpdated(c, "Programming language updated", lang)
}

// Destroy handles DELETE /api/teacher/programmingLanguages/:id. A language still
// referenced by items or activities stays put (FK → 400).
func (ctrl *LanguageController) Destroy(c *fiber.Ctx) error {
	lang, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(lang).Error; err != nil {
		log.Printf("[ERROR] language delete: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Programming language deleted", nil)
}

func (ctrl *LanguageController) find(c *fiber.Ctx) (*model.ProgrammingLanguageModel, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid programming language id")
	}
	var lang model.ProgrammingLanguageModel
	if err := ctrl.DB.First(&lang, `"progLangID" = ?`, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Programming language not found")
		}
		log.Printf("[ERROR] language lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &lang, nil
}
