// file: internals/features/assessments/controller/assessment_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"neudev_backend/internals/features/assessments/dto"
	"neudev_backend/internals/features/assessments/model"

	helper "neudev_backend/internals/helpers"
)

// AssessmentController is a plain CRUD surface over the opaque result ledger.
// Both roles may use it.
type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validator: validator.New()}
}

// Index handles GET /api/assessments. Optional actID query filter; paged.
func (ctrl *AssessmentController) Index(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AssessmentModel{})
	if raw := c.Query("actID"); raw != "" {
		actID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || actID <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid actID filter")
		}
		q = q.Where(`"actID" = ?`, actID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] assessment count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var rows []model.AssessmentModel
	if err := q.Order(`"assessmentID" DESC`).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] assessment list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Store handles POST /api/assessments.
func (ctrl *AssessmentController) Store(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	row := model.AssessmentModel{
		ActID:         req.ActID,
		ItemID:        req.ItemID,
		ItemTypeID:    req.ItemTypeID,
		TestCases:     req.TestCases,
		SubmittedCode: req.SubmittedCode,
		Result:        req.Result,
		ExecutionTime: req.ExecutionTime,
		ProgLang:      req.ProgLang,
		ExtraData:     req.ExtraData,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] assessment create: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Assessment recorded", row)
}

// Show handles GET /api/assessments/:id.
func (ctrl *AssessmentController) Show(c *fiber.Ctx) error {
	row, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", row)
}

// Update handles PUT /api/assessments/:id.
func (ctrl *AssessmentController) Update(c *fiber.Ctx) error {
	row, err := ctrl.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.TestCases != nil {
		updates["testCases"] = *req.TestCases
	}
	if req.SubmittedCode != nil {
		updates["submittedCode"] = *req.SubmittedCode
	}
	if req.Result != nil {
		updates["result"] = *req.Result
	}
	if req.ExecutionTime != nil {
		updates["executionTime"] = *req.ExecutionTime
	}
	if req.ProgLang != nil {
		updates["progLang"] = *req.ProgLang
	}
	if req.ExtraData != nil {
		updates["extraData"] = req.ExtraData
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(row).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] assessment update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}
	return helper.JsonUpdated(c, "Assessment updated", row)
}

// Destroy handles DELETE /api/assessments/:id.
func (ctrl *AssessmentController) Destroy(c *fiber.Ctx) error {
	row, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(row).Error; err != nil {
		log.Printf("[ERROR] assessment delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Assessment deleted", nil)
}

func (ctrl *AssessmentController) find(c *fiber.Ctx) (*model.AssessmentModel, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid assessment id")
	}
	var row model.AssessmentModel
	if err := ctrl.DB.First(&row, `"assessmentID" = ?`, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Assessment not found")
		}
		log.Printf("[ERROR] assessment lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &row, nil
}
