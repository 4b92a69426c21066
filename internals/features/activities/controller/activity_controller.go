// file: internals/features/activities/controller/activity_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "neudev_backend/internals/middlewares/auth"

	"neudev_backend/internals/features/activities/dto"
	"neudev_backend/internals/features/activities/model"
	"neudev_backend/internals/features/activities/service"
	classModel "neudev_backend/internals/features/classrooms/model"
	itemModel "neudev_backend/internals/features/items/model"
	langModel "neudev_backend/internals/features/languages/model"

	helper "neudev_backend/internals/helpers"
)

// ActivityController owns activity authoring and the exam-mode settings.
// Clock is swappable so window behavior is testable with fixed instants.
type ActivityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Clock     service.Clock
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db, Validator: validator.New(), Clock: time.Now}
}

// Store handles POST /api/teacher/activities. Items and languages are validated
// before any write; maxPoints is the sum of the allocations, whatever the
// client sent.
func (ctrl *ActivityController) Store(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !req.CloseDate.After(req.OpenDate) {
		return helper.JsonValidationError(c, map[string][]string{
			"closeDate": {"must be after openDate"},
		})
	}

	var class classModel.ClassroomModel
	if err := ctrl.DB.First(&class, `"classID" = ?`, req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] activity class lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if class.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this class")
	}

	if err := ctrl.validateItems(c, req.Items); err != nil {
		return err
	}
	langs, err := ctrl.languages(c, req.ProgLangIDs)
	if err != nil {
		return err
	}

	act := model.ActivityModel{
		ClassID:       req.ClassID,
		TeacherID:     teacherID,
		ActTitle:      req.ActTitle,
		ActDesc:       req.ActDesc,
		ActDifficulty: req.ActDifficulty,
		ActDuration:   req.ActDuration,
		OpenDate:      req.OpenDate,
		CloseDate:     req.CloseDate,
		MaxPoints:     sumPoints(req.Items),

		ExamMode:         boolOr(req.ExamMode, false),
		RandomizedItems:  boolOr(req.RandomizedItems, false),
		DisableReviewing: boolOr(req.DisableReviewing, false),
		HideLeaderboard:  boolOr(req.HideLeaderboard, false),
		DelayGrading:     boolOr(req.DelayGrading, false),
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&act).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			row := model.ActivityItemModel{
				ActID:         act.ActID,
				ItemID:        it.ItemID,
				ItemTypeID:    it.ItemTypeID,
				ActItemPoints: it.ActItemPoints,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return tx.Model(&act).Association("ProgrammingLanguages").Replace(langs)
	}); err != nil {
		log.Printf("[ERROR] activity create: %v", err)
		return helper.WritePGError(c, err)
	}

	log.Printf("✅ activity created: %d (%s) in class %d", act.ActID, act.ActTitle, act.ClassID)
	return helper.JsonCreated(c, "Activity created successfully", ctrl.reload(act.ActID))
}

// Show handles GET /api/teacher/activities/:actID.
func (ctrl *ActivityController) Show(c *fiber.Ctx) error {
	act, err := ctrl.findActivity(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", ctrl.reload(act.ActID))
}

// Update handles PUT /api/teacher/activities/:actID (owner only). Supplying
// items replaces the allocations wholesale and recomputes maxPoints; moving
// closeDate into the future clears completed_at.
func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	act, err := ctrl.findOwned(c)
	if err != nil {
		return err
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	openDate := act.OpenDate
	if req.OpenDate != nil {
		openDate = *req.OpenDate
	}
	closeDate := act.CloseDate
	if req.CloseDate != nil {
		closeDate = *req.CloseDate
	}
	if !closeDate.After(openDate) {
		return helper.JsonValidationError(c, map[string][]string{
			"closeDate": {"must be after openDate"},
		})
	}

	if req.Items != nil {
		if err := ctrl.validateItems(c, req.Items); err != nil {
			return err
		}
	}
	var langs []langModel.ProgrammingLanguageModel
	if req.ProgLangIDs != nil {
		langs, err = ctrl.languages(c, req.ProgLangIDs)
		if err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if req.ActTitle != nil {
		updates["actTitle"] = *req.ActTitle
	}
	if req.ActDesc != nil {
		updates["actDesc"] = *req.ActDesc
	}
	if req.ActDifficulty != nil {
		updates["actDifficulty"] = *req.ActDifficulty
	}
	if req.ActDuration != nil {
		updates["actDuration"] = *req.ActDuration
	}
	if req.OpenDate != nil {
		updates["openDate"] = *req.OpenDate
	}
	if req.CloseDate != nil {
		updates["closeDate"] = *req.CloseDate
	}
	if req.Items != nil {
		updates["maxPoints"] = sumPoints(req.Items)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(act).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Items != nil {
			if err := tx.Where(`"actID" = ?`, act.ActID).Delete(&model.ActivityItemModel{}).Error; err != nil {
				return err
			}
			for _, it := range req.Items {
				row := model.ActivityItemModel{
					ActID:         act.ActID,
					ItemID:        it.ItemID,
					ItemTypeID:    it.ItemTypeID,
					ActItemPoints: it.ActItemPoints,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.ProgLangIDs != nil {
			if err := tx.Model(act).Association("ProgrammingLanguages").Replace(langs); err != nil {
				return err
			}
		}
		act.CloseDate = closeDate
		return service.ClearCompletionIfReopened(tx, act, ctrl.Clock())
	}); err != nil {
		log.Printf("[ERROR] activity update: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Activity updated successfully", ctrl.reload(act.ActID))
}

// Destroy handles DELETE /api/teacher/activities/:actID (owner only).
func (ctrl *ActivityController) Destroy(c *fiber.Ctx) error {
	act, err := ctrl.findOwned(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`"actID" = ?`, act.ActID).Delete(&model.ActivitySubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where(`"actID" = ?`, act.ActID).Delete(&model.ActivityItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(act).Association("ProgrammingLanguages").Clear(); err != nil {
			return err
		}
		return tx.Delete(act).Error
	}); err != nil {
		log.Printf("[ERROR] activity delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Activity deleted successfully", nil)
}

// ShowSettings handles GET /api/teacher/activities/:actID/settings.
func (ctrl *ActivityController) ShowSettings(c *fiber.Ctx) error {
	act, err := ctrl.findActivity(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToActivitySettingsResponse(act))
}

// UpdateSettings handles PUT /api/teacher/activities/:actID/settings (owner only).
func (ctrl *ActivityController) UpdateSettings(c *fiber.Ctx) error {
	act, err := ctrl.findOwned(c)
	if err != nil {
		return err
	}

	var req dto.UpdateActivitySettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.ExamMode != nil {
		updates["examMode"] = *req.ExamMode
	}
	if req.RandomizedItems != nil {
		updates["randomizedItems"] = *req.RandomizedItems
	}
	if req.DisableReviewing != nil {
		updates["disableReviewing"] = *req.DisableReviewing
	}
	if req.HideLeaderboard != nil {
		updates["hideLeaderboard"] = *req.HideLeaderboard
	}
	if req.DelayGrading != nil {
		updates["delayGrading"] = *req.DelayGrading
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(act).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] activity settings update: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}

	if err := ctrl.DB.First(act, `"actID" = ?`, act.ActID).Error; err != nil {
		log.Printf("[ERROR] activity settings reload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonUpdated(c, "Activity settings updated", dto.ToActivitySettingsResponse(act))
}

/* ===============================
   internals
=================================*/

// validateItems rejects duplicate allocations, then checks each
// (itemID, itemTypeID) pair against the items table. Nothing is written until
// the whole payload passes.
func (ctrl *ActivityController) validateItems(c *fiber.Ctx, inputs []dto.ActivityItemInput) error {
	if dup := duplicateItemID(inputs); dup != 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"items": {"duplicate item in activity"},
		})
	}
	for _, in := range inputs {
		var item itemModel.ItemModel
		if err := ctrl.DB.First(&item, `"itemID" = ?`, in.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonValidationError(c, map[string][]string{
					"items": {"one or more items do not exist"},
				})
			}
			log.Printf("[ERROR] activity item lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		if item.ItemTypeID != in.ItemTypeID {
			return helper.JsonValidationError(c, map[string][]string{
				"items": {"itemTypeID does not match the referenced item"},
			})
		}
	}
	return nil
}

func (ctrl *ActivityController) languages(c *fiber.Ctx, ids []int64) ([]langModel.ProgrammingLanguageModel, error) {
	var langs []langModel.ProgrammingLanguageModel
	if err := ctrl.DB.Where(`"progLangID" IN ?`, ids).Find(&langs).Error; err != nil {
		log.Printf("[ERROR] language lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	seen := map[int64]struct{}{}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	if len(langs) != len(seen) {
		return nil, helper.JsonValidationError(c, map[string][]string{
			"progLangIDs": {"one or more programming languages do not exist"},
		})
	}
	return langs, nil
}

// findActivity loads :actID without an ownership requirement.
func (ctrl *ActivityController) findActivity(c *fiber.Ctx) (*model.ActivityModel, error) {
	actID, err := strconv.ParseInt(c.Params("actID"), 10, 64)
	if err != nil || actID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}
	var act model.ActivityModel
	if err := ctrl.DB.First(&act, `"actID" = ?`, actID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] activity lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &act, nil
}

// findOwned is findActivity plus the mutation guard.
func (ctrl *ActivityController) findOwned(c *fiber.Ctx) (*model.ActivityModel, error) {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	act, err := ctrl.findActivity(c)
	if err != nil {
		return nil, err
	}
	if act.TeacherID != teacherID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You do not own this activity")
	}
	return act, nil
}

func (ctrl *ActivityController) reload(actID int64) *model.ActivityModel {
	var act model.ActivityModel
	if err := ctrl.DB.
		Preload("Teacher").
		Preload("Items").
		Preload("Items.Item").
		Preload("Items.ItemType").
		Preload("ProgrammingLanguages").
		First(&act, `"actID" = ?`, actID).Error; err != nil {
		log.Printf("[ERROR] activity reload: %v", err)
		return nil
	}
	return &act
}

// duplicateItemID returns the first itemID allocated more than once, 0 if none.
func duplicateItemID(inputs []dto.ActivityItemInput) int64 {
	seen := map[int64]struct{}{}
	for _, in := range inputs {
		if _, dup := seen[in.ItemID]; dup {
			return in.ItemID
		}
		seen[in.ItemID] = struct{}{}
	}
	return 0
}

func sumPoints(items []dto.ActivityItemInput) int {
	total := 0
	for _, it := range items {
		total += it.ActItemPoints
	}
	return total
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
