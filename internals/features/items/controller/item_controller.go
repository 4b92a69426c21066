// file: internals/features/items/controller/item_controller.go
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
	"neudev_backend/internals/features/items/dto"
	"neudev_backend/internals/features/items/model"
	langModel "neudev_backend/internals/features/languages/model"

	helper "neudev_backend/internals/helpers"
)

type ItemController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db, Validator: validator.New()}
}

// ItemTypes handles GET /api/teacher/itemTypes.
func (ctrl *ItemController) ItemTypes(c *fiber.Ctx) error {
	var types []model.ItemTypeModel
	if err := ctrl.DB.Order(`"itemTypeID" ASC`).Find(&types).Error; err != nil {
		log.Printf("[ERROR] item type list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonList(c, "ok", types, nil)
}

// IndexByItemType handles GET /api/teacher/items/itemType/:itemTypeID.
// Optional query filters: progLangID, scope (personal|global), teacherID.
func (ctrl *ItemController) IndexByItemType(c *fiber.Ctx) error {
	callerID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	itemTypeID, err := strconv.ParseInt(c.Params("itemTypeID"), 10, 64)
	if err != nil || itemTypeID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item type id")
	}

	q := ctrl.DB.
		Preload("ItemType").
		Preload("TestCases").
		Preload("ProgrammingLanguages").
		Where(`items."itemTypeID" = ?`, itemTypeID)

	if raw := c.Query("progLangID"); raw != "" {
		progLangID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || progLangID <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid progLangID filter")
		}
		q = q.Joins(`JOIN item_programming_languages ipl ON ipl."itemID" = items."itemID"`).
			Where(`ipl."progLangID" = ?`, progLangID)
	}

	switch c.Query("scope") {
	case "personal":
		teacherID := callerID
		if raw := c.Query("teacherID"); raw != "" {
			tid, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil || tid <= 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacherID filter")
			}
			teacherID = tid
		}
		q = q.Where(`items."teacherID" = ?`, teacherID)
	case "global":
		q = q.Where(`items."teacherID" IS NULL`)
	case "":
		// no scope filter: personal + global
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "scope must be personal or global")
	}

	var items []model.ItemModel
	if err := q.Order(`items."itemName" ASC`).Find(&items).Error; err != nil {
		log.Printf("[ERROR] item list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonList(c, "ok", items, nil)
}

// Store handles POST /api/teacher/items. Item, test cases and language links are
// written in one transaction; console-app items must ship test cases.
func (ctrl *ItemController) Store(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	itemType, err := ctrl.itemType(c, req.ItemTypeID)
	if err != nil {
		return err
	}
	if itemType.ItemTypeName == model.ItemTypeConsoleApp && len(req.TestCases) == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"testCases": {"console app items require at least one test case"},
		})
	}

	langs, err := ctrl.languages(c, req.ProgLangIDs)
	if err != nil {
		return err
	}

	item := model.ItemModel{
		ItemTypeID:     req.ItemTypeID,
		TeacherID:      &teacherID,
		ItemName:       req.ItemName,
		ItemDesc:       req.ItemDesc,
		ItemDifficulty: req.ItemDifficulty,
		ItemPoints:     req.ItemPoints,
	}
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		for _, tc := range req.TestCases {
			row := model.TestCaseModel{
				ItemID:         item.ItemID,
				InputData:      tc.InputData,
				ExpectedOutput: tc.ExpectedOutput,
				TestCasePoints: tc.TestCasePoints,
				IsHidden:       tc.IsHidden,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return tx.Model(&item).Association("ProgrammingLanguages").Replace(langs)
	}); err != nil {
		log.Printf("[ERROR] item create: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Item created successfully", ctrl.reload(item.ItemID))
}

// Show handles GET /api/teacher/items/:itemID.
func (ctrl *ItemController) Show(c *fiber.Ctx) error {
	item, err := ctrl.findVisible(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", item)
}

// Update handles PUT /api/teacher/items/:itemID (creator only). Supplied test
// cases replace the existing set wholesale; supplied languages are synced.
func (ctrl *ItemController) Update(c *fiber.Ctx) error {
	item, err := ctrl.findOwned(c)
	if err != nil {
		return err
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	itemTypeID := item.ItemTypeID
	if req.ItemTypeID != nil {
		itemTypeID = *req.ItemTypeID
	}
	itemType, err := ctrl.itemType(c, itemTypeID)
	if err != nil {
		return err
	}
	if itemType.ItemTypeName == model.ItemTypeConsoleApp && req.TestCases != nil && len(req.TestCases) == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"testCases": {"console app items require at least one test case"},
		})
	}

	var langs []langModel.ProgrammingLanguageModel
	if req.ProgLangIDs != nil {
		langs, err = ctrl.languages(c, req.ProgLangIDs)
		if err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if req.ItemTypeID != nil {
		updates["itemTypeID"] = *req.ItemTypeID
	}
	if req.ItemName != nil {
		updates["itemName"] = *req.ItemName
	}
	if req.ItemDesc != nil {
		updates["itemDesc"] = *req.ItemDesc
	}
	if req.ItemDifficulty != nil {
		updates["itemDifficulty"] = *req.ItemDifficulty
	}
	if req.ItemPoints != nil {
		updates["itemPoints"] = *req.ItemPoints
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(item).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.TestCases != nil {
			if err := tx.Where(`"itemID" = ?`, item.ItemID).Delete(&model.TestCaseModel{}).Error; err != nil {
				return err
			}
			for _, tc := range req.TestCases {
				row := model.TestCaseModel{
					ItemID:         item.ItemID,
					InputData:      tc.InputData,
					ExpectedOutput: tc.ExpectedOutput,
					TestCasePoints: tc.TestCasePoints,
					IsHidden:       tc.IsHidden,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if req.ProgLangIDs != nil {
			if err := tx.Model(item).Association("ProgrammingLanguages").Replace(langs); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Printf("[ERROR] item update: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Item updated successfully", ctrl.reload(item.ItemID))
}

// Destroy handles DELETE /api/teacher/items/:itemID (creator only). An item
// referenced by any activity cannot be deleted.
func (ctrl *ItemController) Destroy(c *fiber.Ctx) error {
	item, err := ctrl.findOwned(c)
	if err != nil {
		return err
	}

	var refs int64
	if err := ctrl.DB.Model(&activityModel.ActivityItemModel{}).
		Where(`"itemID" = ?`, item.ItemID).
		Count(&refs).Error; err != nil {
		log.Printf("[ERROR] item reference count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Item is used by an activity and cannot be deleted")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`"itemID" = ?`, item.ItemID).Delete(&model.TestCaseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(item).Association("ProgrammingLanguages").Clear(); err != nil {
			return err
		}
		return tx.Delete(item).Error
	}); err != nil {
		log.Printf("[ERROR] item delete: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return helper.JsonDeleted(c, "Item deleted successfully", nil)
}

/* ===============================
   internals
=================================*/

func (ctrl *ItemController) itemType(c *fiber.Ctx, id int64) (*model.ItemTypeModel, error) {
	var itemType model.ItemTypeModel
	if err := ctrl.DB.First(&itemType, `"itemTypeID" = ?`, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonValidationError(c, map[string][]string{
				"itemTypeID": {"unknown item type"},
			})
		}
		log.Printf("[ERROR] item type lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &itemType, nil
}

// languages resolves progLangIDs and 422s when any id is unknown.
func (ctrl *ItemController) languages(c *fiber.Ctx, ids []int64) ([]langModel.ProgrammingLanguageModel, error) {
	var langs []langModel.ProgrammingLanguageModel
	if err := ctrl.DB.Where(`"progLangID" IN ?`, ids).Find(&langs).Error; err != nil {
		log.Printf("[ERROR] language lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if len(langs) != len(uniqueIDs(ids)) {
		return nil, helper.JsonValidationError(c, map[string][]string{
			"progLangIDs": {"one or more programming languages do not exist"},
		})
	}
	return langs, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := map[int64]struct{}{}
	out := ids[:0:0]
	for _, id := range ids {
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// findVisible loads an item the caller may read: their own or a global one.
func (ctrl *ItemController) findVisible(c *fiber.Ctx) (*model.ItemModel, error) {
	callerID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	item, err := ctrl.load(c)
	if err != nil {
		return nil, err
	}
	if item.TeacherID != nil && *item.TeacherID != callerID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You do not own this item")
	}
	return item, nil
}

// findOwned loads an item for mutation: global items are read-only.
func (ctrl *ItemController) findOwned(c *fiber.Ctx) (*model.ItemModel, error) {
	callerID, ok := authMw.UserID(c)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	item, err := ctrl.load(c)
	if err != nil {
		return nil, err
	}
	if item.TeacherID == nil || *item.TeacherID != callerID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You do not own this item")
	}
	return item, nil
}

func (ctrl *ItemController) load(c *fiber.Ctx) (*model.ItemModel, error) {
	itemID, err := strconv.ParseInt(c.Params("itemID"), 10, 64)
	if err != nil || itemID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}
	var item model.ItemModel
	if err := ctrl.DB.
		Preload("ItemType").
		Preload("TestCases").
		Preload("ProgrammingLanguages").
		First(&item, `"itemID" = ?`, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		log.Printf("[ERROR] item lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &item, nil
}

// reload returns the item with fresh associations for response bodies; nil on error.
func (ctrl *ItemController) reload(itemID int64) *model.ItemModel {
	var item model.ItemModel
	if err := ctrl.DB.
		Preload("ItemType").
		Preload("TestCases").
		Preload("ProgrammingLanguages").
		First(&item, `"itemID" = ?`, itemID).Error; err != nil {
		log.Printf("[ERROR] item reload: %v", err)
		return nil
	}
	return &item
}
