// file: internals/features/items/dto/item_dto.go
package dto

// TestCaseInput is one test case in an item create/update payload. The whole
// set is replaced wholesale on update.
type TestCaseInput struct {
	InputData      string `json:"inputData"`
	ExpectedOutput string `json:"expectedOutput" validate:"required"`
	TestCasePoints int    `json:"testCasePoints" validate:"min=0"`
	IsHidden       bool   `json:"isHidden"`
}

// CreateItemRequest: console-app items must ship at least one test case; that
// rule lives in the controller because it depends on the item type row.
type CreateItemRequest struct {
	ItemTypeID     int64           `json:"itemTypeID" validate:"required"`
	ProgLangIDs    []int64         `json:"progLangIDs" validate:"required,min=1,dive,required"`
	ItemName       string          `json:"itemName" validate:"required,max=255"`
	ItemDesc       string          `json:"itemDesc" validate:"required"`
	ItemDifficulty string          `json:"itemDifficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	ItemPoints     int             `json:"itemPoints" validate:"required,min=1"`
	TestCases      []TestCaseInput `json:"testCases" validate:"omitempty,dive"`
}

type UpdateItemRequest struct {
	ItemTypeID     *int64          `json:"itemTypeID" validate:"omitempty"`
	ProgLangIDs    []int64         `json:"progLangIDs" validate:"omitempty,min=1,dive,required"`
	ItemName       *string         `json:"itemName" validate:"omitempty,max=255"`
	ItemDesc       *string         `json:"itemDesc" validate:"omitempty"`
	ItemDifficulty *string         `json:"itemDifficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	ItemPoints     *int            `json:"itemPoints" validate:"omitempty,min=1"`
	TestCases      []TestCaseInput `json:"testCases" validate:"omitempty,dive"`
}
