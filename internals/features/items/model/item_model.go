// file: internals/features/items/model/item_model.go
package model

import (
	"time"

	langModel "neudev_backend/internals/features/languages/model"
)

// ItemModel maps the `items` table: a reusable coding exercise.
// TeacherID == nil marks a shared/global item.
type ItemModel struct {
	ItemID     int64  `json:"itemID" gorm:"column:itemID;primaryKey;autoIncrement"`
	ItemTypeID int64  `json:"itemTypeID" gorm:"column:itemTypeID;not null;index"`
	TeacherID  *int64 `json:"teacherID" gorm:"column:teacherID;index"`

	ItemName       string `json:"itemName" gorm:"column:itemName;type:varchar(255);not null"`
	ItemDesc       string `json:"itemDesc" gorm:"column:itemDesc;type:text;not null"`
	ItemDifficulty string `json:"itemDifficulty" gorm:"column:itemDifficulty;type:varchar(20);not null"`
	ItemPoints     int    `json:"itemPoints" gorm:"column:itemPoints;not null"`

	ItemType             *ItemTypeModel                       `json:"itemType,omitempty" gorm:"foreignKey:ItemTypeID;references:ItemTypeID"`
	TestCases            []TestCaseModel                      `json:"testCases,omitempty" gorm:"foreignKey:ItemID;references:ItemID"`
	ProgrammingLanguages []langModel.ProgrammingLanguageModel `json:"programming_languages,omitempty" gorm:"many2many:item_programming_languages;foreignKey:ItemID;joinForeignKey:itemID;References:ProgLangID;joinReferences:progLangID"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ItemModel) TableName() string {
	return "items"
}

// Difficulties accepted for items and activities.
var Difficulties = []string{"Beginner", "Intermediate", "Advanced"}
