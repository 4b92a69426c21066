// file: internals/features/items/model/item_type_model.go
package model

import "time"

// ItemTypeModel maps the `item_types` table (e.g. "Console App").
type ItemTypeModel struct {
	ItemTypeID   int64  `json:"itemTypeID" gorm:"column:itemTypeID;primaryKey;autoIncrement"`
	ItemTypeName string `json:"itemTypeName" gorm:"column:itemTypeName;type:varchar(255);not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ItemTypeModel) TableName() string {
	return "item_types"
}

// Test cases are mandatory for this type only.
const ItemTypeConsoleApp = "Console App"
