// file: internals/features/languages/model/programming_language_model.go
package model

import "time"

// ProgrammingLanguageModel maps the `programming_languages` table.
type ProgrammingLanguageModel struct {
	ProgLangID   int64  `json:"progLangID" gorm:"column:progLangID;primaryKey;autoIncrement"`
	ProgLangName string `json:"progLangName" gorm:"column:progLangName;type:varchar(255);not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ProgrammingLanguageModel) TableName() string {
	return "programming_languages"
}
