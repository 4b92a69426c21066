// file: internals/features/assessments/model/assessment_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentModel maps the `assessments` table: an opaque execution ledger row.
// Nothing here is evaluated by this service; result strings come from the caller.
type AssessmentModel struct {
	AssessmentID int64  `json:"assessmentID" gorm:"column:assessmentID;primaryKey;autoIncrement"`
	ActID        int64  `json:"actID" gorm:"column:actID;not null;index"`
	ItemID       *int64 `json:"itemID" gorm:"column:itemID;index"`
	ItemTypeID   *int64 `json:"itemTypeID" gorm:"column:itemTypeID"`

	TestCases     *string        `json:"testCases" gorm:"column:testCases;type:text"`
	SubmittedCode *string        `json:"submittedCode" gorm:"column:submittedCode;type:text"`
	Result        *string        `json:"result" gorm:"column:result;type:text"`
	ExecutionTime *string        `json:"executionTime" gorm:"column:executionTime;type:varchar(50)"`
	ProgLang      *string        `json:"progLang" gorm:"column:progLang;type:varchar(100)"`
	ExtraData     datatypes.JSON `json:"extraData" gorm:"column:extraData;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}
