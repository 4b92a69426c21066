// file: internals/features/items/model/test_case_model.go
package model

// TestCaseModel maps the `test_cases` table. Rows belong to exactly one item and
// are replaced wholesale whenever the item's test cases are edited.
type TestCaseModel struct {
	TestCaseID     int64  `json:"testCaseID" gorm:"column:testCaseID;primaryKey;autoIncrement"`
	ItemID         int64  `json:"itemID" gorm:"column:itemID;not null;index"`
	InputData      string `json:"inputData" gorm:"column:inputData;type:text"`
	ExpectedOutput string `json:"expectedOutput" gorm:"column:expectedOutput;type:text;not null"`
	TestCasePoints int    `json:"testCasePoints" gorm:"column:testCasePoints;not null"`
	IsHidden       bool   `json:"isHidden" gorm:"column:isHidden;not null;default:false"`
}

func (TestCaseModel) TableName() string {
	return "test_cases"
}
