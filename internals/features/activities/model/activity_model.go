// file: internals/features/activities/model/activity_model.go
package model

import (
	"time"

	itemModel "neudev_backend/internals/features/items/model"
	langModel "neudev_backend/internals/features/languages/model"
	teacherModel "neudev_backend/internals/features/users/teachers/model"
)

// ActivityModel maps the `activities` table: a time-windowed assignment in a class.
// CompletedAt is written lazily the first time a listing observes closeDate in the
// past, and cleared when closeDate is edited back into the future.
type ActivityModel struct {
	ActID     int64 `json:"actID" gorm:"column:actID;primaryKey;autoIncrement"`
	ClassID   int64 `json:"classID" gorm:"column:classID;not null;index"`
	TeacherID int64 `json:"teacherID" gorm:"column:teacherID;not null;index"`

	ActTitle      string `json:"actTitle" gorm:"column:actTitle;type:varchar(255);not null"`
	ActDesc       string `json:"actDesc" gorm:"column:actDesc;type:text;not null"`
	ActDifficulty string `json:"actDifficulty" gorm:"column:actDifficulty;type:varchar(20);not null"`
	ActDuration   string `json:"actDuration" gorm:"column:actDuration;type:varchar(8);not null"` // HH:MM:SS

	OpenDate  time.Time `json:"openDate" gorm:"column:openDate;type:timestamptz;not null"`
	CloseDate time.Time `json:"closeDate" gorm:"column:closeDate;type:timestamptz;not null"`

	// Always the sum of the current activity_items point allocations.
	MaxPoints int `json:"maxPoints" gorm:"column:maxPoints;not null"`

	ClassAvgScore *float64 `json:"classAvgScore" gorm:"column:classAvgScore"`
	HighestScore  *int     `json:"highestScore" gorm:"column:highestScore"`

	// Exam-mode / anti-cheat flags.
	ExamMode         bool `json:"examMode" gorm:"column:examMode;not null;default:false"`
	RandomizedItems  bool `json:"randomizedItems" gorm:"column:randomizedItems;not null;default:false"`
	DisableReviewing bool `json:"disableReviewing" gorm:"column:disableReviewing;not null;default:false"`
	HideLeaderboard  bool `json:"hideLeaderboard" gorm:"column:hideLeaderboard;not null;default:false"`
	DelayGrading     bool `json:"delayGrading" gorm:"column:delayGrading;not null;default:false"`

	CompletedAt *time.Time `json:"completed_at" gorm:"column:completed_at"`

	Teacher              *teacherModel.TeacherModel           `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:TeacherID"`
	Items                []ActivityItemModel                  `json:"items,omitempty" gorm:"foreignKey:ActID;references:ActID"`
	ProgrammingLanguages []langModel.ProgrammingLanguageModel `json:"programmingLanguages,omitempty" gorm:"many2many:activity_programming_languages;foreignKey:ActID;joinForeignKey:actID;References:ProgLangID;joinReferences:progLangID"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityItemModel is the activity↔item join carrying the per-activity point value.
type ActivityItemModel struct {
	ActItemID     int64 `json:"actItemID" gorm:"column:actItemID;primaryKey;autoIncrement"`
	ActID         int64 `json:"actID" gorm:"column:actID;not null;uniqueIndex:uq_activity_item"`
	ItemID        int64 `json:"itemID" gorm:"column:itemID;not null;uniqueIndex:uq_activity_item"`
	ItemTypeID    int64 `json:"itemTypeID" gorm:"column:itemTypeID;not null"`
	ActItemPoints int   `json:"actItemPoints" gorm:"column:actItemPoints;not null"`

	Item     *itemModel.ItemModel     `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ItemID"`
	ItemType *itemModel.ItemTypeModel `json:"itemType,omitempty" gorm:"foreignKey:ItemTypeID;references:ItemTypeID"`
}

func (ActivityItemModel) TableName() string {
	return "activity_items"
}
