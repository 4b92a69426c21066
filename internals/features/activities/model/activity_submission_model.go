// file: internals/features/activities/model/activity_submission_model.go
package model

import (
	"time"

	studentModel "neudev_backend/internals/features/users/students/model"
)

// ActivitySubmissionModel maps `activity_submissions`. One attempt per
// (activity, student, item); rows are immutable once written.
type ActivitySubmissionModel struct {
	SubmissionID int64  `json:"submissionID" gorm:"column:submissionID;primaryKey;autoIncrement"`
	ActID        int64  `json:"actID" gorm:"column:actID;not null;uniqueIndex:uq_act_student_item"`
	StudentID    int64  `json:"studentID" gorm:"column:studentID;not null;uniqueIndex:uq_act_student_item"`
	ItemID       *int64 `json:"itemID" gorm:"column:itemID;uniqueIndex:uq_act_student_item"`

	CodeSubmission string `json:"codeSubmission" gorm:"column:codeSubmission;type:text"`
	Score          int    `json:"score" gorm:"column:score;not null"`
	// Legacy column; rank is recomputed on every read and never served from here.
	Rank        *int      `json:"rank" gorm:"column:rank"`
	TimeSpent   int       `json:"timeSpent" gorm:"column:timeSpent;not null"` // minutes
	SubmittedAt time.Time `json:"submitted_at" gorm:"column:submitted_at;not null;autoCreateTime"`

	Student *studentModel.StudentModel `json:"student,omitempty" gorm:"foreignKey:StudentID;references:StudentID"`
}

func (ActivitySubmissionModel) TableName() string {
	return "activity_submissions"
}
