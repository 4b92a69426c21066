// file: internals/features/users/students/model/student_model.go
package model

import (
	"time"
)

// StudentModel maps the `students` table. Students and teachers are separate
// principal tables; an email lives in exactly one of them.
type StudentModel struct {
	StudentID  int64  `json:"studentID" gorm:"column:studentID;primaryKey;autoIncrement"`
	Firstname  string `json:"firstname" gorm:"column:firstname;type:varchar(255);not null"`
	Lastname   string `json:"lastname" gorm:"column:lastname;type:varchar(255);not null"`
	Email      string `json:"email" gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password   string `json:"-" gorm:"column:password;type:varchar(255);not null"`
	StudentNum string `json:"student_num" gorm:"column:student_num;type:varchar(20);not null;uniqueIndex"`
	Program    string `json:"program" gorm:"column:program;type:varchar(10);not null"`

	ProfileImage *string `json:"profileImage" gorm:"column:profileImage;type:text"`
	CoverImage   *string `json:"coverImage" gorm:"column:coverImage;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}

// Programs a student may register under.
var Programs = []string{"BSCS", "BSIT", "BSEMC", "BSIS"}
