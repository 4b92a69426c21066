// file: internals/features/users/teachers/model/teacher_model.go
package model

import (
	"time"
)

// TeacherModel maps the `teachers` table.
type TeacherModel struct {
	TeacherID int64  `json:"teacherID" gorm:"column:teacherID;primaryKey;autoIncrement"`
	Firstname string `json:"firstname" gorm:"column:firstname;type:varchar(255);not null"`
	Lastname  string `json:"lastname" gorm:"column:lastname;type:varchar(255);not null"`
	Email     string `json:"email" gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password  string `json:"-" gorm:"column:password;type:varchar(255);not null"`

	ProfileImage *string `json:"profileImage" gorm:"column:profileImage;type:text"`
	CoverImage   *string `json:"coverImage" gorm:"column:coverImage;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
