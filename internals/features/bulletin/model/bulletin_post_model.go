// file: internals/features/bulletin/model/bulletin_post_model.go
package model

import (
	"time"

	teacherModel "neudev_backend/internals/features/users/teachers/model"
)

// BulletinPostModel maps `bulletin_posts`: teacher announcements scoped to a class.
type BulletinPostModel struct {
	ID        int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ClassID   int64  `json:"classID" gorm:"column:classID;not null;index"`
	TeacherID int64  `json:"teacherID" gorm:"column:teacherID;not null;index"`
	Title     string `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Message   string `json:"message" gorm:"column:message;type:text;not null"`

	Teacher *teacherModel.TeacherModel `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:TeacherID"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (BulletinPostModel) TableName() string {
	return "bulletin_posts"
}
