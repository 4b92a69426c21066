// file: internals/features/classrooms/model/classroom_model.go
package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	studentModel "neudev_backend/internals/features/users/students/model"
	teacherModel "neudev_backend/internals/features/users/teachers/model"
)

const (
	classIDMin = 100000
	classIDMax = 999999
	// collision retries before giving up; the keyspace is 900k ids
	classIDMaxAttempts = 25
)

// ClassroomModel maps the `classes` table. The primary key is a random 6-digit
// code handed out to students for enrollment, not an auto-increment.
type ClassroomModel struct {
	ClassID      int64  `json:"classID" gorm:"column:classID;primaryKey;autoIncrement:false"`
	ClassName    string `json:"className" gorm:"column:className;type:varchar(255);not null"`
	ClassSection string `json:"classSection" gorm:"column:classSection;type:varchar(255)"`
	TeacherID    int64  `json:"teacherID" gorm:"column:teacherID;not null;index"`

	Teacher  *teacherModel.TeacherModel  `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:TeacherID"`
	Students []studentModel.StudentModel `json:"students,omitempty" gorm:"many2many:class_student;foreignKey:ClassID;joinForeignKey:classID;References:StudentID;joinReferences:studentID"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ClassroomModel) TableName() string {
	return "classes"
}

// BeforeCreate assigns a collision-checked random 6-digit classID.
func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID != 0 {
		return nil
	}
	for i := 0; i < classIDMaxAttempts; i++ {
		id, err := RandomClassID()
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&ClassroomModel{}).Where(`"classID" = ?`, id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			m.ClassID = id
			return nil
		}
	}
	return fmt.Errorf("could not allocate a class id after %d attempts", classIDMaxAttempts)
}

// RandomClassID draws a random id in [100000, 999999].
func RandomClassID() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(classIDMax-classIDMin+1))
	if err != nil {
		return 0, err
	}
	return classIDMin + n.Int64(), nil
}

// ClassStudentModel is the enrollment join row; the (classID, studentID) pair is unique.
type ClassStudentModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ClassID   int64     `json:"classID" gorm:"column:classID;not null;uniqueIndex:uq_class_student"`
	StudentID int64     `json:"studentID" gorm:"column:studentID;not null;uniqueIndex:uq_class_student"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}

func (ClassStudentModel) TableName() string {
	return "class_student"
}
