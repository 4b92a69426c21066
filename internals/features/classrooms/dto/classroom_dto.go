// file: internals/features/classrooms/dto/classroom_dto.go
package dto

import (
	"neudev_backend/internals/features/classrooms/model"
	studentModel "neudev_backend/internals/features/users/students/model"
)

type CreateClassroomRequest struct {
	ClassName    string `json:"className" validate:"required,max=255"`
	ClassSection string `json:"classSection" validate:"omitempty,max=255"`
}

type UpdateClassroomRequest struct {
	ClassName    *string `json:"className" validate:"omitempty,max=255"`
	ClassSection *string `json:"classSection" validate:"omitempty,max=255"`
}

type EnrollRequest struct {
	ClassID int64 `json:"classID" validate:"required"`
}

// ClassroomResponse is the common listing/detail shape for both roles.
type ClassroomResponse struct {
	ClassID      int64   `json:"classID"`
	ClassName    string  `json:"className"`
	ClassSection string  `json:"classSection"`
	TeacherID    int64   `json:"teacherID"`
	TeacherName  *string `json:"teacherName,omitempty"`
	StudentCount *int64  `json:"studentCount,omitempty"`
}

func ToClassroomResponse(m *model.ClassroomModel) ClassroomResponse {
	resp := ClassroomResponse{
		ClassID:      m.ClassID,
		ClassName:    m.ClassName,
		ClassSection: m.ClassSection,
		TeacherID:    m.TeacherID,
	}
	if m.Teacher != nil {
		name := m.Teacher.Firstname + " " + m.Teacher.Lastname
		resp.TeacherName = &name
	}
	return resp
}

// ClassStudentRow is one enrolled student in the teacher's roster view.
type ClassStudentRow struct {
	StudentID  int64  `json:"studentID"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	StudentNum string `json:"student_num"`
	Program    string `json:"program"`
}

func ToClassStudentRow(m *studentModel.StudentModel) ClassStudentRow {
	return ClassStudentRow{
		StudentID:  m.StudentID,
		Firstname:  m.Firstname,
		Lastname:   m.Lastname,
		StudentNum: m.StudentNum,
		Program:    m.Program,
	}
}
