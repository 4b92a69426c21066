// file: internals/features/users/students/dto/student_dto.go
package dto

import (
	"time"

	"neudev_backend/internals/features/users/students/model"
	"neudev_backend/internals/helpers/storage"
)

// UpdateStudentProfileRequest carries the multipart form fields of a profile
// edit; image files travel separately as multipart parts.
type UpdateStudentProfileRequest struct {
	Firstname  *string `json:"firstname" form:"firstname" validate:"omitempty,max=255"`
	Lastname   *string `json:"lastname" form:"lastname" validate:"omitempty,max=255"`
	Email      *string `json:"email" form:"email" validate:"omitempty,email"`
	StudentNum *string `json:"student_num" form:"student_num" validate:"omitempty"`
	Program    *string `json:"program" form:"program" validate:"omitempty,oneof=BSCS BSIT BSEMC BSIS"`
	Password   *string `json:"password" form:"password" validate:"omitempty,min=8"`
}

// StudentProfileResponse exposes the profile with resolved image URLs.
type StudentProfileResponse struct {
	StudentID    int64     `json:"studentID"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	StudentNum   string    `json:"student_num"`
	Program      string    `json:"program"`
	ProfileImage *string   `json:"profileImage"`
	CoverImage   *string   `json:"coverImage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToStudentProfileResponse(m *model.StudentModel) StudentProfileResponse {
	resp := StudentProfileResponse{
		StudentID:  m.StudentID,
		Firstname:  m.Firstname,
		Lastname:   m.Lastname,
		Email:      m.Email,
		StudentNum: m.StudentNum,
		Program:    m.Program,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.ProfileImage != nil {
		resp.ProfileImage = storage.PublicURL(*m.ProfileImage)
	}
	if m.CoverImage != nil {
		resp.CoverImage = storage.PublicURL(*m.CoverImage)
	}
	return resp
}
