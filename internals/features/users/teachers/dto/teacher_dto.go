// file: internals/features/users/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"neudev_backend/internals/features/users/teachers/model"
	"neudev_backend/internals/helpers/storage"
)

type UpdateTeacherProfileRequest struct {
	Firstname *string `json:"firstname" form:"firstname" validate:"omitempty,max=255"`
	Lastname  *string `json:"lastname" form:"lastname" validate:"omitempty,max=255"`
	Email     *string `json:"email" form:"email" validate:"omitempty,email"`
	Password  *string `json:"password" form:"password" validate:"omitempty,min=8"`
}

type TeacherProfileResponse struct {
	TeacherID    int64     `json:"teacherID"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	ProfileImage *string   `json:"profileImage"`
	CoverImage   *string   `json:"coverImage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToTeacherProfileResponse(m *model.TeacherModel) TeacherProfileResponse {
	resp := TeacherProfileResponse{
		TeacherID: m.TeacherID,
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ProfileImage != nil {
		resp.ProfileImage = storage.PublicURL(*m.ProfileImage)
	}
	if m.CoverImage != nil {
		resp.CoverImage = storage.PublicURL(*m.CoverImage)
	}
	return resp
}
