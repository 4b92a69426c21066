// file: internals/features/bulletin/dto/bulletin_dto.go
package dto

type CreateBulletinPostRequest struct {
	ClassID int64  `json:"classID" validate:"required"`
	Title   string `json:"title" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}
