// file: internals/features/languages/dto/language_dto.go
package dto

type CreateProgrammingLanguageRequest struct {
	ProgLangName string `json:"progLangName" validate:"required,max=255"`
}

type UpdateProgrammingLanguageRequest struct {
	ProgLangName string `json:"progLangName" validate:"required,max=255"`
}
