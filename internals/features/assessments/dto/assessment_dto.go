// file: internals/features/assessments/dto/assessment_dto.go
package dto

import "gorm.io/datatypes"

// CreateAssessmentRequest records one opaque execution result. The service
// stores whatever the grader client produced; nothing is evaluated here.
type CreateAssessmentRequest struct {
	ActID         int64          `json:"actID" validate:"required"`
	ItemID        *int64         `json:"itemID" validate:"omitempty"`
	ItemTypeID    *int64         `json:"itemTypeID" validate:"omitempty"`
	TestCases     *string        `json:"testCases" validate:"omitempty"`
	SubmittedCode *string        `json:"submittedCode" validate:"omitempty"`
	Result        *string        `json:"result" validate:"omitempty"`
	ExecutionTime *string        `json:"executionTime" validate:"omitempty,max=50"`
	ProgLang      *string        `json:"progLang" validate:"omitempty,max=100"`
	ExtraData     datatypes.JSON `json:"extraData" validate:"omitempty"`
}

type UpdateAssessmentRequest struct {
	TestCases     *string        `json:"testCases" validate:"omitempty"`
	SubmittedCode *string        `json:"submittedCode" validate:"omitempty"`
	Result        *string        `json:"result" validate:"omitempty"`
	ExecutionTime *string        `json:"executionTime" validate:"omitempty,max=50"`
	ProgLang      *string        `json:"progLang" validate:"omitempty,max=100"`
	ExtraData     datatypes.JSON `json:"extraData" validate:"omitempty"`
}
