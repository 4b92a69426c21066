// file: internals/features/activities/dto/submission_dto.go
package dto

import "time"

// CreateSubmissionRequest records a student's single graded attempt on one
// activity item. TimeSpent is in minutes.
type CreateSubmissionRequest struct {
	ItemID         int64  `json:"itemID" validate:"required"`
	CodeSubmission string `json:"codeSubmission" validate:"required"`
	Score          int    `json:"score" validate:"min=0"`
	TimeSpent      int    `json:"timeSpent" validate:"min=0"`
}

type SubmissionResponse struct {
	SubmissionID int64     `json:"submissionID"`
	ActID        int64     `json:"actID"`
	StudentID    int64     `json:"studentID"`
	ItemID       int64     `json:"itemID"`
	Score        int       `json:"score"`
	TimeSpent    int       `json:"timeSpent"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
