// file: internals/features/activities/dto/activity_dto.go
package dto

import (
	"time"

	"neudev_backend/internals/features/activities/model"
)

// ActivityItemInput is one (item, points) allocation in a create/update payload.
type ActivityItemInput struct {
	ItemID        int64 `json:"itemID" validate:"required"`
	ItemTypeID    int64 `json:"itemTypeID" validate:"required"`
	ActItemPoints int   `json:"actItemPoints" validate:"required,min=1"`
}

// CreateActivityRequest: maxPoints is never accepted from the client; it is
// recomputed from the item allocations.
type CreateActivityRequest struct {
	ClassID       int64               `json:"classID" validate:"required"`
	ProgLangIDs   []int64             `json:"progLangIDs" validate:"required,min=1,dive,required"`
	ActTitle      string              `json:"actTitle" validate:"required,max=255"`
	ActDesc       string              `json:"actDesc" validate:"required"`
	ActDifficulty string              `json:"actDifficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	ActDuration   string              `json:"actDuration" validate:"required,datetime=15:04:05"`
	OpenDate      time.Time           `json:"openDate" validate:"required"`
	CloseDate     time.Time           `json:"closeDate" validate:"required"`
	Items         []ActivityItemInput `json:"items" validate:"required,min=1,dive"`

	ExamMode         *bool `json:"examMode"`
	RandomizedItems  *bool `json:"randomizedItems"`
	DisableReviewing *bool `json:"disableReviewing"`
	HideLeaderboard  *bool `json:"hideLeaderboard"`
	DelayGrading     *bool `json:"delayGrading"`
}

// UpdateActivityRequest: items, when present, replace the existing allocations
// wholesale and trigger a maxPoints recompute.
type UpdateActivityRequest struct {
	ProgLangIDs   []int64             `json:"progLangIDs" validate:"omitempty,min=1,dive,required"`
	ActTitle      *string             `json:"actTitle" validate:"omitempty,max=255"`
	ActDesc       *string             `json:"actDesc" validate:"omitempty"`
	ActDifficulty *string             `json:"actDifficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	ActDuration   *string             `json:"actDuration" validate:"omitempty,datetime=15:04:05"`
	OpenDate      *time.Time          `json:"openDate" validate:"omitempty"`
	CloseDate     *time.Time          `json:"closeDate" validate:"omitempty"`
	Items         []ActivityItemInput `json:"items" validate:"omitempty,min=1,dive"`
}

// UpdateActivitySettingsRequest toggles the exam-mode flags; absent fields keep
// their current value.
type UpdateActivitySettingsRequest struct {
	ExamMode         *bool `json:"examMode"`
	RandomizedItems  *bool `json:"randomizedItems"`
	DisableReviewing *bool `json:"disableReviewing"`
	HideLeaderboard  *bool `json:"hideLeaderboard"`
	DelayGrading     *bool `json:"delayGrading"`
}

// ActivitySettingsResponse mirrors the settings GET body.
type ActivitySettingsResponse struct {
	ExamMode         bool `json:"examMode"`
	RandomizedItems  bool `json:"randomizedItems"`
	DisableReviewing bool `json:"disableReviewing"`
	HideLeaderboard  bool `json:"hideLeaderboard"`
	DelayGrading     bool `json:"delayGrading"`
}

func ToActivitySettingsResponse(m *model.ActivityModel) ActivitySettingsResponse {
	return ActivitySettingsResponse{
		ExamMode:         m.ExamMode,
		RandomizedItems:  m.RandomizedItems,
		DisableReviewing: m.DisableReviewing,
		HideLeaderboard:  m.HideLeaderboard,
		DelayGrading:     m.DelayGrading,
	}
}

// ClassActivitiesResponse buckets a class's activities by time window.
type ClassActivitiesResponse struct {
	Upcoming  []model.ActivityModel `json:"upcoming"`
	Ongoing   []model.ActivityModel `json:"ongoing"`
	Completed []model.ActivityModel `json:"completed"`
}

// StudentActivityRow is one activity in the student's bucketed listing,
// annotated with the caller's own standing.
type StudentActivityRow struct {
	model.ActivityModel
	TeacherName  string  `json:"teacherName"`
	Rank         *int    `json:"rank"`
	OverallScore *int    `json:"overallScore"`
	ScoreDisplay *string `json:"scoreDisplay"`
}

// StudentBucketsResponse is the student variant of the bucketed listing.
type StudentBucketsResponse struct {
	Upcoming  []StudentActivityRow `json:"upcoming"`
	Ongoing   []StudentActivityRow `json:"ongoing"`
	Completed []StudentActivityRow `json:"completed"`
}
