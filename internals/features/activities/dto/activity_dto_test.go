package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func validCreate() CreateActivityRequest {
	open := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return CreateActivityRequest{
		ClassID:       123456,
		ProgLangIDs:   []int64{1},
		ActTitle:      "Loops drill",
		ActDesc:       "Practice for-loops",
		ActDifficulty: "Beginner",
		ActDuration:   "01:30:00",
		OpenDate:      open,
		CloseDate:     open.Add(2 * time.Hour),
		Items:         []ActivityItemInput{{ItemID: 1, ItemTypeID: 1, ActItemPoints: 10}},
	}
}

func TestCreateActivityRequestDuration(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name     string
		duration string
		wantErr  bool
	}{
		{"typical", "01:30:00", false},
		{"midnight", "00:00:00", false},
		{"last second of the day", "23:59:59", false},
		{"24 hours", "24:00:00", true},
		{"minutes out of range", "01:60:00", true},
		{"missing seconds", "01:30", true},
		{"not a duration", "ninety minutes", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			req.ActDuration = tt.duration
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("duration %q: err = %v, wantErr %v", tt.duration, err, tt.wantErr)
			}
		})
	}
}

func TestCreateActivityRequestRequiredFields(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name   string
		mutate func(*CreateActivityRequest)
	}{
		{"missing title", func(r *CreateActivityRequest) { r.ActTitle = "" }},
		{"missing class", func(r *CreateActivityRequest) { r.ClassID = 0 }},
		{"no items", func(r *CreateActivityRequest) { r.Items = nil }},
		{"zero-point item", func(r *CreateActivityRequest) { r.Items[0].ActItemPoints = 0 }},
		{"no languages", func(r *CreateActivityRequest) { r.ProgLangIDs = nil }},
		{"unknown difficulty", func(r *CreateActivityRequest) { r.ActDifficulty = "Expert" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			if err := v.Struct(req); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}

	if err := v.Struct(validCreate()); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}
