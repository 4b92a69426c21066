package controller

import (
	"testing"

	"neudev_backend/internals/features/activities/dto"
)

func TestDuplicateItemID(t *testing.T) {
	tests := []struct {
		name   string
		inputs []dto.ActivityItemInput
		want   int64
	}{
		{"empty", nil, 0},
		{"single item", []dto.ActivityItemInput{{ItemID: 1}}, 0},
		{"all distinct", []dto.ActivityItemInput{{ItemID: 1}, {ItemID: 2}, {ItemID: 3}}, 0},
		{"same item twice", []dto.ActivityItemInput{{ItemID: 1}, {ItemID: 2}, {ItemID: 1}}, 1},
		{"adjacent duplicate", []dto.ActivityItemInput{{ItemID: 5}, {ItemID: 5}}, 5},
		{
			// differing points do not make the allocation distinct
			"duplicate with different points",
			[]dto.ActivityItemInput{
				{ItemID: 7, ActItemPoints: 10},
				{ItemID: 7, ActItemPoints: 20},
			},
			7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateItemID(tt.inputs); got != tt.want {
				t.Errorf("duplicateItemID = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSumPoints(t *testing.T) {
	tests := []struct {
		name  string
		items []dto.ActivityItemInput
		want  int
	}{
		{"empty", nil, 0},
		{"single", []dto.ActivityItemInput{{ItemID: 1, ActItemPoints: 10}}, 10},
		{
			"sums every allocation",
			[]dto.ActivityItemInput{
				{ItemID: 1, ActItemPoints: 10},
				{ItemID: 2, ActItemPoints: 25},
				{ItemID: 3, ActItemPoints: 5},
			},
			40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sumPoints(tt.items); got != tt.want {
				t.Errorf("sumPoints = %d, want %d", got, tt.want)
			}
		})
	}
}
