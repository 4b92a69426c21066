package service

import (
	"reflect"
	"strconv"
	"testing"
)

func TestRankPositionalTies(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, Firstname: "Ana", Lastname: "Reyes", Program: "BSCS", Score: 90},
		{StudentID: 2, Firstname: "Ben", Lastname: "Cruz", Program: "BSIT", Score: 80},
		{StudentID: 3, Firstname: "Carla", Lastname: "Santos", Program: "BSCS", Score: 90},
	}

	got := Rank(entries)
	want := []RankedEntry{
		{StudentName: "REYES, Ana", Program: "BSCS", Score: "90%", Rank: 1},
		{StudentName: "SANTOS, Carla", Program: "BSCS", Score: "90%", Rank: 2},
		{StudentName: "CRUZ, Ben", Program: "BSIT", Score: "80%", Rank: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %+v, want %+v", got, want)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %+v, want empty", got)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, Lastname: "B", Score: 10},
		{StudentID: 2, Lastname: "A", Score: 20},
	}
	Rank(entries)
	if entries[0].StudentID != 1 || entries[1].StudentID != 2 {
		t.Error("Rank reordered the caller's slice")
	}
}

func TestRankMissingProgram(t *testing.T) {
	got := Rank([]Entry{{StudentID: 7, Firstname: "Dana", Lastname: "Lim", Score: 50}})
	if got[0].Program != "N/A" {
		t.Errorf("Program = %q, want %q", got[0].Program, "N/A")
	}
}

func TestStudentRank(t *testing.T) {
	entries := []Entry{
		{StudentID: 1, Score: 90},
		{StudentID: 2, Score: 80},
		{StudentID: 3, Score: 90},
	}

	tests := []struct {
		name      string
		studentID int64
		wantRank  *int
		wantScore *int
	}{
		{"first of tied pair", 1, intPtr(1), intPtr(90)},
		{"second of tied pair", 3, intPtr(2), intPtr(90)},
		{"lowest score", 2, intPtr(3), intPtr(80)},
		{"no submission", 99, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, score := StudentRank(entries, tt.studentID)
			if !intPtrEq(rank, tt.wantRank) || !intPtrEq(score, tt.wantScore) {
				t.Errorf("StudentRank(%d) = (%s, %s), want (%s, %s)",
					tt.studentID, fmtPtr(rank), fmtPtr(score), fmtPtr(tt.wantRank), fmtPtr(tt.wantScore))
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Ana", "dela Cruz"); got != "DELA CRUZ, Ana" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0%"},
		{70, "70%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func intPtr(v int) *int { return &v }

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *int) string {
	if p == nil {
		return "nil"
	}
	return strconv.Itoa(*p)
}
