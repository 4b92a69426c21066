// file: internals/features/activities/service/leaderboard.go
package service

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one student's total score for an activity.
type Entry struct {
	StudentID int64
	Firstname string
	Lastname  string
	Program   string
	Score     int
}

// RankedEntry is a leaderboard row. Rank is the 1-based position after sorting
// by score descending; ties keep distinct consecutive ranks (positional
// ranking, not competition ranking).
type RankedEntry struct {
	StudentName string `json:"studentName"`
	Program     string `json:"program"`
	Score       string `json:"averageScore"`
	Rank        int    `json:"rank"`
}

// Rank orders entries by descending score and assigns positional ranks.
// The sort is stable so equal scores keep their input order.
func Rank(entries []Entry) []RankedEntry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]RankedEntry, 0, len(sorted))
	for i, e := range sorted {
		out = append(out, RankedEntry{
			StudentName: DisplayName(e.Firstname, e.Lastname),
			Program:     programOrNA(e.Program),
			Score:       FormatScore(e.Score),
			Rank:        i + 1,
		})
	}
	return out
}

// StudentRank returns the student's 1-based position and raw score within the
// same ordering Rank uses. A student with no entry gets (nil, nil).
func StudentRank(entries []Entry, studentID int64) (*int, *int) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	for i, e := range sorted {
		if e.StudentID == studentID {
			rank := i + 1
			score := e.Score
			return &rank, &score
		}
	}
	return nil, nil
}

// DisplayName renders "LASTNAME, Firstname" for leaderboard rows.
func DisplayName(firstname, lastname string) string {
	return strings.ToUpper(lastname) + ", " + firstname
}

// FormatScore renders a score for leaderboard views, e.g. "70%".
func FormatScore(score int) string {
	return fmt.Sprintf("%d%%", score)
}

func programOrNA(p string) string {
	if strings.TrimSpace(p) == "" {
		return "N/A"
	}
	return p
}
