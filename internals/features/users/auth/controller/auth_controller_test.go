package controller

import (
	"testing"

	"neudev_backend/internals/configs"
)

func TestInstitutionalEmail(t *testing.T) {
	configs.EmailDomain = "neu.edu.ph"

	tests := []struct {
		email string
		want  bool
	}{
		{"ana.reyes@neu.edu.ph", true},
		{"ben_cruz+1@neu.edu.ph", true},
		{"ana@gmail.com", false},
		{"ana@neu.edu.ph.evil.com", false},
		{"@neu.edu.ph", false},
		{"ana reyes@neu.edu.ph", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := institutionalEmail(tt.email); got != tt.want {
			t.Errorf("institutionalEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestStudentNumFormat(t *testing.T) {
	tests := []struct {
		num  string
		want bool
	}{
		{"21-12345-678", true},
		{"00-00000-000", true},
		{"2-12345-678", false},
		{"21-1234-678", false},
		{"21-12345-67", false},
		{"21_12345_678", false},
		{"2112345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := studentNumRe.MatchString(tt.num); got != tt.want {
			t.Errorf("studentNumRe.MatchString(%q) = %v, want %v", tt.num, got, tt.want)
		}
	}
}
