package service

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	open := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	close := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"well before open", open.Add(-24 * time.Hour), StatusUpcoming},
		{"one second before open", open.Add(-time.Second), StatusUpcoming},
		{"exactly at open", open, StatusOngoing},
		{"inside the window", open.Add(time.Hour), StatusOngoing},
		{"exactly at close", close, StatusOngoing},
		{"one second after close", close.Add(time.Second), StatusCompleted},
		{"well after close", close.Add(48 * time.Hour), StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(open, close, tt.now); got != tt.want {
				t.Errorf("Classify(now=%s) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestClassifyZeroLengthWindow(t *testing.T) {
	// open == close: the single instant is still ongoing
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Classify(at, at, at); got != StatusOngoing {
		t.Errorf("Classify at the boundary instant = %q, want %q", got, StatusOngoing)
	}
}
