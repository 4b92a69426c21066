// file: internals/features/activities/service/window.go
package service

import (
	"time"

	"gorm.io/gorm"

	"neudev_backend/internals/features/activities/model"
)

// Clock supplies "now" so window classification is testable with fixed instants.
type Clock func() time.Time

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Classify buckets an activity window against now. The interval is closed on
// both ends: now == openDate and now == closeDate both count as ongoing.
func Classify(openDate, closeDate, now time.Time) Status {
	if now.Before(openDate) {
		return StatusUpcoming
	}
	if now.After(closeDate) {
		return StatusCompleted
	}
	return StatusOngoing
}

// SweepCompleted stamps completed_at on every activity of the class whose close
// date has passed and is not stamped yet. The null guard makes it idempotent;
// re-running with no time change is a no-op.
func SweepCompleted(db *gorm.DB, classID int64, now time.Time) (int64, error) {
	res := db.Model(&model.ActivityModel{}).
		Where(`"classID" = ? AND "closeDate" < ? AND completed_at IS NULL`, classID, now).
		Updates(map[string]interface{}{
			"completed_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

// ClearCompletionIfReopened clears completed_at when the close date moved into
// the future, so the activity re-enters the upcoming/ongoing buckets.
func ClearCompletionIfReopened(db *gorm.DB, act *model.ActivityModel, now time.Time) error {
	if act.CompletedAt == nil || !act.CloseDate.After(now) {
		return nil
	}
	act.CompletedAt = nil
	return db.Model(&model.ActivityModel{}).
		Where(`"actID" = ?`, act.ActID).
		Updates(map[string]interface{}{
			"completed_at": gorm.Expr("NULL"),
			"updated_at":   now,
		}).Error
}
