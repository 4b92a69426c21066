// file: internals/features/users/auth/scheduler/token_blacklist_scheduler.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "neudev_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler launches a background loop that hard-deletes
// blacklist rows whose tokens have expired anyway. Runs hourly.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		// first pass right away so restarts don't leave stale rows for an hour
		cleanupExpiredTokens(db)
		for range ticker.C {
			cleanupExpiredTokens(db)
		}
	}()
}

func cleanupExpiredTokens(db *gorm.DB) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[ERROR] token blacklist cleanup: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("🧹 token blacklist cleanup: removed %d expired rows", res.RowsAffected)
	}
}
