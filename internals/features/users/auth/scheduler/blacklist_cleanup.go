package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "rayk_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler deletes expired blacklist rows hourly.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("token_blacklist_expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d tokens", res.RowsAffected)
			}
		}
	}()
}
