package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authModel "certassoc_backend/internals/features/users/auth/model"
)

// StartCleanupScheduler purges expired token_blacklist and refresh_tokens
// rows once a day (03:30). TTL for blacklist rows comes from
// TOKEN_BLACKLIST_TTL_DAYS (default 7).
func StartCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("30 3 * * *", func() {
		log.Println("[CLEANUP] purging expired auth tokens...")

		deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
		res := db.Where("expired_at < ?", deleteBefore).Delete(&authModel.TokenBlacklistModel{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] blacklist purge: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d blacklist rows removed", res.RowsAffected)
		}

		res = db.Where("expires_at < ?", time.Now()).Delete(&authModel.RefreshTokenModel{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] refresh purge: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d refresh rows removed", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] schedule: %v", err)
		return c
	}
	c.Start()
	return c
}
