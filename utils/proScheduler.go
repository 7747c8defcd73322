package utils

import (
	"chainlearn/database"
	"chainlearn/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeProScheduler sets up the pro-subscription expiry sweeper
func InitializeProScheduler() {
	c := cron.New()

	// Run daily at midnight to clear expired pro flags
	c.AddFunc("0 0 * * *", func() {
		ExpireProSubscriptions()
	})

	c.Start()
	log.Println("[PRO-SCHEDULER] Pro subscription sweeper started - runs daily at midnight")
}

// ExpireProSubscriptions clears the pro flag on users whose subscription has lapsed
func ExpireProSubscriptions() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("is_pro = ? AND pro_expires_at IS NOT NULL AND pro_expires_at <= ?", true, time.Now()).
		Update("is_pro", false)
	if result.Error != nil {
		log.Printf("[PRO-SCHEDULER] Error expiring pro subscriptions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PRO-SCHEDULER] Expired %d pro subscriptions", result.RowsAffected)
	}
}
