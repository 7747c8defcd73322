package database

import (
	"chainlearn/config"
	"chainlearn/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the embedded SQLite database, migrates the schema and seeds base data
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName+"?_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}

	// SQLite serializes writes; a single connection avoids busy errors under load
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	RunMigrations(db)
	SeedData(db)
	seedAdmin(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Track{},
		&models.Lesson{},
		&models.Quiz{},
		&models.UserProgress{},
		&models.Certificate{},
		&models.Job{},
		&models.JobApplication{},
		&models.SavedJob{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedAdmin bootstraps the first admin row from ADMIN_WALLET
func seedAdmin(db *gorm.DB) {
	wallet := config.AppConfig.AdminWallet
	if wallet == "" {
		return
	}
	admin := models.AdminUser{WalletAddress: wallet, Role: "admin"}
	if err := db.Where("wallet_address = ?", wallet).FirstOrCreate(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
	}
}
