package database

import (
	"fmt"
	"log"

	"booking_console/config"
	"booking_console/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB stays nil when no database is configured; the console then runs
// stateless and the audit trail is skipped.
var DB *gorm.DB

func ConnectDB() {
	host := config.Config("DB_HOST")
	if host == "" {
		log.Println("DB_HOST not set, running without audit storage")
		return
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		config.ConfigOr("DB_PORT", "5432"),
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("failed to connect audit database: %v", err)
		DB = nil
		return
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(&model.AuditEntry{})
	fmt.Println("Database Migrated")
}

// RecordAudit inserts one action record, best effort.
func RecordAudit(action, eventID string, success bool, message string) {
	if DB == nil {
		return
	}
	entry := model.AuditEntry{
		Action:  action,
		EventID: eventID,
		Success: success,
		Message: message,
	}
	if err := DB.Create(&entry).Error; err != nil {
		log.Printf("audit insert failed: %v", err)
	}
}

// RecentAudit returns the latest entries, newest first.
func RecentAudit(limit int) ([]model.AuditEntry, error) {
	if DB == nil {
		return []model.AuditEntry{}, nil
	}
	var entries []model.AuditEntry
	err := DB.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
