package database

import (
	"log"

	"rentaltracker-backend/internal/config"
	"rentaltracker-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Production{},
		&models.Department{},
		&models.VendorCategory{},
		&models.Vendor{},
		&models.Rental{},
		&models.Service{},
		&models.Vehicle{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("database connected, migration complete")
}
