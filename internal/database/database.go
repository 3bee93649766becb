package database

import (
	"fmt"
	"os"

	"github.com/etsiinf/carpool-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema. No foreign keys on purpose: referential
	// integrity is the handlers' job, the store stays constraint-free.
	err = db.AutoMigrate(
		&models.User{},
		&models.Trip{},
		&models.Booking{},
		&models.Message{},
		&models.Review{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
