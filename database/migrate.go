package database

import (
	"movesched-backend/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entities, wiring the explicit
// crew-membership join model first.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Crew{}, "Members", &models.CrewMembership{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.CrewMember{},
		&models.Crew{},
		&models.Appointment{},
	)
}
