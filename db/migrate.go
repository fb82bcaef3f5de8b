package db

import (
	"fmt"
	"log"

	"github.com/servibook/booking-platform/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.ServiceProvider{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.WeeklyAvailability{},
		&models.AvailabilityException{},
		&models.Recurrence{},
		&models.Booking{},
		&models.GroupBooking{},
		&models.GroupParticipant{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRoles()

	fmt.Println("Migrations applied successfully")
}

// seedRoles makes sure the built-in roles exist. Registration defaults new
// users to client, so at minimum that role must be present.
func seedRoles() {
	for _, name := range []string{"admin", "provider", "client"} {
		var role models.Role
		if DB.Where("name = ?", name).First(&role).RowsAffected == 0 {
			if err := DB.Create(&models.Role{Name: name}).Error; err != nil {
				log.Fatal("Failed to seed roles: ", err)
			}
		}
	}
}
