package models

import (
	"gorm.io/gorm"
)

// ServiceProvider is the bookable professional. Availability windows and
// blackout dates are owned by the provider and managed independently;
// deleting a window never cascades to the provider itself.
type ServiceProvider struct {
	gorm.Model
	UserID          uint                   `json:"user_id" gorm:"uniqueIndex"`
	User            User                   `json:"user" gorm:"foreignKey:UserID"`
	ServiceType     string                 `json:"service_type"`
	StreetAddress   string                 `json:"street_address"`
	City            string                 `json:"city"`
	State           string                 `json:"state"`
	ZipCode         string                 `json:"zip_code"`
	Country         string                 `json:"country"`
	Rating          float64                `json:"rating" gorm:"default:0"`
	Certifications  string                 `json:"certifications"`
	ProfilePicture  string                 `json:"profile_picture"`
	ServicesOffered []Service              `json:"services_offered,omitempty" gorm:"many2many:provider_services;"`
	Availabilities  []WeeklyAvailability   `json:"availabilities,omitempty" gorm:"foreignKey:ProviderID"`
	Exceptions      []AvailabilityException `json:"exceptions,omitempty" gorm:"foreignKey:ProviderID"`
}

// OffersService reports whether the provider has the given service in its
// offerings. Used by the admission gate before any overlap test runs.
func (p *ServiceProvider) OffersService(tx *gorm.DB, serviceID uint) (bool, error) {
	var count int64
	err := tx.Table("provider_services").
		Where("service_provider_id = ? AND service_id = ?", p.ID, serviceID).
		Count(&count).Error
	return count > 0, err
}
