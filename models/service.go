package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
}

// Service is a bookable offering. Prices are stored as numeric columns and
// handled with decimals end to end; float arithmetic never touches money.
type Service struct {
	gorm.Model
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CategoryID  *uint            `json:"category_id"`
	Category    *ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	BasePrice   decimal.Decimal  `json:"base_price" gorm:"type:numeric(10,2)"`
	UnitPrice   decimal.Decimal  `json:"unit_price" gorm:"type:numeric(10,2)"` // per hour
	Duration    time.Duration    `json:"duration"`
	BufferTime  time.Duration    `json:"buffer_time"` // enforced before and after every booking
	IsActive    bool             `json:"is_active" gorm:"default:true"`
	Providers   []ServiceProvider `json:"providers,omitempty" gorm:"many2many:provider_services;"`
}

// BeforeSave rejects services that would make pricing or conflict detection
// meaningless: negative money, non-positive duration, negative buffer.
func (s *Service) BeforeSave(tx *gorm.DB) error {
	if s.BasePrice.IsNegative() {
		return fmt.Errorf("base_price must not be negative")
	}
	if s.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price must not be negative")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if s.BufferTime < 0 {
		return fmt.Errorf("buffer_time must not be negative")
	}
	return nil
}
