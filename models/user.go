package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	PhoneNumber  string    `json:"phone_number"`
	IsVerified   bool      `json:"is_verified"`
	RoleID       uint      `json:"role_id"`
	Role         Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Bookings     []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Favorites    []Service `json:"favorites,omitempty" gorm:"many2many:user_favorite_services;"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName joins first and last name for display and email templates.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
