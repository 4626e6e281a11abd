package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser       UserRole = "USER"       // customer who browses and orders
	RoleRestaurant UserRole = "RESTAURANT" // restaurant owner
	RoleAdmin      UserRole = "ADMIN"      // platform administrator
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'USER'"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
