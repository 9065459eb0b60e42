package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleDiner = "DINER"
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Phone     string         `gorm:"size:32" json:"phone,omitempty"`
	Role      string         `gorm:"size:32;default:DINER" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsElevated reports whether the user holds a staff-level role.
func IsElevated(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
