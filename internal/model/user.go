package model

import "time"

// User roles. Admin has full access; staff cannot delete vehicles or
// sales and cannot edit sales.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User stores system users with role-based access.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(10);not null;default:'staff'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
