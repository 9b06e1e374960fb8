package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleMerchant UserRole = "merchant"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"uniqueIndex;size:150" json:"username"`
	Email    string   `gorm:"uniqueIndex;size:255" json:"email"`
	Password string   `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	Role     UserRole `gorm:"size:32;default:user" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
