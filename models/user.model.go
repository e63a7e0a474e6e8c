package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"default:''"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Password     string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"default:'student'"` // student, instructor, admin
	ProfileImage string     `json:"profile_image" gorm:"default:''"`
	Bio          string     `json:"bio" gorm:"type:text;default:''"`
	LastLogin    *time.Time `json:"last_login"`
}
