package models

import "gorm.io/gorm"

// Category groups courses by a denormalized name. CourseCount is advisory;
// the authoritative number is always a live count of courses holding the name.
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description" gorm:"type:text;default:''"`
	CourseCount int    `json:"course_count" gorm:"default:0"`
}
