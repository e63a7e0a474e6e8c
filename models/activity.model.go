package models

import "gorm.io/gorm"

// Activity types
const (
	ActivityEnrollment     = "enrollment"
	ActivityPublish        = "publish"
	ActivitySignup         = "signup"
	ActivityReview         = "review"
	ActivityCourseCreated  = "course_created"
	ActivityCourseApproved = "course_approved"
	ActivityCourseRejected = "course_rejected"
)

// Activity is an append-only audit record of a completed domain transition.
// Rows are written by the workflow engine in the same unit as the transition
// they describe and are never updated or deleted.
type Activity struct {
	gorm.Model
	Type     string `json:"type" gorm:"index;not null"`
	Message  string `json:"message" gorm:"not null"`
	UserID   *uint  `json:"user_id" gorm:"index"`
	CourseID *uint  `json:"course_id" gorm:"index"`
}
