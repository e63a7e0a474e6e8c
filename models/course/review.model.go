package course

import "time"

// Review is a student's rating of a completed course. One review per
// (user, course); upserts update the row in place.
type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_review_user_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_review_user_course;not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text;default:''"`
}

func (Review) TableName() string { return "course_reviews" }
