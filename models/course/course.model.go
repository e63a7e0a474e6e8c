package course

import "gorm.io/gorm"

// Course moderation statuses
const (
	StatusDraft            = "draft"
	StatusPending          = "pending"
	StatusPublished        = "published"
	StatusPendingUnpublish = "pending_unpublish"
	StatusRejected         = "rejected"
)

// Course levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course represents a marketplace course owned by an instructor.
// Students, Rating and ReviewCount are denormalized counters kept for display;
// the reconciler recomputes them from enrollments and reviews.
type Course struct {
	gorm.Model
	InstructorID     uint    `json:"instructor_id" gorm:"index;not null"` // immutable after creation
	Title            string  `json:"title" gorm:"not null"`
	ShortDescription string  `json:"short_description" gorm:"default:''"`
	Description      string  `json:"description" gorm:"type:text;default:''"`
	Price            float64 `json:"price" gorm:"default:0"`
	Category         string  `json:"category" gorm:"index;not null"` // denormalized category name
	Level            string  `json:"level" gorm:"default:'beginner'"`
	ThumbnailURL     string  `json:"thumbnail_url" gorm:"default:''"`
	Status           string  `json:"status" gorm:"index;default:'draft'"`
	RejectionReason  string  `json:"rejection_reason" gorm:"default:''"` // set only while status is rejected
	Students         int     `json:"students" gorm:"default:0"`
	Rating           float64 `json:"rating" gorm:"default:0"`
	ReviewCount      int     `json:"review_count" gorm:"default:0"`
	IsFeatured       bool    `json:"is_featured" gorm:"default:false"`

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}

// PubliclyVisible reports whether unprivileged callers may see the course.
// Enrollment stays open while an unpublish request awaits admin review.
func (c *Course) PubliclyVisible() bool {
	return c.Status == StatusPublished || c.Status == StatusPendingUnpublish
}

// Section is an ordered group of lessons within a course.
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:SectionID"`
}

func (Section) TableName() string { return "course_sections" }

// Lesson is a single unit of course content.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	SectionID  uint   `json:"section_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	VideoURL   string `json:"video_url" gorm:"default:''"`
	Duration   int    `json:"duration" gorm:"default:0"` // minutes
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}

func (Lesson) TableName() string { return "course_lessons" }
