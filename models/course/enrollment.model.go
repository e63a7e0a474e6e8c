package course

import (
	"encoding/json"
	"sort"
	"time"

	"gorm.io/datatypes"
)

// Enrollment statuses
const (
	EnrollmentPending  = "pending"
	EnrollmentActive   = "active"
	EnrollmentRejected = "rejected"
)

// Enrollment tracks a student's membership in a course with progress.
// The (user_id, course_id) pair is unique at the schema level; concurrent
// duplicate enrolls are rejected by the index, not by a check-then-insert.
// No soft delete: an unenrolled student may enroll again later.
type Enrollment struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	CreatedAt        time.Time      `json:"enrolled_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	UserID           uint           `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID         uint           `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Status           string         `json:"status" gorm:"index;default:'pending'"`
	Progress         int            `json:"progress" gorm:"default:0"` // 0-100
	CompletedLessons datatypes.JSON `json:"completed_lessons"`         // JSON array of lesson ids
	PaymentReference string         `json:"payment_reference" gorm:"default:''"`
	LastAccessed     *time.Time     `json:"last_accessed"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

func (Enrollment) TableName() string { return "course_enrollments" }

// CompletedSet decodes the stored lesson id array. A broken or empty payload
// decodes to an empty set rather than an error; progress recomputation will
// repair the stored value on the next write.
func (e *Enrollment) CompletedSet() map[uint]bool {
	set := make(map[uint]bool)
	if len(e.CompletedLessons) == 0 {
		return set
	}
	var ids []uint
	if err := json.Unmarshal(e.CompletedLessons, &ids); err != nil {
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// SetCompleted stores the given lesson id set as a sorted JSON array.
func (e *Enrollment) SetCompleted(set map[uint]bool) {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	raw, _ := json.Marshal(ids)
	e.CompletedLessons = datatypes.JSON(raw)
}
