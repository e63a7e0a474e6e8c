package workflow

import (
	"errors"
	"math"
	"time"

	course "coursehub/models/course"

	"gorm.io/gorm"
)

// LessonIDs flattens the course's lessons in section-then-lesson order. This
// is the denominator universe for progress: ids outside it never count.
func LessonIDs(db *gorm.DB, courseID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&course.Lesson{}).
		Joins("JOIN course_sections ON course_sections.id = course_lessons.section_id").
		Where("course_lessons.course_id = ?", courseID).
		Order("course_sections.order_index asc, course_lessons.order_index asc").
		Pluck("course_lessons.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleCompletion returns a copy of the set with lessonID added or removed.
func ToggleCompletion(set map[uint]bool, lessonID uint, completed bool) map[uint]bool {
	next := make(map[uint]bool, len(set)+1)
	for id := range set {
		next[id] = true
	}
	if completed {
		next[lessonID] = true
	} else {
		delete(next, lessonID)
	}
	return next
}

// Percentage maps a completed/total pair to a rounded 0-100 value.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) * 100 / float64(total)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// UpdateLessonCompletion toggles one lesson for the caller's enrollment and
// recomputes progress from the live lesson set. The stored completion set is
// intersected with the current lessons on every write, so ids left behind by
// deleted lessons are pruned instead of skewing the percentage.
func UpdateLessonCompletion(db *gorm.DB, actor Actor, courseID, lessonID uint, completed bool) (*course.Enrollment, error) {
	var enrollment course.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND course_id = ?", actor.ID, courseID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("enrollment for course %d", courseID)
			}
			return err
		}
		if enrollment.Status != course.EnrollmentActive {
			return forbidden("enrollment is %s, not active", enrollment.Status)
		}
		ids, err := LessonIDs(tx, courseID)
		if err != nil {
			return err
		}
		valid := make(map[uint]bool, len(ids))
		for _, id := range ids {
			valid[id] = true
		}
		if !valid[lessonID] {
			return validationError("lesson %d is not part of course %d", lessonID, courseID)
		}

		set := ToggleCompletion(enrollment.CompletedSet(), lessonID, completed)
		pruned := make(map[uint]bool, len(set))
		for id := range set {
			if valid[id] {
				pruned[id] = true
			}
		}
		enrollment.SetCompleted(pruned)
		enrollment.Progress = Percentage(len(pruned), len(ids))
		now := time.Now()
		enrollment.LastAccessed = &now

		return tx.Model(&course.Enrollment{}).Where("id = ?", enrollment.ID).
			Updates(map[string]any{
				"completed_lessons": enrollment.CompletedLessons,
				"progress":          enrollment.Progress,
				"last_accessed":     enrollment.LastAccessed,
			}).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &enrollment, nil
}

// GetProgress returns the caller's enrollment with progress recomputed
// against the live lesson set, repairing the stored value if the course's
// lessons changed since the last toggle.
func GetProgress(db *gorm.DB, actor Actor, courseID uint) (*course.Enrollment, error) {
	var enrollment course.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", actor.ID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("enrollment for course %d", courseID)
		}
		return nil, wrapTxErr(err)
	}
	ids, err := LessonIDs(db, courseID)
	if err != nil {
		return nil, wrapTxErr(err)
	}
	valid := make(map[uint]bool, len(ids))
	for _, id := range ids {
		valid[id] = true
	}
	completed := 0
	for id := range enrollment.CompletedSet() {
		if valid[id] {
			completed++
		}
	}
	enrollment.Progress = Percentage(completed, len(ids))
	return &enrollment, nil
}
