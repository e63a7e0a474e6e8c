package workflow

import (
	"errors"
	"strings"

	course "coursehub/models/course"

	"gorm.io/gorm"
)

func loadEditableCourse(tx *gorm.DB, actor Actor, courseID uint) (*course.Course, error) {
	var crs course.Course
	if err := tx.First(&crs, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course %d", courseID)
		}
		return nil, err
	}
	if !CanEditCourse(actor, &crs) {
		return nil, forbidden("not allowed to edit course %d", courseID)
	}
	return &crs, nil
}

// AddSection appends a section to the course's content tree.
func AddSection(db *gorm.DB, actor Actor, courseID uint, title string, orderIndex int) (*course.Section, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("section title is required")
	}
	var section course.Section
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEditableCourse(tx, actor, courseID); err != nil {
			return err
		}
		section = course.Section{CourseID: courseID, Title: title, OrderIndex: orderIndex}
		return tx.Create(&section).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &section, nil
}

// DeleteSection removes a section and its lessons. Progress on affected
// enrollments self-heals on the next recompute.
func DeleteSection(db *gorm.DB, actor Actor, courseID, sectionID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEditableCourse(tx, actor, courseID); err != nil {
			return err
		}
		var section course.Section
		if err := tx.Where("id = ? AND course_id = ?", sectionID, courseID).
			First(&section).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("section %d", sectionID)
			}
			return err
		}
		if err := tx.Where("section_id = ?", sectionID).Delete(&course.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
	return wrapTxErr(err)
}

// LessonInput carries authoring fields for a lesson.
type LessonInput struct {
	Title      string
	VideoURL   string
	Duration   int
	OrderIndex int
}

// AddLesson appends a lesson to a section.
func AddLesson(db *gorm.DB, actor Actor, courseID, sectionID uint, in LessonInput) (*course.Lesson, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, validationError("lesson title is required")
	}
	if in.Duration < 0 {
		return nil, validationError("duration cannot be negative")
	}
	var lesson course.Lesson
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEditableCourse(tx, actor, courseID); err != nil {
			return err
		}
		var section course.Section
		if err := tx.Where("id = ? AND course_id = ?", sectionID, courseID).
			First(&section).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("section %d", sectionID)
			}
			return err
		}
		lesson = course.Lesson{
			CourseID:   courseID,
			SectionID:  sectionID,
			Title:      in.Title,
			VideoURL:   in.VideoURL,
			Duration:   in.Duration,
			OrderIndex: in.OrderIndex,
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &lesson, nil
}

// UpdateLesson edits a lesson's fields in place.
func UpdateLesson(db *gorm.DB, actor Actor, courseID, lessonID uint, in LessonInput) (*course.Lesson, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, validationError("lesson title is required")
	}
	var lesson course.Lesson
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEditableCourse(tx, actor, courseID); err != nil {
			return err
		}
		if err := tx.Where("id = ? AND course_id = ?", lessonID, courseID).
			First(&lesson).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("lesson %d", lessonID)
			}
			return err
		}
		lesson.Title = in.Title
		lesson.VideoURL = in.VideoURL
		lesson.Duration = in.Duration
		lesson.OrderIndex = in.OrderIndex
		return tx.Save(&lesson).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &lesson, nil
}

// DeleteLesson removes one lesson. Completed-lesson sets that still hold its
// id are pruned the next time progress is recomputed.
func DeleteLesson(db *gorm.DB, actor Actor, courseID, lessonID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEditableCourse(tx, actor, courseID); err != nil {
			return err
		}
		res := tx.Where("id = ? AND course_id = ?", lessonID, courseID).Delete(&course.Lesson{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound("lesson %d", lessonID)
		}
		return nil
	})
	return wrapTxErr(err)
}
