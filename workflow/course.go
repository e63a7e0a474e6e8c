package workflow

import (
	"errors"
	"fmt"
	"strings"

	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/gorm"
)

// CourseInput carries the authoring fields for a new course.
type CourseInput struct {
	Title            string
	ShortDescription string
	Description      string
	Price            float64
	Category         string
	Level            string
	ThumbnailURL     string
}

func validLevel(level string) bool {
	return level == course.LevelBeginner || level == course.LevelIntermediate || level == course.LevelAdvanced
}

// CreateCourse creates a draft course owned by the acting instructor and bumps
// the category counter in the same unit.
func CreateCourse(db *gorm.DB, actor Actor, in CourseInput) (*course.Course, error) {
	if !actor.IsInstructor() && !actor.IsAdmin() {
		return nil, forbidden("only instructors can create courses")
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, validationError("title is required")
	}
	if in.Price < 0 {
		return nil, validationError("price cannot be negative")
	}
	if in.Level == "" {
		in.Level = course.LevelBeginner
	}
	if !validLevel(in.Level) {
		return nil, validationError("unknown level %q", in.Level)
	}

	crs := course.Course{
		InstructorID:     actor.ID,
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Price:            in.Price,
		Category:         in.Category,
		Level:            in.Level,
		ThumbnailURL:     in.ThumbnailURL,
		Status:           course.StatusDraft,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.Where("name = ?", in.Category).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("category %q", in.Category)
			}
			return err
		}
		if err := tx.Create(&crs).Error; err != nil {
			return err
		}
		if err := tx.Model(&cat).UpdateColumn("course_count", gorm.Expr("course_count + 1")).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("Course %q was created", crs.Title)
		return recordActivity(tx, models.ActivityCourseCreated, msg, ref(actor.ID), ref(crs.ID))
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &crs, nil
}

// CourseUpdate carries partial content edits; nil fields are left alone.
// The owning instructor id and the moderation status are not editable here.
type CourseUpdate struct {
	Title            *string
	ShortDescription *string
	Description      *string
	Price            *float64
	Category         *string
	Level            *string
	ThumbnailURL     *string
}

// UpdateCourse applies content edits by the owner or an admin. A category
// change moves the course between category counters in the same unit.
func UpdateCourse(db *gorm.DB, actor Actor, courseID uint, in CourseUpdate) (*course.Course, error) {
	var crs course.Course
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&crs, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course %d", courseID)
			}
			return err
		}
		if !CanEditCourse(actor, &crs) {
			return forbidden("not allowed to edit course %d", courseID)
		}
		if in.Price != nil && *in.Price < 0 {
			return validationError("price cannot be negative")
		}
		if in.Level != nil && !validLevel(*in.Level) {
			return validationError("unknown level %q", *in.Level)
		}
		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title == "" {
				return validationError("title is required")
			}
			crs.Title = title
		}
		if in.ShortDescription != nil {
			crs.ShortDescription = *in.ShortDescription
		}
		if in.Description != nil {
			crs.Description = *in.Description
		}
		if in.Price != nil {
			crs.Price = *in.Price
		}
		if in.Level != nil {
			crs.Level = *in.Level
		}
		if in.ThumbnailURL != nil {
			crs.ThumbnailURL = *in.ThumbnailURL
		}
		if in.Category != nil && *in.Category != crs.Category {
			var next models.Category
			if err := tx.Where("name = ?", *in.Category).First(&next).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("category %q", *in.Category)
				}
				return err
			}
			if err := tx.Model(&models.Category{}).Where("name = ?", crs.Category).
				UpdateColumn("course_count", gorm.Expr("course_count - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&next).
				UpdateColumn("course_count", gorm.Expr("course_count + 1")).Error; err != nil {
				return err
			}
			crs.Category = *in.Category
		}
		return tx.Save(&crs).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &crs, nil
}

// DeleteCourse removes a course and cascades its content tree, enrollments and
// reviews; the category counter is decremented in the same unit. Transactions
// are a payment ledger and are kept, but pending ones settle as failed because
// no enrollment remains to resolve them through.
func DeleteCourse(db *gorm.DB, actor Actor, courseID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var crs course.Course
		if err := tx.First(&crs, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course %d", courseID)
			}
			return err
		}
		if !CanEditCourse(actor, &crs) {
			return forbidden("not allowed to delete course %d", courseID)
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&course.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&course.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&course.Transaction{}).
			Where("course_id = ? AND status = ?", courseID, course.TransactionPending).
			Update("status", course.TransactionFailed).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&course.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&course.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("name = ?", crs.Category).
			UpdateColumn("course_count", gorm.Expr("course_count - 1")).Error; err != nil {
			return err
		}
		return tx.Delete(&crs).Error
	})
	return wrapTxErr(err)
}

// GetCourse loads a course with its ordered content tree, honoring the
// visibility rules for the acting caller.
func GetCourse(db *gorm.DB, actor Actor, courseID uint) (*course.Course, error) {
	var crs course.Course
	err := db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		First(&crs, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course %d", courseID)
		}
		return nil, wrapTxErr(err)
	}
	if !CanViewCourse(actor, &crs) {
		return nil, forbidden("course %d is not visible", courseID)
	}
	return &crs, nil
}
