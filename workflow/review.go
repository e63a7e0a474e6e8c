package workflow

import (
	"errors"
	"fmt"
	"strings"

	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/gorm"
)

// UpsertReview creates or updates the caller's review of a course and
// re-aggregates the course rating in the same unit. Reviewing requires an
// active enrollment at 100% progress.
func UpsertReview(db *gorm.DB, actor Actor, courseID uint, rating int, comment string) (*course.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, validationError("rating must be between 1 and 5")
	}
	var review course.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var crs course.Course
		if err := tx.First(&crs, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course %d", courseID)
			}
			return err
		}
		var enrollment course.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", actor.ID, courseID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return forbidden("only enrolled students can review course %d", courseID)
			}
			return err
		}
		if enrollment.Status != course.EnrollmentActive {
			return forbidden("enrollment is %s, not active", enrollment.Status)
		}
		if enrollment.Progress < 100 {
			return validationError("course must be fully completed before reviewing, progress is %d%%", enrollment.Progress)
		}

		comment = strings.TrimSpace(comment)
		err := tx.Where("user_id = ? AND course_id = ?", actor.ID, courseID).First(&review).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = course.Review{
				UserID:   actor.ID,
				CourseID: courseID,
				Rating:   rating,
				Comment:  comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			review.Rating = rating
			review.Comment = comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		}

		var agg struct {
			Count int
			Avg   float64
		}
		if err := tx.Model(&course.Review{}).Where("course_id = ?", courseID).
			Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
			Scan(&agg).Error; err != nil {
			return err
		}
		if err := tx.Model(&course.Course{}).Where("id = ?", courseID).
			Updates(map[string]any{"rating": agg.Avg, "review_count": agg.Count}).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("Course %q received a %d-star review", crs.Title, rating)
		return recordActivity(tx, models.ActivityReview, msg, ref(actor.ID), ref(courseID))
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &review, nil
}

// CourseReviews lists a course's reviews, newest first.
func CourseReviews(db *gorm.DB, courseID uint) ([]course.Review, error) {
	var reviews []course.Review
	err := db.Where("course_id = ?", courseID).Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return reviews, nil
}
