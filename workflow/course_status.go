package workflow

import (
	"errors"
	"fmt"
	"strings"

	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/gorm"
)

// courseTransitions lists the legal moderation edges per current status.
// Anything not listed fails with InvalidTransition.
var courseTransitions = map[string][]string{
	course.StatusDraft:            {course.StatusPending},
	course.StatusRejected:         {course.StatusPending},
	course.StatusPending:          {course.StatusPublished, course.StatusRejected},
	course.StatusPublished:        {course.StatusPendingUnpublish},
	course.StatusPendingUnpublish: {course.StatusPublished, course.StatusDraft},
}

func legalTransition(from, to string) bool {
	for _, t := range courseTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// TransitionCourse moves a course along one moderation edge. The precondition
// read and the status write share one transaction, and the write itself is a
// compare-and-swap on the status read earlier, so two concurrent transitions
// on the same course cannot both win.
func TransitionCourse(db *gorm.DB, actor Actor, courseID uint, target, reason string) (*course.Course, error) {
	var crs course.Course
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&crs, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course %d", courseID)
			}
			return err
		}
		if !CanTransitionCourse(actor, &crs, target) {
			return forbidden("not allowed to set course %d to %q", courseID, target)
		}
		if !legalTransition(crs.Status, target) {
			return invalidTransition("course %d is %q and cannot move to %q", courseID, crs.Status, target)
		}

		reason = strings.TrimSpace(reason)
		if target == course.StatusRejected {
			if reason == "" {
				return validationError("a rejection reason is required")
			}
		} else {
			// every transition away from rejected, or into pending, clears the reason
			reason = ""
		}

		res := tx.Model(&course.Course{}).
			Where("id = ? AND status = ?", crs.ID, crs.Status).
			Updates(map[string]any{"status": target, "rejection_reason": reason})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflict("course %d status changed concurrently", crs.ID)
		}

		if err := recordModerationActivity(tx, &crs, target, reason); err != nil {
			return err
		}
		crs.Status = target
		crs.RejectionReason = reason
		return nil
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &crs, nil
}

// recordModerationActivity maps a committed (from, to) edge to its audit tag.
// Approving an unpublish request and approving a publication share the
// course_approved tag; both rejections share course_rejected.
func recordModerationActivity(tx *gorm.DB, crs *course.Course, target, reason string) error {
	var activityType, message string
	switch {
	case crs.Status == course.StatusPending && target == course.StatusPublished:
		activityType = models.ActivityCourseApproved
		message = fmt.Sprintf("Course %q was approved and published", crs.Title)
	case crs.Status == course.StatusPending && target == course.StatusRejected:
		activityType = models.ActivityCourseRejected
		message = fmt.Sprintf("Course %q was rejected: %s", crs.Title, reason)
	case crs.Status == course.StatusPendingUnpublish && target == course.StatusDraft:
		activityType = models.ActivityCourseApproved
		message = fmt.Sprintf("Unpublish request for %q was approved", crs.Title)
	case crs.Status == course.StatusPendingUnpublish && target == course.StatusPublished:
		activityType = models.ActivityCourseRejected
		message = fmt.Sprintf("Unpublish request for %q was rejected", crs.Title)
	case target == course.StatusPending:
		activityType = models.ActivityPublish
		message = fmt.Sprintf("Course %q was submitted for review", crs.Title)
	case target == course.StatusPendingUnpublish:
		activityType = models.ActivityPublish
		message = fmt.Sprintf("Unpublish was requested for %q", crs.Title)
	default:
		return nil
	}
	return recordActivity(tx, activityType, message, ref(crs.InstructorID), ref(crs.ID))
}

// SubmitCourseForReview moves a draft or rejected course into the pending
// moderation queue.
func SubmitCourseForReview(db *gorm.DB, actor Actor, courseID uint) (*course.Course, error) {
	return TransitionCourse(db, actor, courseID, course.StatusPending, "")
}

// RequestUnpublish asks an admin to take a published course down. The course
// stays publicly visible and enrollable until the request is approved.
func RequestUnpublish(db *gorm.DB, actor Actor, courseID uint) (*course.Course, error) {
	return TransitionCourse(db, actor, courseID, course.StatusPendingUnpublish, "")
}

// ToggleFeatured flips the admin-controlled featured flag. Independent of
// moderation status; plain last-writer-wins is fine here.
func ToggleFeatured(db *gorm.DB, actor Actor, courseID uint) (*course.Course, error) {
	if !actor.IsAdmin() {
		return nil, forbidden("only admins can feature courses")
	}
	var crs course.Course
	if err := db.First(&crs, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course %d", courseID)
		}
		return nil, wrapTxErr(err)
	}
	crs.IsFeatured = !crs.IsFeatured
	if err := db.Model(&crs).Update("is_featured", crs.IsFeatured).Error; err != nil {
		return nil, wrapTxErr(err)
	}
	return &crs, nil
}
