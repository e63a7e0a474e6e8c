package workflow

import (
	"errors"
	"fmt"

	"coursehub/models"
	course "coursehub/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func loadEnrollableCourse(tx *gorm.DB, courseID uint) (*course.Course, error) {
	var crs course.Course
	if err := tx.First(&crs, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("course %d", courseID)
		}
		return nil, err
	}
	// enrollment stays open while an unpublish request awaits review
	if !crs.PubliclyVisible() {
		return nil, validationError("course %d is not available for enrollment", courseID)
	}
	return &crs, nil
}

// EnrollDirect is the free/unpaid path: the enrollment is created straight
// into active and the student counter moves in the same unit. The composite
// unique index is what actually stops two concurrent enrolls for the same
// pair; the lookup before the insert only improves the error message.
func EnrollDirect(db *gorm.DB, actor Actor, courseID uint) (*course.Enrollment, error) {
	var enrollment course.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		crs, err := loadEnrollableCourse(tx, courseID)
		if err != nil {
			return err
		}
		var existing course.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", actor.ID, courseID).
			First(&existing).Error; err == nil {
			return conflict("user %d is already enrolled in course %d", actor.ID, courseID)
		}
		enrollment = course.Enrollment{
			UserID:   actor.ID,
			CourseID: courseID,
			Status:   course.EnrollmentActive,
		}
		enrollment.SetCompleted(nil)
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		if err := tx.Model(&course.Course{}).Where("id = ?", courseID).
			UpdateColumn("students", gorm.Expr("students + 1")).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("Student enrolled in %q", crs.Title)
		return recordActivity(tx, models.ActivityEnrollment, msg, ref(actor.ID), ref(courseID))
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &enrollment, nil
}

// EnrollViaPayment creates a pending enrollment paired 1:1 with a pending
// transaction, all-or-nothing. A second payment request for the same pair
// while one is outstanding hits the same uniqueness rule and is rejected.
func EnrollViaPayment(db *gorm.DB, actor Actor, courseID uint, paymentMethod, reference string) (*course.Enrollment, *course.Transaction, error) {
	var (
		enrollment course.Enrollment
		txn        course.Transaction
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		crs, err := loadEnrollableCourse(tx, courseID)
		if err != nil {
			return err
		}
		var existing course.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", actor.ID, courseID).
			First(&existing).Error; err == nil {
			return conflict("user %d already has an enrollment for course %d", actor.ID, courseID)
		}
		enrollment = course.Enrollment{
			UserID:           actor.ID,
			CourseID:         courseID,
			Status:           course.EnrollmentPending,
			PaymentReference: reference,
		}
		enrollment.SetCompleted(nil)
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		txn = course.Transaction{
			Reference:     "txn_" + uuid.NewString(),
			UserID:        actor.ID,
			CourseID:      courseID,
			Amount:        crs.Price,
			Status:        course.TransactionPending,
			PaymentMethod: paymentMethod,
			Receipt:       reference,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("Enrollment in %q requested, awaiting payment review", crs.Title)
		return recordActivity(tx, models.ActivityEnrollment, msg, ref(actor.ID), ref(courseID))
	})
	if err != nil {
		return nil, nil, wrapTxErr(err)
	}
	return &enrollment, &txn, nil
}

// ResolveEnrollment applies the admin decision to a pending enrollment, its
// paired transaction, the course student counter and the audit feed as one
// unit. The status write is conditional on the row still being pending, so of
// two concurrent resolutions exactly one wins and the other gets Conflict.
func ResolveEnrollment(db *gorm.DB, actor Actor, enrollmentID uint, approve bool) (*course.Enrollment, error) {
	if !CanResolveEnrollment(actor) {
		return nil, forbidden("only admins can resolve enrollments")
	}
	var enrollment course.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("enrollment %d", enrollmentID)
			}
			return err
		}
		target := course.EnrollmentRejected
		txnStatus := course.TransactionFailed
		if approve {
			target = course.EnrollmentActive
			txnStatus = course.TransactionCompleted
		}
		res := tx.Model(&course.Enrollment{}).
			Where("id = ? AND status = ?", enrollmentID, course.EnrollmentPending).
			Update("status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflict("enrollment %d already processed", enrollmentID)
		}
		if err := tx.Model(&course.Transaction{}).
			Where("user_id = ? AND course_id = ? AND status = ?",
				enrollment.UserID, enrollment.CourseID, course.TransactionPending).
			Update("status", txnStatus).Error; err != nil {
			return err
		}
		if approve {
			if err := tx.Model(&course.Course{}).Where("id = ?", enrollment.CourseID).
				UpdateColumn("students", gorm.Expr("students + 1")).Error; err != nil {
				return err
			}
		}
		enrollment.Status = target
		verb := "rejected"
		if approve {
			verb = "approved"
		}
		msg := fmt.Sprintf("Enrollment %d was %s", enrollmentID, verb)
		return recordActivity(tx, models.ActivityEnrollment, msg, ref(enrollment.UserID), ref(enrollment.CourseID))
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &enrollment, nil
}

// ManualEnroll lets an admin enroll a student directly, bypassing payment.
func ManualEnroll(db *gorm.DB, actor Actor, userID, courseID uint) (*course.Enrollment, error) {
	if !actor.IsAdmin() {
		return nil, forbidden("only admins can enroll students manually")
	}
	var enrollment course.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user %d", userID)
			}
			return err
		}
		var crs course.Course
		if err := tx.First(&crs, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("course %d", courseID)
			}
			return err
		}
		var existing course.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).
			First(&existing).Error; err == nil {
			return conflict("user %d is already enrolled in course %d", userID, courseID)
		}
		enrollment = course.Enrollment{
			UserID:   userID,
			CourseID: courseID,
			Status:   course.EnrollmentActive,
		}
		enrollment.SetCompleted(nil)
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		if err := tx.Model(&crs).
			UpdateColumn("students", gorm.Expr("students + 1")).Error; err != nil {
			return err
		}
		msg := fmt.Sprintf("Student %q was enrolled in %q by an admin", user.Name, crs.Title)
		return recordActivity(tx, models.ActivityEnrollment, msg, ref(userID), ref(courseID))
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &enrollment, nil
}

// Unenroll deletes an enrollment; an active one gives its seat back to the
// course counter. The paired transaction settles in the same unit: a pending
// payment can no longer be reviewed once its enrollment is gone, so it fails,
// and a completed payment for an active enrollment is refunded.
func Unenroll(db *gorm.DB, actor Actor, enrollmentID uint) error {
	if !actor.IsAdmin() {
		return forbidden("only admins can unenroll students")
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment course.Enrollment
		if err := tx.First(&enrollment, enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("enrollment %d", enrollmentID)
			}
			return err
		}
		res := tx.Where("id = ? AND status = ?", enrollmentID, enrollment.Status).
			Delete(&course.Enrollment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflict("enrollment %d changed concurrently", enrollmentID)
		}
		switch enrollment.Status {
		case course.EnrollmentPending:
			if err := settleTransaction(tx, enrollment.UserID, enrollment.CourseID,
				course.TransactionPending, course.TransactionFailed); err != nil {
				return err
			}
		case course.EnrollmentActive:
			if err := settleTransaction(tx, enrollment.UserID, enrollment.CourseID,
				course.TransactionCompleted, course.TransactionRefunded); err != nil {
				return err
			}
			if err := tx.Model(&course.Course{}).Where("id = ?", enrollment.CourseID).
				UpdateColumn("students", gorm.Expr("students - 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrapTxErr(err)
}

func settleTransaction(tx *gorm.DB, userID, courseID uint, from, to string) error {
	return tx.Model(&course.Transaction{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, from).
		Update("status", to).Error
}
