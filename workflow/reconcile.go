package workflow

import (
	"log"

	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/gorm"
)

// ReconcileCounters recounts every advisory counter from its source table:
// course student counts from active enrollments, course ratings from reviews,
// category course counts from live courses. The inline increments are
// best-effort under concurrency; this sweep is the drift repair.
func ReconcileCounters(db *gorm.DB) error {
	var courses []course.Course
	if err := db.Find(&courses).Error; err != nil {
		return wrapTxErr(err)
	}
	for _, crs := range courses {
		var students int64
		if err := db.Model(&course.Enrollment{}).
			Where("course_id = ? AND status = ?", crs.ID, course.EnrollmentActive).
			Count(&students).Error; err != nil {
			return wrapTxErr(err)
		}
		var agg struct {
			Count int
			Avg   float64
		}
		if err := db.Model(&course.Review{}).Where("course_id = ?", crs.ID).
			Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
			Scan(&agg).Error; err != nil {
			return wrapTxErr(err)
		}
		if int(students) == crs.Students && agg.Count == crs.ReviewCount && agg.Avg == crs.Rating {
			continue
		}
		log.Printf("[RECONCILE] course %d: students %d->%d, reviews %d->%d",
			crs.ID, crs.Students, students, crs.ReviewCount, agg.Count)
		if err := db.Model(&course.Course{}).Where("id = ?", crs.ID).
			Updates(map[string]any{
				"students":     students,
				"rating":       agg.Avg,
				"review_count": agg.Count,
			}).Error; err != nil {
			return wrapTxErr(err)
		}
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return wrapTxErr(err)
	}
	for _, cat := range categories {
		var count int64
		if err := db.Model(&course.Course{}).Where("category = ?", cat.Name).
			Count(&count).Error; err != nil {
			return wrapTxErr(err)
		}
		if int(count) == cat.CourseCount {
			continue
		}
		log.Printf("[RECONCILE] category %q: course_count %d->%d", cat.Name, cat.CourseCount, count)
		if err := db.Model(&models.Category{}).Where("id = ?", cat.ID).
			Update("course_count", count).Error; err != nil {
			return wrapTxErr(err)
		}
	}
	return nil
}
