package adminController

import (
	"log"
	"time"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboardStats aggregates the headline numbers for the admin console:
// totals, completed revenue by month, and student distribution by category.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalEnrollments, pendingCourses, pendingEnrollments int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Dashboard user count failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}
	if err := db.Model(&course.Course{}).Count(&totalCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}
	if err := db.Model(&course.Enrollment{}).Count(&totalEnrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}
	if err := db.Model(&course.Course{}).
		Where("status IN ?", []string{course.StatusPending, course.StatusPendingUnpublish}).
		Count(&pendingCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}
	if err := db.Model(&course.Enrollment{}).
		Where("status = ?", course.EnrollmentPending).
		Count(&pendingEnrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	var totalRevenue float64
	if err := db.Model(&course.Transaction{}).
		Where("status = ?", course.TransactionCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	// Completed revenue per month for the trailing six months.
	type monthRevenue struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
	}
	var revenueByMonth []monthRevenue
	monthStart := now.BeginningOfMonth()
	for i := 5; i >= 0; i-- {
		start := monthStart.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var revenue float64
		if err := db.Model(&course.Transaction{}).
			Where("status = ? AND created_at >= ? AND created_at < ?",
				course.TransactionCompleted, start, end).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&revenue).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
		}

		revenueByMonth = append(revenueByMonth, monthRevenue{
			Month:   start.Format("2006-01"),
			Revenue: revenue,
		})
	}

	// Active students per category.
	type categoryStudents struct {
		Category string `json:"category"`
		Students int64  `json:"students"`
	}
	var studentsByCategory []categoryStudents
	if err := db.Model(&course.Course{}).
		Select("category, COALESCE(SUM(students), 0) AS students").
		Group("category").
		Order("students desc").
		Scan(&studentsByCategory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"users":               totalUsers,
			"courses":             totalCourses,
			"enrollments":         totalEnrollments,
			"pending_courses":     pendingCourses,
			"pending_enrollments": pendingEnrollments,
			"revenue":             totalRevenue,
		},
		"revenue_by_month":     revenueByMonth,
		"students_by_category": studentsByCategory,
		"generated_at":         time.Now(),
	})
}

// GetActivityFeed returns the newest audit records, optionally filtered by
// type tags.
func GetActivityFeed(c *fiber.Ctx) error {
	reqData := c.Locals("validatedActivityList").(*courseValidator.ActivityListPayload)

	feed, err := workflow.ActivityFeed(database.Database.Db, reqData.Limit, reqData.Types...)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity feed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity feed fetched successfully!", feed)
}

// GetPublicActivity is the anonymous-readable slice of the feed: course
// publications and approvals only.
func GetPublicActivity(c *fiber.Ctx) error {
	feed, err := workflow.ActivityFeed(database.Database.Db, 20,
		models.ActivityPublish, models.ActivityCourseApproved)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity feed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity feed fetched successfully!", feed)
}

// RunReconciliation recounts the denormalized counters on demand. The same
// repair also runs nightly on a schedule.
func RunReconciliation(c *fiber.Ctx) error {
	if err := workflow.ReconcileCounters(database.Database.Db); err != nil {
		log.Printf("Reconciliation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Reconciliation failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Counters reconciled successfully!", nil)
}
