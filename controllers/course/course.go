package controllers

import (
	"strings"

	"coursehub/database"
	"coursehub/middleware"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the publicly visible catalog with filters, search and
// pagination. Courses awaiting unpublish approval stay listed.
func GetAllCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedList").(*courseValidator.CourseListPayload)

	db := database.Database.Db.Model(&course.Course{}).
		Where("status IN ?", []string{course.StatusPublished, course.StatusPendingUnpublish})

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Featured {
		db = db.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(reqData.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(short_description) LIKE ?", pattern, pattern)
	}

	switch reqData.Sort {
	case "popular":
		db = db.Order("students desc")
	case "rating":
		db = db.Order("rating desc")
	case "price_asc":
		db = db.Order("price asc")
	case "price_desc":
		db = db.Order("price desc")
	default:
		db = db.Order("created_at desc")
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []course.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a single course with its curriculum. Drafts and
// courses under moderation are visible to their owner and admins only.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.GetCourse(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", crs)
}

func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reviews, err := workflow.CourseReviews(database.Database.Db, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}
