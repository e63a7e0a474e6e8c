package adminController

import (
	"coursehub/database"
	"coursehub/middleware"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

// SetCourseStatus drives the moderation state machine: approve, reject,
// publish, and resolve unpublish requests.
func SetCourseStatus(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedStatus").(*courseValidator.CourseStatusPayload)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.TransitionCourse(database.Database.Db, actor, courseID, reqData.Status, reqData.Reason)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status updated successfully!", crs)
}

func ToggleFeatured(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.ToggleFeatured(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course featured flag updated!", crs)
}

// GetAllCourses lists courses across every status for the moderation console.
func GetAllCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedList").(*courseValidator.CourseListPayload)

	db := database.Database.Db.Model(&course.Course{})

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []course.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetModerationQueue returns courses waiting on an admin decision.
func GetModerationQueue(c *fiber.Ctx) error {
	var courses []course.Course
	if err := database.Database.Db.
		Where("status IN ?", []string{course.StatusPending, course.StatusPendingUnpublish}).
		Order("updated_at asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch moderation queue!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Moderation queue fetched successfully!", courses)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.DeleteCourse(database.Database.Db, actor, courseID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
