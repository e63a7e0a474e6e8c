package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.CreateCourse(database.Database.Db, actor, workflow.CourseInput{
		Title:            reqData.Title,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Price:            reqData.Price,
		Category:         reqData.Category,
		Level:            reqData.Level,
		ThumbnailURL:     reqData.ThumbnailURL,
	})
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", crs)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedCourseUpdate").(*courseValidator.CourseUpdatePayload)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.UpdateCourse(database.Database.Db, actor, courseID, workflow.CourseUpdate{
		Title:            reqData.Title,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Price:            reqData.Price,
		Category:         reqData.Category,
		Level:            reqData.Level,
		ThumbnailURL:     reqData.ThumbnailURL,
	})
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", crs)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.DeleteCourse(database.Database.Db, actor, courseID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// SubmitForReview moves a draft or rejected course into the moderation queue.
func SubmitForReview(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.SubmitCourseForReview(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted for review!", crs)
}

// RequestUnpublish asks an admin to take a published course off the catalog.
func RequestUnpublish(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	crs, err := workflow.RequestUnpublish(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unpublish request submitted!", crs)
}

func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []course.Course
	if err := database.Database.Db.
		Where("instructor_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func AddSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedSection").(*courseValidator.SectionPayload)
	actor := middleware.ActorFromCtx(c)

	section, err := workflow.AddSection(database.Database.Db, actor, courseID, reqData.Title, reqData.OrderIndex)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added successfully!", section)
}

func DeleteSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.DeleteSection(database.Database.Db, actor, courseID, sectionID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

func AddLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	reqData := c.Locals("validatedLesson").(*courseValidator.LessonPayload)
	actor := middleware.ActorFromCtx(c)

	lesson, err := workflow.AddLesson(database.Database.Db, actor, courseID, sectionID, workflow.LessonInput{
		Title:      reqData.Title,
		VideoURL:   reqData.VideoURL,
		Duration:   reqData.Duration,
		OrderIndex: reqData.OrderIndex,
	})
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)
	reqData := c.Locals("validatedLesson").(*courseValidator.LessonPayload)
	actor := middleware.ActorFromCtx(c)

	lesson, err := workflow.UpdateLesson(database.Database.Db, actor, courseID, lessonID, workflow.LessonInput{
		Title:      reqData.Title,
		VideoURL:   reqData.VideoURL,
		Duration:   reqData.Duration,
		OrderIndex: reqData.OrderIndex,
	})
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.DeleteLesson(database.Database.Db, actor, courseID, lessonID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
