package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonCompletion toggles a lesson in the caller's completion set and
// returns the enrollment with its recomputed progress.
func MarkLessonCompletion(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedCompletion").(*courseValidator.LessonCompletionPayload)
	actor := middleware.ActorFromCtx(c)

	enrollment, err := workflow.UpdateLessonCompletion(
		database.Database.Db, actor, courseID, reqData.LessonID, *reqData.Completed)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

func GetMyProgress(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	enrollment, err := workflow.GetProgress(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", enrollment)
}

// SubmitReview creates or replaces the caller's review for a completed course.
func SubmitReview(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedReview").(*courseValidator.ReviewPayload)
	actor := middleware.ActorFromCtx(c)

	review, err := workflow.UpsertReview(
		database.Database.Db, actor, courseID, reqData.Rating, reqData.Comment)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}
