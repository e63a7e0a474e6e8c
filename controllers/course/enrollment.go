package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse grants immediate active access to the course.
func EnrollInCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	actor := middleware.ActorFromCtx(c)

	enrollment, err := workflow.EnrollDirect(database.Database.Db, actor, courseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// EnrollWithPayment opens a pending enrollment paired with a pending
// transaction; an admin resolves both later.
func EnrollWithPayment(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedPayment").(*courseValidator.PaymentEnrollPayload)
	actor := middleware.ActorFromCtx(c)

	enrollment, transaction, err := workflow.EnrollViaPayment(
		database.Database.Db, actor, courseID, reqData.PaymentMethod, reqData.Reference)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	response := map[string]interface{}{
		"enrollment":  enrollment,
		"transaction": transaction,
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment submitted for payment verification!", response)
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []course.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func GetMyTransactions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var transactions []course.Transaction
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", transactions)
}
