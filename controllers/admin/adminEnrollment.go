package adminController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	course "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

type enrollmentWithUser struct {
	course.Enrollment
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// GetEnrollments lists enrollments for review, newest first, with the
// enrolled user's details attached.
func GetEnrollments(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&course.Enrollment{})

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var enrollments []course.Enrollment
	if err := db.Preload("Course").Order("created_at desc").Limit(200).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	userIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		userIDs = append(userIDs, e.UserID)
	}
	var users []models.User
	if len(userIDs) > 0 {
		if err := database.Database.Db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
	}
	usersByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	result := make([]enrollmentWithUser, len(enrollments))
	for i, e := range enrollments {
		user := usersByID[e.UserID]
		result[i] = enrollmentWithUser{Enrollment: e, UserName: user.Name, UserEmail: user.Email}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// ResolveEnrollment approves or rejects a pending payment enrollment exactly
// once; the paired transaction settles in the same unit.
func ResolveEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)
	reqData := c.Locals("validatedResolve").(*courseValidator.ResolveEnrollmentPayload)
	actor := middleware.ActorFromCtx(c)

	enrollment, err := workflow.ResolveEnrollment(
		database.Database.Db, actor, enrollmentID, reqData.Action == "approve")
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment resolved successfully!", enrollment)
}

func ManualEnroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedManualEnroll").(*courseValidator.ManualEnrollPayload)
	actor := middleware.ActorFromCtx(c)

	enrollment, err := workflow.ManualEnroll(database.Database.Db, actor, reqData.UserID, reqData.CourseID)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User enrolled successfully!", enrollment)
}

func Unenroll(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.Unenroll(database.Database.Db, actor, enrollmentID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment removed successfully!", nil)
}
