package courseValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type PaymentEnrollPayload struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card bank_transfer wallet"`
	Reference     string `json:"reference" validate:"max=120"`
}

type ResolveEnrollmentPayload struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type ManualEnrollPayload struct {
	UserID   uint `json:"user_id" validate:"required,gte=1"`
	CourseID uint `json:"course_id" validate:"required,gte=1"`
}

type LessonCompletionPayload struct {
	LessonID  uint  `json:"lesson_id" validate:"required,gte=1"`
	Completed *bool `json:"completed" validate:"required"`
}

type ReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func EnrollWithPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentEnrollPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

func ResolveEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResolveEnrollmentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Action = strings.ToLower(strings.TrimSpace(reqData.Action))

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResolve", reqData)
		return c.Next()
	}
}

func ManualEnroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ManualEnrollPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedManualEnroll", reqData)
		return c.Next()
	}
}

func LessonCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonCompletionPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func EnrollmentID() fiber.Handler {
	return paramID("id", "enrollmentID", "Enrollment ID")
}
