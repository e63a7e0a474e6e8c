package courseValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type CourseStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=draft pending published pending_unpublish rejected"`
	Reason string `json:"reason" validate:"max=1000"`
}

type ActivityListPayload struct {
	Limit int      `query:"limit" validate:"omitempty,gte=1,lte=200"`
	Types []string `query:"types"`
}

func CourseStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseStatusPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func ActivityList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ActivityListPayload)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Limit < 1 {
			reqData.Limit = 50
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedActivityList", reqData)
		return c.Next()
	}
}
