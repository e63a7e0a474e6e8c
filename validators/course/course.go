package courseValidator

import (
	"strconv"
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type CoursePayload struct {
	Title            string  `json:"title" validate:"required,min=3,max=200"`
	ShortDescription string  `json:"short_description" validate:"max=300"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"gte=0"`
	Category         string  `json:"category" validate:"required"`
	Level            string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	ThumbnailURL     string  `json:"thumbnail_url"`
}

type CourseUpdatePayload struct {
	Title            *string  `json:"title" validate:"omitempty,min=3,max=200"`
	ShortDescription *string  `json:"short_description" validate:"omitempty,max=300"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	Category         *string  `json:"category" validate:"omitempty,min=1"`
	Level            *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	ThumbnailURL     *string  `json:"thumbnail_url"`
}

type CourseListPayload struct {
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Category string `query:"category"`
	Level    string `query:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Search   string `query:"search"`
	Featured bool   `query:"featured"`
	Sort     string `query:"sort" validate:"omitempty,oneof=newest popular rating price_asc price_desc"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseUpdatePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListPayload)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 12
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route param and stores it as a uint.
func CourseID() fiber.Handler {
	return paramID("id", "courseID", "Course ID")
}

func paramID(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(local, uint(id))
		return c.Next()
	}
}
