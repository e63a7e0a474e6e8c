package courseValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type SectionPayload struct {
	Title      string `json:"title" validate:"required,min=2,max=200"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type LessonPayload struct {
	Title      string `json:"title" validate:"required,min=2,max=200"`
	Duration   int    `json:"duration" validate:"gte=0"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

func AddSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SectionPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func SectionID() fiber.Handler {
	return paramID("sectionId", "sectionID", "Section ID")
}

func LessonID() fiber.Handler {
	return paramID("lessonId", "lessonID", "Lesson ID")
}
