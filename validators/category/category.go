package categoryValidator

import (
	"strconv"
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type CategoryPayload struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type RenamePayload struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func RenameCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RenamePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRename", reqData)
		return c.Next()
	}
}

func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		c.Locals("categoryID", uint(id))
		return c.Next()
	}
}
