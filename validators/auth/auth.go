package authValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor"`
	Bio      string `json:"bio" validate:"max=500"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.Name = strings.TrimSpace(reqData.Name)

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
